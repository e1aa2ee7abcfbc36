package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	herror "github.com/msto63/hearty/foundation/core/error"
	hlog "github.com/msto63/hearty/foundation/core/log"
	"github.com/msto63/hearty/foundation/utils/mapx"
	"github.com/msto63/hearty/foundation/utils/stringx"
	"github.com/msto63/hearty/foundation/utils/timex"
)

// EnvVar names the environment variable that points to the config file
const EnvVar = "HEARTY_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig     `toml:"general" yaml:"general"`
	Dates   DatesConfig       `toml:"dates" yaml:"dates"`
	Presets map[string]string `toml:"presets" yaml:"presets"`

	// Path is the file the configuration was read from, empty for defaults
	Path string `toml:"-" yaml:"-"`
}

// GeneralConfig holds logging settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// DatesConfig holds settings for the date helpers
type DatesConfig struct {
	Location       string `toml:"location" yaml:"location"`
	DefaultPattern string `toml:"default_pattern" yaml:"default_pattern"`
}

// Default returns a configuration with all defaults applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file. The format follows the
// file extension: .yaml and .yml are YAML, everything else is TOML.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, herror.Wrap(err, "config file not found").
				WithCode(herror.CodeNotFound).
				WithOperation("config.Load").
				WithDetail("path", path)
		}
		return nil, herror.Wrap(err, "failed to read config").
			WithCode(herror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		_, err = toml.Decode(string(data), &cfg)
	}
	if err != nil {
		return nil, herror.Wrap(err, "failed to parse config").
			WithCode(herror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	cfg.Path = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadOrDefault loads path, or the file named by HEARTY_CONFIG when path is
// empty. A missing file is not an error: the defaults are returned and
// found reports false.
func LoadOrDefault(path string) (cfg *Config, found bool, err error) {
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		return Default(), false, nil
	}

	cfg, err = Load(path)
	if herror.HasCode(err, herror.CodeNotFound) {
		return Default(), false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return cfg, true, nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	c.General.LogLevel = stringx.FromBlankDefault(c.General.LogLevel, "info")
	c.General.LogFormat = stringx.FromBlankDefault(c.General.LogFormat, "text")
	c.Dates.Location = stringx.FromBlankDefault(c.Dates.Location, "Local")
	c.Dates.DefaultPattern = stringx.FromBlankDefault(c.Dates.DefaultPattern, timex.PresetDefault)

	if c.Presets == nil {
		c.Presets = make(map[string]string)
	}
}

// Validate checks every value and reports the first problem
func (c *Config) Validate() error {
	if _, err := hlog.ParseLevel(c.General.LogLevel); err != nil {
		return invalid("general.log_level", c.General.LogLevel, err)
	}
	if _, err := hlog.ParseFormat(c.General.LogFormat); err != nil {
		return invalid("general.log_format", c.General.LogFormat, err)
	}
	if _, err := c.Location(); err != nil {
		return invalid("dates.location", c.Dates.Location, err)
	}

	for _, name := range mapx.SortedKeys(c.Presets) {
		tokens := c.Presets[name]
		if timex.IsBuiltinPreset(name) {
			return invalid("presets."+name, tokens,
				fmt.Errorf("%q is a built-in preset", name))
		}
		if err := stringx.ValidateNotBlank("presets."+name, tokens); err != nil {
			return invalid("presets."+name, tokens, err)
		}
	}

	if _, ok := c.resolvablePattern(c.Dates.DefaultPattern); !ok {
		return invalid("dates.default_pattern", c.Dates.DefaultPattern,
			fmt.Errorf("unknown preset %q", c.Dates.DefaultPattern))
	}

	return nil
}

// Location returns the configured time zone
func (c *Config) Location() (*time.Location, error) {
	switch c.Dates.Location {
	case "", "Local":
		return time.Local, nil
	case "UTC":
		return time.UTC, nil
	}
	return time.LoadLocation(c.Dates.Location)
}

// HelperConfig builds the timex configuration for this file. The clock is
// left unset so the Helper uses the real one.
func (c *Config) HelperConfig(logger *hlog.Logger) (timex.Config, error) {
	loc, err := c.Location()
	if err != nil {
		return timex.Config{}, invalid("dates.location", c.Dates.Location, err)
	}

	return timex.Config{
		Location: loc,
		Logger:   logger,
		Presets:  mapx.Clone(c.Presets),
	}, nil
}

// LogLevel returns the parsed log level, info when empty or invalid
func (c *Config) LogLevel() hlog.Level {
	level, err := hlog.ParseLevel(c.General.LogLevel)
	if err != nil {
		return hlog.LevelInfo
	}
	return level
}

// LogFormat returns the parsed log format, text when empty or invalid.
// hlog.ParseFormat itself falls back to json; the CLI writes to a terminal.
func (c *Config) LogFormat() hlog.Format {
	format, err := hlog.ParseFormat(stringx.FromBlankDefault(c.General.LogFormat, "text"))
	if err != nil {
		return hlog.FormatText
	}
	return format
}

// resolvablePattern accepts preset names, extra presets and token strings.
// Only a bare word that names nothing is rejected, since it would be
// printed as a literal.
func (c *Config) resolvablePattern(pattern string) (string, bool) {
	if tokens, ok := timex.Preset(pattern); ok {
		return tokens, true
	}
	if tokens, ok := c.Presets[pattern]; ok {
		return tokens, true
	}
	if isIdentifier(pattern) {
		return "", false
	}
	return pattern, true
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_') {
			return false
		}
	}
	// lowercase words made only of token letters are patterns, e.g. "yyyy"
	return strings.Trim(s, "dmyhHMsTtlLoSZ") != ""
}

func invalid(key, value string, cause error) error {
	return herror.Wrap(cause, "invalid configuration value").
		WithCode(herror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("key", key).
		WithDetail("value", value)
}
