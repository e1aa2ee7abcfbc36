// File: helper.go
// Title: Helper Configuration and Default Instance
// Description: Helper bundles the clock, the location and the logger every
//              operation reads. Package-level functions delegate to a
//              process-wide default Helper.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.2.0: Initial implementation with injectable clock,
//                       extra presets filtered through mapx

package timex

import (
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"

	hlog "github.com/msto63/hearty/foundation/core/log"
	"github.com/msto63/hearty/foundation/utils/mapx"
)

// Helper carries the inputs that are not passed per call: the current time,
// the location calendar fields are read in, the logger and any extra named
// presets. A Helper is immutable and safe for concurrent use.
type Helper struct {
	clock   clockwork.Clock
	loc     *time.Location
	logger  *hlog.Logger
	presets map[string]string
}

// Config configures a Helper. Zero fields take their defaults: the real
// clock, time.Local and a logger that discards everything.
type Config struct {
	Clock    clockwork.Clock
	Location *time.Location
	Logger   *hlog.Logger

	// Presets adds named patterns. Names that collide with a built-in
	// preset are ignored since built-ins are resolved first.
	Presets map[string]string
}

// New creates a Helper with default configuration
func New() *Helper {
	return NewWithConfig(Config{})
}

// NewWithConfig creates a Helper from cfg
func NewWithConfig(cfg Config) *Helper {
	h := &Helper{
		clock:   cfg.Clock,
		loc:     cfg.Location,
		logger:  cfg.Logger,
		presets: mapx.FilterKeys(cfg.Presets, isExtraPresetName),
	}

	if h.clock == nil {
		h.clock = clockwork.NewRealClock()
	}
	if h.loc == nil {
		h.loc = time.Local
	}
	if h.logger == nil {
		h.logger = hlog.Nop()
	}

	if h.presets == nil {
		h.presets = map[string]string{}
	}

	return h
}

// Location returns the location calendar fields are read in
func (h *Helper) Location() *time.Location {
	return h.loc
}

// Now returns the current time of the Helper's clock in its location
func (h *Helper) Now() time.Time {
	return h.clock.Now().In(h.loc)
}

// Presets returns every pattern the Helper can resolve by name, built-in
// presets included. The map is a copy.
func (h *Helper) Presets() map[string]string {
	return mapx.Merge(h.presets, presets)
}

// ExtraPresetNames returns the names of the configured extra presets, sorted
func (h *Helper) ExtraPresetNames() []string {
	return mapx.SortedKeys(h.presets)
}

func isExtraPresetName(name string) bool {
	return name != "" && !IsBuiltinPreset(name)
}

// resolvePattern maps a pattern argument to its token string: built-in
// preset, extra preset, the literal pattern, then the default preset.
func (h *Helper) resolvePattern(pattern string) string {
	if tokens, ok := presets[pattern]; ok {
		return tokens
	}
	if tokens, ok := h.presets[pattern]; ok {
		return tokens
	}
	if pattern != "" {
		return pattern
	}
	return presets[PresetDefault]
}

func (h *Helper) debug(message string, fields hlog.Fields) {
	if h.logger.IsLevelEnabled(hlog.LevelDebug) {
		h.logger.Debug(message, fields)
	}
}

var defaultHelper atomic.Pointer[Helper]

func init() {
	defaultHelper.Store(New())
}

// Default returns the Helper used by the package-level functions
func Default() *Helper {
	return defaultHelper.Load()
}

// SetDefault replaces the Helper used by the package-level functions.
// A nil Helper is ignored.
func SetDefault(h *Helper) {
	if h != nil {
		defaultHelper.Store(h)
	}
}
