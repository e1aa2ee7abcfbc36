package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	herror "github.com/msto63/hearty/foundation/core/error"
	hlog "github.com/msto63/hearty/foundation/core/log"
	"github.com/msto63/hearty/foundation/utils/timex"
	"github.com/msto63/hearty/pkg/core/config"
	"github.com/msto63/hearty/pkg/core/logging"
	"github.com/msto63/hearty/pkg/core/version"
)

// app holds the state shared by all subcommands of one invocation
type app struct {
	cfgFile  string
	location string
	verbose  bool

	// clock is injected by tests, nil means the real clock
	clock clockwork.Clock

	cfg    *config.Config
	logger *hlog.Logger
	helper *timex.Helper
}

// newRootCmd builds the hearty command tree around a
func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hearty",
		Short: "hearty - date and time helpers",
		Long: `hearty parses loosely formatted dates, formats them with named presets
or token patterns and derives values such as day differences, durations
and ordinals.

Dates may be written day-first (21/10/2018, 21-10-2018 10:30) or
year-first (2018-10-21, 2018_10_21 10:30:15.250), as a time of day only
(10:30, meaning today), as a Unix timestamp or in any common free-form
notation.`,
		Version:           version.String(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: $"+config.EnvVar+")")
	flags.StringVarP(&a.location, "location", "l", "", "time zone for parsing and today, overrides the config")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(
		newParseCmd(a),
		newFormatCmd(a),
		newDiffCmd(a),
		newDurationCmd(a),
		newEpochCmd(a),
		newShiftCmd(a),
		newCheckCmd(a),
		newInfoCmd(a),
		newCalendarCmd(a),
		newPresetsCmd(a),
		newMinutesCmd(),
		newTodayCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}

// setup loads the configuration and builds the logger and date helper
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, found, err := config.LoadOrDefault(a.cfgFile)
	if err != nil {
		return err
	}

	if a.location != "" {
		cfg.Dates.Location = a.location
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	a.cfg = cfg
	a.logger = logging.FromConfig(cfg, "hearty", cmd.ErrOrStderr(), a.verbose)

	if !found && a.cfgFile != "" {
		a.logger.Warn("config file not found, using defaults", hlog.Fields{"path": a.cfgFile})
	}
	a.logger.Debug("configuration loaded", logging.Fields(
		"path", cfg.Path,
		"location", cfg.Dates.Location,
		"presets", len(cfg.Presets),
	))

	hc, err := cfg.HelperConfig(a.logger.WithName("timex"))
	if err != nil {
		return err
	}
	hc.Clock = a.clock

	a.helper = timex.NewWithConfig(hc)
	timex.SetDefault(a.helper)

	return nil
}

// Execute runs the root command and prints a failure to stderr
func Execute() error {
	a := &app{}
	return a.run(newRootCmd(a))
}

// run executes rootCmd. A failure is printed to stderr and, with
// --verbose, also logged with its code and details.
func (a *app) run(rootCmd *cobra.Command) error {
	err := rootCmd.Execute()
	if err == nil || errors.Is(err, errCheckFalse) {
		return err
	}

	if a.verbose && a.logger != nil {
		a.logger.LogError(err)
	}
	printError(rootCmd, err)
	return err
}

// ExitCode maps err to the process exit status: 2 for bad dates and
// other invalid input, 3 for a false "check --quiet", 1 for everything else
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, errCheckFalse) {
		return 3
	}
	var herr *herror.Error
	if errors.As(err, &herr) {
		return herr.Code().ExitCode()
	}
	return 1
}

func printError(cmd *cobra.Command, err error) {
	fmt.Fprintln(cmd.ErrOrStderr(), errorStyle.Render("Error: "+err.Error()))
}

// inputError marks a bad command line argument
func inputError(op, arg string, cause error) error {
	return herror.Wrap(cause, "invalid argument").
		WithCode(herror.CodeInvalidInput).
		WithOperation(op).
		WithDetail("argument", arg)
}

// currentMonth returns month and year of the helper's today
func (a *app) currentMonth() (time.Month, int) {
	now := a.helper.Now()
	return now.Month(), now.Year()
}
