package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFormatCmd(a *app) *cobra.Command {
	var useStrftime bool

	cmd := &cobra.Command{
		Use:   "format <input> [pattern]",
		Short: "Format a date with a preset or token pattern",
		Long: `Formats a date. The pattern is a preset name (see "hearty presets") or a
token string such as "dddd, mmmm dS yyyy". Text in single or double quotes
is copied literally. Without a pattern the configured default is used.

With --strftime the pattern is a C strftime layout such as "%Y-%m-%d".`,
		Example: `  hearty format 2018-10-21 yyyy/mm/dd
  hearty format "21/10/2018 14:05" shortTime
  hearty format now "%A %d %B" --strftime`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := dateArg(a, args[0])

			var (
				s   string
				err error
			)
			switch {
			case useStrftime && len(args) < 2:
				return inputError("cli.format", "layout", errMissingLayout)
			case useStrftime:
				s, err = a.helper.FormatStrftime(input, args[1])
			case len(args) == 2:
				s, err = a.helper.FormatDate(input, args[1])
			default:
				s, err = a.helper.FormatDate(input, a.cfg.Dates.DefaultPattern)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}

	cmd.Flags().BoolVar(&useStrftime, "strftime", false, "interpret the pattern as a strftime layout")
	return cmd
}
