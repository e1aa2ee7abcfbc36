package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newShiftCmd(a *app) *cobra.Command {
	var pattern string

	cmd := &cobra.Command{
		Use:   "shift <input> <days>",
		Short: "Move a date by a number of days",
		Long: `Adds <days> calendar days to a date, keeping the time of day. Negative
values move backwards; put them after "--" so they are not read as flags.`,
		Example: `  hearty shift 21/10/2018 7
  hearty shift 21/10/2018 --pattern longDate -- -3`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := intArg("cli.shift", "days", args[1])
			if err != nil {
				return err
			}

			input := dateArg(a, args[0])
			var s string
			if days >= 0 {
				s, err = a.helper.DaysAheadFormat(input, days, pattern)
			} else {
				s, err = a.helper.DaysBehindFormat(input, -days, pattern)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}

	cmd.Flags().StringVarP(&pattern, "pattern", "p", "isoDate", "output pattern or preset name")
	return cmd
}
