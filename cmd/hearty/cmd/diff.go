package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDiffCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "diff <from> [to]",
		Short: "Count calendar days between two dates",
		Long: `Prints the signed number of calendar days from <from> to <to>. With a
single argument the days from today to <from> are printed, so future
dates are positive. Times of day are ignored.`,
		Example: `  hearty diff 21/10/2018 28/10/2018
  hearty diff 2030-01-01`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				days int
				err  error
			)
			if len(args) == 1 {
				days, err = a.helper.DaysDiffFromToday(dateArg(a, args[0]))
			} else {
				days, err = a.helper.DaysDiff(dateArg(a, args[0]), dateArg(a, args[1]))
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), days)
			return nil
		},
	}
}
