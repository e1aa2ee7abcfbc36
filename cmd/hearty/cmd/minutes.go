package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/hearty/foundation/utils/timex"
)

func newMinutesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "minutes <n>",
		Short:   "Render a number of minutes as hours and minutes",
		Example: `  hearty minutes 1760`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := intArg("cli.minutes", "minutes", args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), timex.FormatMinutes(n))
			return nil
		},
	}
}
