package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTodayCmd(a *app) *cobra.Command {
	var pattern string

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Print today's date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if pattern == "" {
				fmt.Fprintln(cmd.OutOrStdout(), a.helper.TodayDate())
				return nil
			}

			s, err := a.helper.FormatDate(a.helper.Now(), pattern)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}

	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "output pattern or preset name (default: dd/mm/yyyy)")
	return cmd
}
