package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newParseCmd(a *app) *cobra.Command {
	var pattern string

	cmd := &cobra.Command{
		Use:   "parse <input>",
		Short: "Parse a date and print it normalized",
		Long: `Parses a loosely formatted date. Without --pattern the result is printed
with millisecond precision and zone offset; with --pattern it is formatted
like the format command would.`,
		Example: `  hearty parse 21/10/2018
  hearty parse "2018-10-21 10:30" --pattern isoDateTime
  hearty parse 1540114215`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if pattern != "" {
				s, err := a.helper.StrToDateFormat(args[0], pattern)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), s)
				return nil
			}

			dt := a.helper.StrToDate(args[0])
			if !dt.Valid() {
				return dt.Err()
			}
			fmt.Fprintln(cmd.OutOrStdout(), dt.String())
			return nil
		},
	}

	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "output pattern or preset name")
	return cmd
}
