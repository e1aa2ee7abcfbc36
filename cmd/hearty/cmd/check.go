package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newCheckCmd(a *app) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "check today|past|between <dates...>",
		Short: "Answer yes/no questions about dates",
		Long: `Prints true or false:

  today <date>                  the date falls on today
  past <date>                   the date falls on a day before today
  between <start> <end> <date>  the date lies within [start, end]

Invalid dates answer false. With --quiet nothing is printed and the exit
status is 0 for true and 3 for false.`,
		Example: `  hearty check today now
  hearty check between 01/10/2018 31/10/2018 21/10/2018`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result bool

			switch args[0] {
			case "today":
				if err := cobra.ExactArgs(2)(cmd, args); err != nil {
					return err
				}
				result = a.helper.IsToday(dateArg(a, args[1]))
			case "past":
				if err := cobra.ExactArgs(2)(cmd, args); err != nil {
					return err
				}
				result = a.helper.IsPastDate(dateArg(a, args[1]))
			case "between":
				if err := cobra.ExactArgs(4)(cmd, args); err != nil {
					return err
				}
				result = a.helper.IsDateInBetween(dateArg(a, args[1]), dateArg(a, args[2]), dateArg(a, args[3]))
			default:
				return inputError("cli.check", args[0], errUnknownCheck)
			}

			if quiet {
				if !result {
					return errCheckFalse
				}
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatBool(result))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "report the answer through the exit status only")
	return cmd
}
