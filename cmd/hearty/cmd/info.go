package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/hearty/foundation/utils/timex"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info <input>",
		Short: "Show everything hearty can derive from a date",
		Example: `  hearty info 21/10/2018
  hearty info now`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := dateArg(a, args[0])

			dt := a.helper.StrToDate(input)
			if !dt.Valid() {
				return dt.Err()
			}
			t := dt.Time().In(a.helper.Location())

			display, err := a.helper.DisplayDate(dt, true)
			if err != nil {
				return err
			}
			day, err := a.helper.DayFromDate(dt)
			if err != nil {
				return err
			}
			month, err := a.helper.MonthFromDate(dt)
			if err != nil {
				return err
			}
			fromToday, err := a.helper.DaysDiffFromToday(dt)
			if err != nil {
				return err
			}
			iso, err := a.helper.FormatDate(dt, timex.PresetISODateTime)
			if err != nil {
				return err
			}

			const width = 14
			lines := []string{
				titleStyle.Render(display),
				keyValue("iso", iso, width),
				keyValue("day", fmt.Sprintf("%s (%s)", day, timex.DayName(int(t.Weekday()), true)), width),
				keyValue("month", fmt.Sprintf("%s (%s)", month, timex.MonthNameWithOrdinal(int(t.Month()))), width),
				keyValue("ordinal", timex.DateWithOrdinal(t.Day()), width),
				keyValue("days in month", fmt.Sprint(timex.NumberOfDays(int(t.Month()), t.Year())), width),
				keyValue("from today", fmt.Sprint(fromToday), width),
				keyValue("today", fmt.Sprint(a.helper.IsToday(dt)), width),
				keyValue("past", fmt.Sprint(a.helper.IsPastDate(dt)), width),
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(lines, "\n"))
			return nil
		},
	}
}
