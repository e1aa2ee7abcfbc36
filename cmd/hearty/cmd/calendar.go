package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	herror "github.com/msto63/hearty/foundation/core/error"
	"github.com/msto63/hearty/foundation/utils/stringx"
	"github.com/msto63/hearty/foundation/utils/timex"
)

// calendarWidth is seven two-character cells and six separators
const calendarWidth = 7*2 + 6

func newCalendarCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "calendar [month] [year]",
		Short: "Print a month calendar",
		Long: `Prints a month grid starting on Sunday. Without arguments the current
month is shown; today is highlighted.`,
		Example: `  hearty calendar
  hearty calendar 2 2024`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			month, year := a.currentMonth()

			if len(args) > 0 {
				m, err := intArg("cli.calendar", "month", args[0])
				if err != nil {
					return err
				}
				if m < 1 || m > 12 {
					return herror.Newf("month %d out of range 1-12", m).
						WithCode(herror.CodeValueOutOfRange).
						WithOperation("cli.calendar")
				}
				month = time.Month(m)
			}
			if len(args) > 1 {
				y, err := intArg("cli.calendar", "year", args[1])
				if err != nil {
					return err
				}
				year = y
			}

			today := a.helper.Now()
			fmt.Fprintln(cmd.OutOrStdout(), renderCalendar(month, year, today, a.helper.Location()))
			return nil
		},
	}
}

// renderCalendar lays out one month; the day matching today is highlighted
func renderCalendar(month time.Month, year int, today time.Time, loc *time.Location) string {
	title := fmt.Sprintf("%s %d", timex.MonthName(int(month), true), year)

	header := make([]string, 7)
	for d := 0; d < 7; d++ {
		header[d] = weekdayStyle.Render(timex.DayName(d, false)[:2])
	}

	lines := []string{
		titleStyle.Render(stringx.Center(title, calendarWidth, ' ')),
		strings.Join(header, " "),
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	days := timex.NumberOfDays(int(month), year)
	highlight := today.Year() == year && today.Month() == month

	cells := make([]string, 0, 7)
	for i := 0; i < int(first.Weekday()); i++ {
		cells = append(cells, "  ")
	}
	for day := 1; day <= days; day++ {
		cell := stringx.PadLeft(fmt.Sprint(day), 2, ' ')
		if highlight && day == today.Day() {
			cell = todayStyle.Render(cell)
		}
		cells = append(cells, cell)

		if len(cells) == 7 {
			lines = append(lines, strings.Join(cells, " "))
			cells = cells[:0]
		}
	}
	if len(cells) > 0 {
		lines = append(lines, strings.Join(cells, " "))
	}

	return calendarBoxStyle.Render(strings.Join(lines, "\n"))
}
