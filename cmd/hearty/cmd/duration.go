package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	herror "github.com/msto63/hearty/foundation/core/error"
	"github.com/msto63/hearty/foundation/utils/timex"
)

func newDurationCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "duration <start> <end>",
		Short: "Break the gap between two instants into components",
		Long: `Prints the gap from <start> to <end> as years, months, days, hours,
minutes and seconds. A negative gap gets one day added, so 23:00 to 01:00
is two hours.`,
		Example: `  hearty duration "21/10/2018 09:00" "28/11/2018 09:00"
  hearty duration 23:00 01:00 --output json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.helper.GetDuration(dateArg(a, args[0]), dateArg(a, args[1]))
			if err != nil {
				return err
			}

			data, err := renderDuration(d, output)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), data)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text, json or yaml")
	return cmd
}

func renderDuration(d timex.DurationBreakdown, output string) (string, error) {
	switch strings.ToLower(output) {
	case "json":
		data, err := json.MarshalIndent(d, "", "  ")
		if err != nil {
			return "", herror.Wrap(err, "failed to encode duration").WithCode(herror.CodeInternal)
		}
		return string(data) + "\n", nil
	case "yaml":
		data, err := yaml.Marshal(d)
		if err != nil {
			return "", herror.Wrap(err, "failed to encode duration").WithCode(herror.CodeInternal)
		}
		return string(data), nil
	case "text", "":
		const width = 10
		lines := []string{
			titleStyle.Render(strings.TrimSpace(d.DisplayDiff)),
			keyValue("years", d.Year, width),
			keyValue("months", d.Month, width),
			keyValue("days", d.Day, width),
			keyValue("hours", d.Hour, width),
			keyValue("minutes", d.Minute, width),
			keyValue("seconds", d.Second, width),
			keyValue("total", fmt.Sprintf("%gs", d.Duration), width),
		}
		return strings.Join(lines, "\n") + "\n", nil
	default:
		return "", herror.Newf("unknown output format %q", output).
			WithCode(herror.CodeInvalidFormat).
			WithOperation("cli.duration")
	}
}
