package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	herror "github.com/msto63/hearty/foundation/core/error"
	"github.com/msto63/hearty/foundation/utils/timex"
)

func newEpochCmd(a *app) *cobra.Command {
	var (
		onlyText bool
		millis   bool
	)

	cmd := &cobra.Command{
		Use:   "epoch <timestamp>",
		Short: "Render a Unix timestamp of any unit as a date",
		Long: `Detects whether a Unix timestamp is in seconds, milliseconds or
microseconds and prints it as a short date such as "8th Nov, 2018".
Timestamps in seconds before 14 September 1752 are rejected.`,
		Example: `  hearty epoch 1541658537
  hearty epoch 1541658537000 --only-text
  hearty epoch 1541658537000000 --millis`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := int64Arg("cli.epoch", "timestamp", args[0])
			if err != nil {
				return err
			}

			if millis {
				ms, ok := timex.ConvertedEpochDate(v)
				if !ok {
					return epochError(v)
				}
				fmt.Fprintln(cmd.OutOrStdout(), ms)
				return nil
			}

			s, ok := a.helper.DateFromTimestamp(v, onlyText)
			if !ok {
				return epochError(v)
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}

	cmd.Flags().BoolVar(&onlyText, "only-text", false, "omit the ordinal suffix of the day")
	cmd.Flags().BoolVar(&millis, "millis", false, "print the normalized milliseconds instead of a date")
	return cmd
}

func epochError(v int64) error {
	earliest := time.Date(1752, time.September, 14, 0, 0, 0, 0, time.UTC)
	return herror.Newf("timestamp %d is before %s", v, earliest.Format("2 January 2006")).
		WithCode(herror.CodeInvalidEpoch).
		WithOperation("cli.epoch").
		WithDetail("timestamp", v)
}
