package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/hearty/foundation/utils/stringx"
	"github.com/msto63/hearty/foundation/utils/timex"
)

func newPresetsCmd(a *app) *cobra.Command {
	var sample string

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List the named patterns",
		Long: `Lists the built-in presets followed by the presets from the config file,
each with its tokens and the sample date rendered through it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var input any = a.helper.Now()
			if sample != "" {
				input = sample
			}

			all := a.helper.Presets()
			names := append(timex.PresetNames(), a.helper.ExtraPresetNames()...)

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, titleStyle.Render(
				stringx.PadRight("NAME", 16, ' ')+stringx.PadRight("TOKENS", 32, ' ')+"EXAMPLE"))

			for _, name := range names {
				example, err := a.helper.FormatDate(input, name)
				if err != nil {
					return err
				}
				fmt.Fprintln(w, labelStyle.Render(stringx.PadRight(name, 16, ' '))+
					stringx.PadRight(stringx.Truncate(all[name], 30, "…"), 32, ' ')+
					valueStyle.Render(example))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sample, "sample", "", "date to render the examples with (default: now)")
	return cmd
}
