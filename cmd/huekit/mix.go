package main

import (
	"github.com/spf13/cobra"
)

func newMixCmd(a *app) *cobra.Command {
	var amount float64

	cmd := &cobra.Command{
		Use:   "mix <color> <other>",
		Short: "Blend two colors",
		Long:  "Blend two colors in RGB. --amount 0 gives the first color and 1 the second.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			colors, err := parseColors(args)
			if err != nil {
				return err
			}
			mixed, err := colors[0].Mix(colors[1], amount)
			if err != nil {
				return err
			}
			newPrinter(cmd.OutOrStdout(), a.cfg.Swatches).line(mixed)
			return nil
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0.5, "weight of the second color (0 to 1)")
	return cmd
}
