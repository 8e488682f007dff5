package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAdjustCmd(a *app) *cobra.Command {
	var (
		lightness, saturation, hue, alpha float64
		invert, grayscale                 bool
	)

	cmd := &cobra.Command{
		Use:   "adjust <color>",
		Short: "Change lightness, saturation, hue or alpha",
		Long: `Change lightness, saturation, hue or alpha.

Adjustments are deltas and apply in the order hue, saturation, lightness,
alpha, then --invert and --grayscale.`,
		Example: `  huekit adjust "#1d3557" --lightness 20
  huekit adjust "#1d3557" --hue 180 --alpha -0.5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseColor(args[0])
			if err != nil {
				return fmt.Errorf("color %q: %w", args[0], err)
			}

			if hue != 0 {
				c = c.AdjustHue(hue)
			}
			if saturation != 0 {
				c = c.AdjustSaturation(saturation)
			}
			if lightness != 0 {
				c = c.AdjustLightness(lightness)
			}
			if cmd.Flags().Changed("alpha") {
				c = c.AdjustAlpha(alpha)
			}
			if invert {
				c = c.Invert()
			}
			if grayscale {
				c = c.Grayscale()
			}

			newPrinter(cmd.OutOrStdout(), a.cfg.Swatches).line(c)
			return nil
		},
	}

	f := cmd.Flags()
	f.Float64VarP(&lightness, "lightness", "l", 0, "HSL lightness delta (-100 to 100)")
	f.Float64VarP(&saturation, "saturation", "s", 0, "HSL saturation delta (-100 to 100)")
	f.Float64Var(&hue, "hue", 0, "hue rotation in degrees")
	f.Float64VarP(&alpha, "alpha", "a", 0, "alpha delta (-1 to 1)")
	f.BoolVar(&invert, "invert", false, "invert the channels")
	f.BoolVar(&grayscale, "grayscale", false, "convert to gray")
	return cmd
}
