package main

import (
	"fmt"
	"strings"

	"github.com/jsvensson/huekit"
	"github.com/spf13/cobra"
)

func newHarmonyCmd(a *app) *cobra.Command {
	var (
		scheme string
		angle  float64
		count  int
	)

	cmd := &cobra.Command{
		Use:   "harmony <color>",
		Short: "Generate a color harmony",
		Long: fmt.Sprintf(`Generate a color harmony. The base color is always first.

Schemes: %s.
--angle applies to analogous, tetradic and the split schemes; --count
applies to monochromatic, shades, tints and tones.`, strings.Join(huekit.Schemes(), ", ")),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := parseColor(args[0])
			if err != nil {
				return fmt.Errorf("color %q: %w", args[0], err)
			}
			if !cmd.Flags().Changed("angle") {
				angle = huekit.DefaultSchemeAngle(scheme)
			}

			colors, err := base.Harmony(scheme, angle, count)
			if err != nil {
				return err
			}

			p := newPrinter(cmd.OutOrStdout(), a.cfg.Swatches)
			for _, c := range colors {
				hsl := c.ToHSL()
				p.line(c, fmt.Sprintf("hsl(%s, %s%%, %s%%)", num(hsl.H), num(hsl.S), num(hsl.L)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&scheme, "scheme", "complementary", "harmony scheme")
	cmd.Flags().Float64Var(&angle, "angle", huekit.DefaultAngle, "hue spread in degrees")
	cmd.Flags().IntVar(&count, "count", huekit.DefaultCount, "number of colors for stepped schemes")
	return cmd
}
