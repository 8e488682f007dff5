package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jsvensson/huekit"
	"github.com/jsvensson/huekit/internal/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// conversion is the structured form of convert's output.
type conversion struct {
	Input      string               `json:"input" yaml:"input"`
	Hex        string               `json:"hex" yaml:"hex"`
	Brightness float64              `json:"brightness" yaml:"brightness"`
	Light      bool                 `json:"light" yaml:"light"`
	Spaces     map[string]fieldList `json:"spaces" yaml:"spaces"`
}

func newConvertCmd(a *app) *cobra.Command {
	var (
		spaces []string
		output string
	)

	cmd := &cobra.Command{
		Use:   "convert <color>...",
		Short: "Show colors in other color spaces",
		Long: `Show colors in other color spaces.

A color is a hex string such as "#1d3557" or a field list such as
"h=210,s=50,l=40". Field lists are matched against RGB, XYZ, YUV, HSL,
HSV, CMYK, LAB and LCH, in that order.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			models, err := parseModels(spaces)
			if err != nil {
				return err
			}
			colors, err := parseColors(args)
			if err != nil {
				return err
			}

			results := make([]conversion, len(colors))
			for i, c := range colors {
				results[i] = a.convert(args[i], c, models)
			}

			w := cmd.OutOrStdout()
			switch output {
			case "text":
				p := newPrinter(w, a.cfg.Swatches)
				for i, c := range colors {
					a.printConversion(p, c, models)
					if i < len(colors)-1 {
						fmt.Fprintln(w)
					}
				}
				return nil
			case "yaml":
				enc := yaml.NewEncoder(w)
				enc.SetIndent(2)
				defer enc.Close()
				return enc.Encode(results)
			case "json":
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(results)
			}
			return fmt.Errorf("unknown output format %q (want text, yaml or json)", output)
		},
	}

	cmd.Flags().StringSliceVarP(&spaces, "space", "s", nil, "spaces to show: "+strings.Join(modelNames(), ", ")+" (default all)")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text, yaml or json")
	return cmd
}

func modelNames() []string {
	var names []string
	for _, m := range color.Models() {
		names = append(names, m.String())
	}
	return names
}

func parseModels(names []string) ([]color.Model, error) {
	if len(names) == 0 {
		return color.Models(), nil
	}
	models := make([]color.Model, 0, len(names))
	for _, name := range names {
		m, ok := color.ParseModel(strings.ToLower(strings.TrimSpace(name)))
		if !ok {
			return nil, fmt.Errorf("unknown color space %q (want one of %s)", name, strings.Join(modelNames(), ", "))
		}
		models = append(models, m)
	}
	return models, nil
}

func (a *app) convert(input string, c *huekit.Color, models []color.Model) conversion {
	out := conversion{
		Input:      input,
		Hex:        hexOf(c),
		Brightness: c.Brightness(),
		Light:      c.IsLight(a.cfg.LightThreshold),
		Spaces:     make(map[string]fieldList, len(models)),
	}
	for _, m := range models {
		out.Spaces[m.String()] = fieldsOf(c.To(m))
	}
	return out
}

func (a *app) printConversion(p *printer, c *huekit.Color, models []color.Model) {
	tone := "dark"
	if c.IsLight(a.cfg.LightThreshold) {
		tone = "light"
	}
	p.line(c, fmt.Sprintf("brightness=%s (%s)", num(c.Brightness()), tone))
	for _, m := range models {
		fmt.Fprintf(p.w, "  %-4s %s\n", m, fieldsOf(c.To(m)))
	}
}
