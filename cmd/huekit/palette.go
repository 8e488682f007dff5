package main

import (
	"fmt"
	"strings"

	"github.com/jsvensson/huekit/internal/palette"
	"github.com/jsvensson/huekit/internal/render"
	"github.com/spf13/cobra"
)

func newPaletteCmd(a *app) *cobra.Command {
	var (
		templates string
		out       string
		only      []string
		encode    bool
	)

	cmd := &cobra.Command{
		Use:   "palette <file>",
		Short: "Resolve a palette file and render templates from it",
		Long: `Resolve a palette file and render templates from it.

Without --templates the resolved colors and harmonies are listed. With
--encode the palette is written back as HCL with every value resolved.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := palette.Parse(args[0])
			if err != nil {
				return fmt.Errorf("loading palette: %w", err)
			}

			w := cmd.OutOrStdout()
			switch {
			case encode:
				_, err := w.Write(palette.Encode(p))
				return err
			case templates != "":
				r := &render.Renderer{
					TemplatesDir: templates,
					OutputDir:    out,
					Only:         only,
				}
				if err := r.Run(p); err != nil {
					return fmt.Errorf("rendering: %w", err)
				}
				fmt.Fprintf(w, "Rendered %s into %s\n", args[0], out)
				return nil
			}

			pr := newPrinter(w, a.cfg.Swatches)
			if p.Meta.Name != "" {
				fmt.Fprintln(w, p.Meta.Name)
			}
			width := 0
			for _, e := range p.Colors {
				width = max(width, len(e.Name))
			}
			for _, e := range p.Colors {
				pr.line(e.Color, e.Name+strings.Repeat(" ", width-len(e.Name)))
			}
			for _, h := range p.Harmonies {
				fmt.Fprintf(w, "\nharmony %q (%s)\n", h.Name, h.Scheme)
				for _, c := range h.Colors {
					pr.line(c)
				}
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&templates, "templates", "", "templates directory")
	f.StringVar(&out, "out", "output", "output directory")
	f.StringArrayVar(&only, "only", nil, "render only this template (can be repeated)")
	f.BoolVar(&encode, "encode", false, "print the resolved palette as HCL")
	return cmd
}
