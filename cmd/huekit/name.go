package main

import (
	"fmt"

	"github.com/jsvensson/huekit"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newNameCmd(a *app) *cobra.Command {
	var (
		online bool
		jobs   int
	)

	cmd := &cobra.Command{
		Use:   "name <color>...",
		Short: "Find the nearest named color",
		Long: `Find the nearest named color.

Names come from the built-in CSS/SVG color table unless --online (or
naming.online in the config file) asks the naming service instead.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if jobs < 1 {
				return fmt.Errorf("--jobs must be at least 1, got %d", jobs)
			}
			colors, err := parseColors(args)
			if err != nil {
				return err
			}

			cfg := a.cfg
			if cmd.Flags().Changed("online") {
				cfg.Naming.Online = online
			}
			namer := cfg.Namer()

			infos := make([]huekit.Info, len(colors))
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(jobs)
			for i, c := range colors {
				g.Go(func() error {
					info, err := c.Info(ctx, namer)
					if err != nil {
						return fmt.Errorf("naming %s: %w", hexOf(c), err)
					}
					log.Debugf("%s is %q from %s", hexOf(c), info.Name, info.Source)
					infos[i] = info
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			p := newPrinter(cmd.OutOrStdout(), a.cfg.Swatches)
			for i, c := range colors {
				info := infos[i]
				if info.Exact {
					p.line(c, info.Name)
				} else {
					p.line(c, fmt.Sprintf("%s (near %s)", info.Name, info.Hex))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&online, "online", false, "ask the naming service")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 4, "concurrent lookups")
	return cmd
}
