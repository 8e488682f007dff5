package main

import (
	"fmt"
	"os"

	"github.com/jsvensson/huekit"
	"github.com/jsvensson/huekit/internal/config"
	"github.com/jsvensson/huekit/internal/lsp"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	var (
		configPath string
		verbosity  int
	)

	cmd := &cobra.Command{
		Use:           "huekit-lsp",
		Short:         "Language server for color swatches and palette files, over stdio",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if err := huekit.SetPrecision(cfg.Precision); err != nil {
				return err
			}
			return lsp.NewServer(version, cfg.Namer()).Run(verbosity)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to config file (default is the user config dir)")
	cmd.Flags().CountVarP(&verbosity, "verbose", "v", "log more (can be repeated)")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
