package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jsvensson/huekit"
	"github.com/jsvensson/huekit/internal/color"
	"github.com/jsvensson/huekit/internal/config"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var version = "dev" // Injected at build time via ldflags

var log = commonlog.GetLogger("huekit.cli")

// app carries the state shared by every command of one invocation.
type app struct {
	configPath string
	precision  int
	verbosity  int

	cfg config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "huekit",
		Short:         "Convert, mix and name colors, and build palettes from HCL files",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to config file (default is the user config dir)")
	flags.IntVar(&a.precision, "precision", huekit.DefaultPrecision, "decimal places for converted values")
	flags.CountVarP(&a.verbosity, "verbose", "v", "log more (can be repeated)")

	root.AddCommand(
		newConvertCmd(a),
		newHarmonyCmd(a),
		newAdjustCmd(a),
		newMixCmd(a),
		newNameCmd(a),
		newPaletteCmd(a),
		newFmtCmd(),
		newVersionCmd(),
	)
	return root
}

// setup loads the config file and applies logging and precision.
// --precision wins over the file.
func (a *app) setup(cmd *cobra.Command) error {
	commonlog.Configure(a.verbosity, nil)

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("precision") {
		cfg.Precision = a.precision
	}
	if err := huekit.SetPrecision(cfg.Precision); err != nil {
		return fmt.Errorf("--precision: %w", err)
	}
	log.Debugf("precision %d, light threshold %g", cfg.Precision, cfg.LightThreshold)

	a.cfg = cfg
	return nil
}

// parseColor accepts a hex string or a field list such as "h=210,s=50,l=40".
func parseColor(arg string) (*huekit.Color, error) {
	if strings.Contains(arg, "=") {
		f, err := color.ParseFields(arg)
		if err != nil {
			return nil, err
		}
		return huekit.FromFields(f)
	}
	return huekit.Parse(arg)
}

func parseColors(args []string) ([]*huekit.Color, error) {
	colors := make([]*huekit.Color, len(args))
	for i, arg := range args {
		c, err := parseColor(arg)
		if err != nil {
			return nil, fmt.Errorf("color %q: %w", arg, err)
		}
		colors[i] = c
	}
	return colors, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
