package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jsvensson/huekit/internal/palette"
	"github.com/spf13/cobra"
)

var errUnformatted = errors.New("some files are not formatted")

func newFmtCmd() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "fmt <file>...",
		Short: "Format palette files",
		Long:  "Format one or more palette files in-place. Prints the name of each file that was modified.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(cmd, args, check)
		},
	}

	cmd.Flags().BoolVarP(&check, "check", "c", false, "check if files are formatted (do not write changes)")
	return cmd
}

func runFmt(cmd *cobra.Command, args []string, check bool) error {
	var errs []error
	needsFormatting := false

	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			errs = append(errs, fmt.Errorf("reading %s: %w", path, err))
			continue
		}

		content := string(data)
		formatted, err := palette.Format(content)
		if err != nil {
			errs = append(errs, fmt.Errorf("formatting %s: %w", path, err))
			continue
		}

		if formatted == content {
			continue
		}

		fmt.Fprintln(cmd.OutOrStdout(), path)
		needsFormatting = true

		if !check {
			if err := os.WriteFile(path, []byte(formatted), 0o644); err != nil {
				errs = append(errs, fmt.Errorf("writing %s: %w", path, err))
			}
		}
	}

	if check && needsFormatting {
		errs = append(errs, errUnformatted)
	}
	return errors.Join(errs...)
}
