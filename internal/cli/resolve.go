// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/beaconreg/aggregate"
	"github.com/katalvlaran/beaconreg/internal/config"
	"github.com/katalvlaran/beaconreg/resolve"
	"github.com/katalvlaran/beaconreg/scanner"
)

// resolveFlags maps flag names to config keys.
var resolveFlags = map[string]string{
	"workers":     "workers",
	"min-overlap": "min_overlap",
	"root":        "root",
	"strategy":    "strategy",
	"proper-only": "proper_only",
	"format":      "format",
	"no-color":    "no_color",
}

func newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [file]",
		Short: "Place every scanner and beacon in the root scanner's frame",
		Long:  "Read a scan report (stdin when no file is given), resolve every scanner's position and orientation, and print the beacon count, the largest scanner separation and each scanner's mapping.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runResolve,
	}

	cmd.Flags().Int("workers", 0, "max parallel pair checks (0=auto)")
	cmd.Flags().Int("min-overlap", 12, "shared beacons required to link two scanners")
	cmd.Flags().Int("root", 0, "index of the scanner whose frame is global")
	cmd.Flags().String("strategy", "bfs", "expansion order (bfs|dfs)")
	cmd.Flags().Bool("proper-only", false, "reject mirrored scanner frames")
	cmd.Flags().String("format", config.FormatText, "output format (text|json|yaml)")
	cmd.Flags().Bool("no-color", false, "disable colored text output")
	for flag, key := range resolveFlags {
		_ = viper.BindPFlag(key, cmd.Flags().Lookup(flag))
	}
	return cmd
}

// runResolve parses the input, resolves it and writes the report.
func runResolve(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	var in io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		in = f
	}

	scanners, err := scanner.Parse(in)
	if err != nil {
		return err
	}

	opts := append(cfg.ResolveOptions(), resolve.WithContext(cmd.Context()))
	res, err := resolve.Resolve(scanners, opts...)
	if err != nil {
		return err
	}
	summary, err := aggregate.Summarize(scanners, res.Mappings)
	if err != nil {
		return err
	}

	return writeReport(cmd.OutOrStdout(), cfg, newReport(scanners, res, summary))
}
