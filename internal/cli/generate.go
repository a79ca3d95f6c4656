// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/beaconreg/scanner"
	"github.com/katalvlaran/beaconreg/synth"
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic scan report",
		Long:  "Generate a chain of scanners in which neighbours share a fixed number of beacons, each with a random frame, and write it in the input format accepted by resolve.",
		Args:  cobra.NoArgs,
		RunE:  runGenerate,
	}

	cmd.Flags().Int64("seed", 1, "random seed")
	cmd.Flags().Int("scanners", 5, "number of scanners")
	cmd.Flags().Int("beacons", 26, "beacons per scanner")
	cmd.Flags().Int("overlap", 12, "beacons shared by neighbouring scanners")
	cmd.Flags().Int("spread", 1000, "coordinate bound for beacons and scanner offsets")
	cmd.Flags().Bool("mirrors", false, "allow mirrored scanner frames")
	return cmd
}

// runGenerate validates the flags, generates a fixture and writes it.
func runGenerate(cmd *cobra.Command, _ []string) error {
	f := cmd.Flags()
	seed, _ := f.GetInt64("seed")
	count, _ := f.GetInt("scanners")
	beacons, _ := f.GetInt("beacons")
	overlap, _ := f.GetInt("overlap")
	spread, _ := f.GetInt("spread")
	mirrors, _ := f.GetBool("mirrors")

	switch {
	case count < 1:
		return fmt.Errorf("--scanners must be >= 1 (%d)", count)
	case beacons < scanner.MinBeacons || beacons > scanner.MaxBeacons:
		return fmt.Errorf("--beacons must be in [%d, %d] (%d)", scanner.MinBeacons, scanner.MaxBeacons, beacons)
	case overlap < 0:
		return fmt.Errorf("--overlap must be >= 0 (%d)", overlap)
	case spread < 1:
		return fmt.Errorf("--spread must be >= 1 (%d)", spread)
	}

	opts := []synth.Option{
		synth.WithSeed(seed),
		synth.WithScanners(count),
		synth.WithBeacons(beacons),
		synth.WithOverlap(overlap),
		synth.WithSpread(spread),
	}
	if mirrors {
		opts = append(opts, synth.WithMirrors())
	}
	fx, err := synth.Generate(opts...)
	if err != nil {
		return err
	}
	return scanner.Write(cmd.OutOrStdout(), fx.Scanners)
}
