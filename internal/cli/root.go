// SPDX-License-Identifier: MIT

// Package cli implements the beaconreg command line: resolve a scan report
// into one frame, or generate a synthetic one.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/beaconreg/internal/monitoring"
)

// Execute runs the root command with os.Args and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCmd assembles the command tree. Each call returns a fresh tree so
// tests can run commands in isolation.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "beaconreg",
		Short:         "Register 3-D beacon scanners into one coordinate frame",
		Long:          "beaconreg reads per-scanner beacon reports, finds which scanners overlap, and places every scanner and beacon in the frame of a root scanner.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(cmd)
		},
	}

	root.PersistentFlags().String("config", "", "config file (default .beaconreg.yaml)")
	root.PersistentFlags().BoolP("verbose", "v", false, "log resolver progress to stderr")
	_ = viper.BindPFlag("verbose", root.PersistentFlags().Lookup("verbose"))

	root.AddCommand(newResolveCmd(), newGenerateCmd())
	return root
}

// initConfig locates the config file and routes diagnostics.
func initConfig(cmd *cobra.Command) error {
	if cfgFile, _ := cmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", cfgFile, err)
		}
	} else {
		viper.SetConfigName(".beaconreg")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		// a missing file means defaults; a broken one is an error
		if err := viper.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return fmt.Errorf("reading config: %w", err)
			}
		}
	}

	setLogging(viper.GetBool("verbose"), cmd.ErrOrStderr())
	return nil
}

// setLogging mutes monitoring unless verbose.
func setLogging(verbose bool, w io.Writer) {
	if verbose {
		monitoring.SetOutput(w, "beaconreg: ")
		return
	}
	monitoring.SetLogger(nil)
}
