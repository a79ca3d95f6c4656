// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/beaconreg/aggregate"
	"github.com/katalvlaran/beaconreg/internal/config"
	"github.com/katalvlaran/beaconreg/resolve"
	"github.com/katalvlaran/beaconreg/scanner"
)

// report is the serialised outcome of one resolve run.
type report struct {
	Beacons            int             `json:"beacons" yaml:"beacons"`
	MaxScannerDistance int             `json:"max_scanner_distance" yaml:"max_scanner_distance"`
	PairsTried         int             `json:"pairs_tried" yaml:"pairs_tried"`
	Scanners           []scannerReport `json:"scanners" yaml:"scanners"`
}

// scannerReport places one scanner in the root frame.
type scannerReport struct {
	ID          int    `json:"id" yaml:"id"`
	Position    [3]int `json:"position" yaml:"position,flow"`
	Orientation string `json:"orientation" yaml:"orientation"`
	Parent      *int   `json:"parent,omitempty" yaml:"parent,omitempty"`
	Depth       int    `json:"depth" yaml:"depth"`
}

func newReport(scanners []scanner.Scanner, res *resolve.Result, s aggregate.Summary) report {
	r := report{
		Beacons:            s.Beacons,
		MaxScannerDistance: s.MaxScannerDistance,
		PairsTried:         res.PairsTried,
		Scanners:           make([]scannerReport, len(scanners)),
	}
	for i, sc := range scanners {
		m := res.Mappings[i]
		sr := scannerReport{
			ID:          sc.ID,
			Position:    [3]int(m.Offset),
			Orientation: m.Orientation.String(),
			Depth:       res.Depth[i],
		}
		if p, ok := res.Parent[i]; ok {
			parent := scanners[p].ID
			sr.Parent = &parent
		}
		r.Scanners[i] = sr
	}
	return r
}

var (
	labelColor = color.New(color.FgCyan, color.Bold)
	valueColor = color.New(color.FgGreen, color.Bold)
	rootColor  = color.New(color.FgYellow)
)

// writeReport renders r in the configured format.
func writeReport(w io.Writer, cfg config.Config, r report) error {
	switch cfg.Format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		return writeText(w, cfg.NoColor, r)
	}
}

// writeText prints a human-readable summary.
func writeText(w io.Writer, noColor bool, r report) error {
	label, value, root := *labelColor, *valueColor, *rootColor
	if noColor {
		label.DisableColor()
		value.DisableColor()
		root.DisableColor()
	}

	if _, err := fmt.Fprintf(w, "%s %s\n", label.Sprint("beacons:"), value.Sprint(r.Beacons)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s %s\n", label.Sprint("max scanner distance:"), value.Sprint(r.MaxScannerDistance)); err != nil {
		return err
	}
	for _, s := range r.Scanners {
		from := root.Sprint("root")
		if s.Parent != nil {
			from = fmt.Sprintf("via %d", *s.Parent)
		}
		_, err := fmt.Fprintf(w, "%s %s at %d,%d,%d (%s)\n",
			label.Sprintf("scanner %d:", s.ID), s.Orientation, s.Position[0], s.Position[1], s.Position[2], from)
		if err != nil {
			return err
		}
	}
	return nil
}
