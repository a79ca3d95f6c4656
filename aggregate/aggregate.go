// SPDX-License-Identifier: MIT

// Package aggregate combines resolved scanners into one beacon map and
// reports summary figures over it.
package aggregate

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/beaconreg/geom"
	"github.com/katalvlaran/beaconreg/scanner"
)

// ErrLengthMismatch is returned when scanners and mappings differ in length.
var ErrLengthMismatch = errors.New("aggregate: scanners and mappings differ in length")

// Summary describes a resolved scan.
type Summary struct {
	Scanners           int            `json:"scanners" yaml:"scanners"`
	Beacons            int            `json:"beacons" yaml:"beacons"`
	MaxScannerDistance int            `json:"max_scanner_distance" yaml:"max_scanner_distance"`
	Positions          []geom.Point   `json:"positions" yaml:"positions"`
	Mappings           []geom.Mapping `json:"-" yaml:"-"`
}

// Merge maps every beacon into the root frame and returns the distinct
// beacons sorted lexicographically.
// Complexity: O(N log N) for N beacons in total.
func Merge(scanners []scanner.Scanner, mappings []geom.Mapping) ([]geom.Point, error) {
	if len(scanners) != len(mappings) {
		return nil, fmt.Errorf("%w: %d scanners, %d mappings", ErrLengthMismatch, len(scanners), len(mappings))
	}
	set := make(map[geom.Point]struct{})
	for i, s := range scanners {
		for _, p := range s.Beacons {
			set[mappings[i].Apply(p)] = struct{}{}
		}
	}
	out := make([]geom.Point, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out, nil
}

// CountBeacons returns the number of distinct beacons across all scanners.
func CountBeacons(scanners []scanner.Scanner, mappings []geom.Mapping) (int, error) {
	merged, err := Merge(scanners, mappings)
	if err != nil {
		return 0, err
	}
	return len(merged), nil
}

// MaxScannerDistance returns the largest Manhattan distance between two
// scanner positions (mapping offsets); 0 for fewer than two scanners.
// Complexity: O(S²).
func MaxScannerDistance(mappings []geom.Mapping) int {
	best := 0
	for i := 0; i < len(mappings); i++ {
		for j := i + 1; j < len(mappings); j++ {
			if d := geom.Manhattan(mappings[i].Offset, mappings[j].Offset); d > best {
				best = d
			}
		}
	}
	return best
}

// Summarize bundles the beacon count, the largest scanner separation and the
// scanner positions.
func Summarize(scanners []scanner.Scanner, mappings []geom.Mapping) (Summary, error) {
	n, err := CountBeacons(scanners, mappings)
	if err != nil {
		return Summary{}, err
	}
	pos := make([]geom.Point, len(mappings))
	for i, m := range mappings {
		pos[i] = m.Offset
	}
	return Summary{
		Scanners:           len(scanners),
		Beacons:            n,
		MaxScannerDistance: MaxScannerDistance(mappings),
		Positions:          pos,
		Mappings:           mappings,
	}, nil
}
