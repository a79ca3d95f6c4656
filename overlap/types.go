// SPDX-License-Identifier: MIT

package overlap

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/beaconreg/fingerprint"
)

// DefaultMinOverlap is the number of beacons two scanners must share.
const DefaultMinOverlap = 12

// maxBeacons is the width of the adjacency bitmask.
const maxBeacons = 64

// Sentinel errors for detector construction.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("overlap: invalid option supplied")
)

// Option configures a Detector via functional arguments.
// Invalid values are recorded and surfaced by NewDetector.
type Option func(*Options)

// Options holds detector parameters.
type Options struct {
	// MinOverlap is the smallest number of shared beacons accepted.
	// Must be at least 2.
	MinOverlap int

	err error
}

// DefaultOptions returns Options with MinOverlap = DefaultMinOverlap.
func DefaultOptions() Options {
	return Options{MinOverlap: DefaultMinOverlap}
}

// WithMinOverlap sets the overlap threshold.
//
//	n >= 2:  accepted
//	n < 2:   ErrOptionViolation (a single shared beacon has no distance)
//	n > 64:  ErrOptionViolation (exceeds the bitmask width)
func WithMinOverlap(n int) Option {
	return func(o *Options) {
		switch {
		case n < 2:
			o.err = fmt.Errorf("%w: MinOverlap must be >= 2 (%d)", ErrOptionViolation, n)
		case n > maxBeacons:
			o.err = fmt.Errorf("%w: MinOverlap must be <= %d (%d)", ErrOptionViolation, maxBeacons, n)
		default:
			o.MinOverlap = n
		}
	}
}

// Candidate is a detected overlap: index sets into each scanner's beacon
// list that participate in one mutually consistent distance clique. The two
// sets have equal length but are NOT yet paired element by element.
type Candidate struct {
	// A and B are ascending beacon indices into the first and second scanner.
	A, B []int

	// EdgesA and EdgesB are the intersected pair distances restricted to A
	// and B respectively, sorted by D. Each holds len(A)·(len(A)−1)/2 entries.
	EdgesA, EdgesB []fingerprint.PairDistance
}

// Size returns the number of beacons in the overlap.
func (c *Candidate) Size() int {
	return len(c.A)
}

// UniqueDistances reports whether every distance inside the overlap occurs
// once on both sides, which makes distance values usable as edge identities.
func (c *Candidate) UniqueDistances() bool {
	return distinct(c.EdgesA) && distinct(c.EdgesB)
}

// distinct reports whether a D-sorted list holds no repeated D.
func distinct(edges []fingerprint.PairDistance) bool {
	for k := 1; k < len(edges); k++ {
		if edges[k].D == edges[k-1].D {
			return false
		}
	}
	return true
}
