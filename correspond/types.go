// SPDX-License-Identifier: MIT

package correspond

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/beaconreg/geom"
)

// DefaultSearchLimit caps the number of partial assignments the
// coincident-distance search may explore.
const DefaultSearchLimit = 1 << 16

// Sentinel errors for correspondence solving.
var (
	// ErrCandidateMismatch indicates the overlap candidate does not fit the
	// scanners it was given with (unequal sets, out-of-range indices).
	ErrCandidateMismatch = errors.New("correspond: candidate does not match scanners")

	// ErrInconsistentGeometry indicates no orientation and offset carry the
	// second scanner's overlap beacons exactly onto the first's.
	ErrInconsistentGeometry = errors.New("correspond: inconsistent geometry")

	// ErrAmbiguousCorrespondence indicates the coincident-distance search hit
	// its limit before settling on a pairing.
	ErrAmbiguousCorrespondence = errors.New("correspond: ambiguous correspondence")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("correspond: invalid option supplied")
)

// Option configures a Solver.
type Option func(*Options)

// Options holds solver parameters.
type Options struct {
	// ProperOnly rejects mirroring orientations (determinant −1).
	ProperOnly bool

	// SearchLimit bounds the coincident-distance search; must be > 0.
	SearchLimit int

	err error
}

// DefaultOptions returns Options that accept any signed axis permutation and
// search up to DefaultSearchLimit partial assignments.
func DefaultOptions() Options {
	return Options{SearchLimit: DefaultSearchLimit}
}

// WithProperOnly restricts solutions to proper rotations.
func WithProperOnly() Option {
	return func(o *Options) {
		o.ProperOnly = true
	}
}

// WithSearchLimit bounds the coincident-distance search.
// n <= 0 is recorded as ErrOptionViolation.
func WithSearchLimit(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: SearchLimit must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.SearchLimit = n
	}
}

// Match is a solved overlap: A[k] in the first scanner is the same beacon as
// B[k] in the second, and Mapping converts the second scanner's frame into
// the first's.
type Match struct {
	A, B    []int
	Mapping geom.Mapping
}

// Size returns the number of paired beacons.
func (m *Match) Size() int {
	return len(m.A)
}

// Reverse returns the same match seen from the second scanner.
func (m *Match) Reverse() *Match {
	return &Match{A: m.B, B: m.A, Mapping: m.Mapping.Inverse()}
}
