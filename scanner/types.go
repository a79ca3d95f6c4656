// SPDX-License-Identifier: MIT

// Package scanner holds the Scanner type and the parser for the text input
// format: a sequence of "--- scanner N ---" blocks, one "x,y,z" beacon per
// line, each block terminated by a blank line or end of input.
package scanner

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/beaconreg/geom"
)

// MaxBeacons bounds the number of beacons one scanner may report. The overlap
// detector tracks candidate sets as 64-bit masks.
const MaxBeacons = 64

// MinBeacons is the smallest scanner that still has a pairwise distance.
const MinBeacons = 2

// Sentinel errors for parsing and validation.
var (
	// ErrEmptyInput is returned when the input holds no scanner block at all.
	ErrEmptyInput = errors.New("scanner: no scanners in input")

	// ErrBadHeader indicates a block does not start with "--- scanner N ---".
	ErrBadHeader = errors.New("scanner: malformed scanner header")

	// ErrBadBeacon indicates a beacon line is not three comma-separated integers.
	ErrBadBeacon = errors.New("scanner: malformed beacon line")

	// ErrTooManyBeacons indicates a scanner exceeds MaxBeacons.
	ErrTooManyBeacons = errors.New("scanner: too many beacons")

	// ErrTooFewBeacons indicates a scanner reports fewer than MinBeacons.
	ErrTooFewBeacons = errors.New("scanner: too few beacons")

	// ErrDuplicateBeacon indicates a scanner reports the same beacon twice.
	ErrDuplicateBeacon = errors.New("scanner: duplicate beacon")
)

// Scanner is one device's observation: an identifier and its beacons in the
// device's own frame. Scanners are read-only once parsed.
type Scanner struct {
	ID      int
	Beacons []geom.Point
}

// Len returns the number of beacons.
func (s Scanner) Len() int {
	return len(s.Beacons)
}

// Validate checks the beacon count bounds and rejects duplicate beacons.
// Complexity: O(n).
func (s Scanner) Validate() error {
	n := len(s.Beacons)
	if n < MinBeacons {
		return fmt.Errorf("%w: scanner %d has %d", ErrTooFewBeacons, s.ID, n)
	}
	if n > MaxBeacons {
		return fmt.Errorf("%w: scanner %d has %d (max %d)", ErrTooManyBeacons, s.ID, n, MaxBeacons)
	}
	seen := make(map[geom.Point]struct{}, n)
	for _, p := range s.Beacons {
		if _, dup := seen[p]; dup {
			return fmt.Errorf("%w: scanner %d reports %s twice", ErrDuplicateBeacon, s.ID, p)
		}
		seen[p] = struct{}{}
	}
	return nil
}

// ParseError locates a parse failure in the input.
type ParseError struct {
	Line int    // 1-based line number
	Text string // offending line
	Err  error  // one of the sentinels above
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *ParseError) Unwrap() error {
	return e.Err
}
