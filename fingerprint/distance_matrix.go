// SPDX-License-Identifier: MIT

package fingerprint

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
var ErrIndexOutOfBounds = errors.New("fingerprint: index out of bounds")

// DistanceMatrix is a square, symmetric, row-major matrix of squared
// distances. n is the side length and data holds n*n elements.
type DistanceMatrix struct {
	n    int     // side length
	data []int64 // flat backing storage, length == n*n
}

// newDistanceMatrix allocates an n×n zero matrix.
// Complexity: O(n²) time and memory.
func newDistanceMatrix(n int) *DistanceMatrix {
	return &DistanceMatrix{n: n, data: make([]int64, n*n)}
}

// Size returns the side length of the matrix.
// Complexity: O(1).
func (m *DistanceMatrix) Size() int {
	return m.n
}

// At returns the squared distance between beacons i and j.
// Panics on out-of-range indices; use Lookup for a checked read.
// Complexity: O(1).
func (m *DistanceMatrix) At(i, j int) int64 {
	return m.data[i*m.n+j]
}

// Lookup is the bounds-checked variant of At.
// Complexity: O(1).
func (m *DistanceMatrix) Lookup(i, j int) (int64, error) {
	// Validate row index
	if i < 0 || i >= m.n {
		return 0, fmt.Errorf("DistanceMatrix.Lookup(%d,%d): %w", i, j, ErrIndexOutOfBounds)
	}
	// Validate column index
	if j < 0 || j >= m.n {
		return 0, fmt.Errorf("DistanceMatrix.Lookup(%d,%d): %w", i, j, ErrIndexOutOfBounds)
	}
	return m.data[i*m.n+j], nil
}

// setSym writes d at (i,j) and (j,i).
func (m *DistanceMatrix) setSym(i, j int, d int64) {
	m.data[i*m.n+j] = d
	m.data[j*m.n+i] = d
}
