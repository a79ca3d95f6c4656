// SPDX-License-Identifier: MIT

package geom

import "fmt"

// Point is an integer coordinate triple in some scanner's local frame.
type Point [3]int

// Origin is the zero vector.
var Origin = Point{}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{p[0] + q[0], p[1] + q[1], p[2] + q[2]}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{p[0] - q[0], p[1] - q[1], p[2] - q[2]}
}

// Neg returns -p.
func (p Point) Neg() Point {
	return Point{-p[0], -p[1], -p[2]}
}

// Less orders points lexicographically by x, then y, then z.
func (p Point) Less(q Point) bool {
	for axis := 0; axis < 3; axis++ {
		if p[axis] != q[axis] {
			return p[axis] < q[axis]
		}
	}
	return false
}

// String renders the point in the input format ("x,y,z").
func (p Point) String() string {
	return fmt.Sprintf("%d,%d,%d", p[0], p[1], p[2])
}

// SquaredDist returns the squared Euclidean distance between a and b.
// The result is widened to int64 so that coordinates of any int magnitude
// used by scanners cannot overflow.
// Complexity: O(1).
func SquaredDist(a, b Point) int64 {
	dx := int64(a[0] - b[0])
	dy := int64(a[1] - b[1])
	dz := int64(a[2] - b[2])
	return dx*dx + dy*dy + dz*dz
}

// Manhattan returns the L1 distance between a and b.
// Complexity: O(1).
func Manhattan(a, b Point) int {
	return abs(a[0]-b[0]) + abs(a[1]-b[1]) + abs(a[2]-b[2])
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
