// SPDX-License-Identifier: MIT

package aggregate_test

import (
	"fmt"

	"github.com/katalvlaran/beaconreg/aggregate"
	"github.com/katalvlaran/beaconreg/geom"
	"github.com/katalvlaran/beaconreg/scanner"
)

// ExampleMerge counts a beacon seen by both scanners once.
func ExampleMerge() {
	scanners := []scanner.Scanner{
		{ID: 0, Beacons: []geom.Point{{1, 0, 0}, {4, 4, 4}}},
		{ID: 1, Beacons: []geom.Point{{0, -1, 0}, {7, 7, 7}}},
	}
	mappings := []geom.Mapping{
		geom.IdentityMapping(),
		{Offset: geom.Point{0, 0, 0}, Orientation: geom.Orientation{Axes: [3]int{1, 0, 2}, Neg: [3]bool{true, false, false}}},
	}
	merged, _ := aggregate.Merge(scanners, mappings)
	fmt.Println(merged)
	fmt.Println(aggregate.MaxScannerDistance(mappings))
	// Output:
	// [-7,7,7 1,0,0 4,4,4]
	// 0
}
