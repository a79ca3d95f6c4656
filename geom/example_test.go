// SPDX-License-Identifier: MIT

package geom_test

import (
	"fmt"

	"github.com/katalvlaran/beaconreg/geom"
)

// ExampleMapping_Compose folds two frame hops into one mapping.
func ExampleMapping_Compose() {
	// B→A: quarter turn about z, then shift by (5,5,0).
	bToA := geom.Mapping{
		Offset:      geom.Point{5, 5, 0},
		Orientation: geom.Orientation{Axes: [3]int{1, 0, 2}, Neg: [3]bool{true, false, false}},
	}
	// C→B: plain translation.
	cToB := geom.Mapping{Offset: geom.Point{0, 0, 10}, Orientation: geom.IdentityOrientation()}

	cToA := bToA.Compose(cToB)
	fmt.Println(cToA)
	fmt.Println(cToA.Apply(geom.Point{1, 0, 0}))
	// Output:
	// -y+x+z +(5,5,10)
	// 5,6,10
}
