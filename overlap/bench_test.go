// SPDX-License-Identifier: MIT

package overlap_test

import (
	"testing"

	"github.com/katalvlaran/beaconreg/overlap"
)

// BenchmarkDetect compares an overlapping and a disjoint 26-beacon pair.
func BenchmarkDetect(b *testing.B) {
	for _, tc := range []struct {
		name string
		k    int
	}{{"Overlap", 12}, {"Disjoint", 0}} {
		b.Run(tc.name, func(b *testing.B) {
			_, fa, fb := pairFixture(b, 42, 26, tc.k)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = overlap.Detect(fa, fb)
			}
		})
	}
}
