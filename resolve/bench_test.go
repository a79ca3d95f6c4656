// SPDX-License-Identifier: MIT

package resolve_test

import (
	"testing"

	"github.com/katalvlaran/beaconreg/resolve"
	"github.com/katalvlaran/beaconreg/synth"
)

// BenchmarkResolve walks a 12-scanner chain serially and with a pool.
func BenchmarkResolve(b *testing.B) {
	fx, err := synth.Generate(synth.WithSeed(42), synth.WithScanners(12))
	if err != nil {
		b.Fatal(err)
	}
	for _, tc := range []struct {
		name    string
		workers int
	}{{"Serial", 1}, {"Pool", 0}} {
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := resolve.Resolve(fx.Scanners, resolve.WithWorkers(tc.workers)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
