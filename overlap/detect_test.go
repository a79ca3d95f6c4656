// SPDX-License-Identifier: MIT

package overlap_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/beaconreg/fingerprint"
	"github.com/katalvlaran/beaconreg/geom"
	"github.com/katalvlaran/beaconreg/overlap"
	"github.com/katalvlaran/beaconreg/synth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pairFixture generates two scanners sharing k beacons.
func pairFixture(t testing.TB, seed int64, beacons, k int) (*synth.Fixture, *fingerprint.Fingerprint, *fingerprint.Fingerprint) {
	t.Helper()
	fx, err := synth.Generate(synth.WithSeed(seed), synth.WithScanners(2), synth.WithBeacons(beacons), synth.WithOverlap(k))
	require.NoError(t, err)
	return fx, fingerprint.Build(fx.Scanners[0].Beacons), fingerprint.Build(fx.Scanners[1].Beacons)
}

// sortedPoints returns ps in lexicographic order.
func sortedPoints(ps []geom.Point) []geom.Point {
	out := append([]geom.Point(nil), ps...)
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// TestDetect_SharedTwelve finds exactly the shared beacons of a 12-overlap.
func TestDetect_SharedTwelve(t *testing.T) {
	fx, fa, fb := pairFixture(t, 3, 26, 12)

	c, ok := overlap.Detect(fa, fb)
	require.True(t, ok)
	require.Equal(t, 12, c.Size())
	require.Len(t, c.B, 12)
	assert.Len(t, c.EdgesA, 66)
	assert.Len(t, c.EdgesB, 66)
	assert.True(t, c.UniqueDistances())
	assert.True(t, sort.IntsAreSorted(c.A))
	assert.True(t, sort.IntsAreSorted(c.B))

	var inA, inB []geom.Point
	for _, i := range c.A {
		inA = append(inA, fx.Scanners[0].Beacons[i])
	}
	for _, j := range c.B {
		inB = append(inB, fx.Truth[1].Apply(fx.Scanners[1].Beacons[j]))
	}
	assert.Equal(t, sortedPoints(inA), sortedPoints(inB), "both sides must name the same world beacons")
}

// TestDetect_ElevenIsNotEnough rejects an 11-beacon overlap at the default
// threshold and accepts it when the threshold is lowered.
func TestDetect_ElevenIsNotEnough(t *testing.T) {
	_, fa, fb := pairFixture(t, 4, 26, 11)

	c, ok := overlap.Detect(fa, fb)
	assert.False(t, ok)
	assert.Nil(t, c)

	d, err := overlap.NewDetector(overlap.WithMinOverlap(11))
	require.NoError(t, err)
	assert.Equal(t, 11, d.MinOverlap())
	c, ok = d.Detect(fa, fb)
	require.True(t, ok)
	assert.Equal(t, 11, c.Size())
}

// TestDetect_Disjoint reports no overlap for unrelated scanners.
func TestDetect_Disjoint(t *testing.T) {
	_, fa, fb := pairFixture(t, 5, 26, 0)
	_, ok := overlap.Detect(fa, fb)
	assert.False(t, ok)
}

// TestDetect_Self matches a scanner against a rotated, shifted copy of itself.
func TestDetect_Self(t *testing.T) {
	fx, fa, _ := pairFixture(t, 6, 30, 12)
	m := geom.Mapping{Offset: geom.Point{-40, 7, 1200}, Orientation: geom.ProperRotations()[17]}
	fb := fingerprint.Build(m.ApplyAll(fx.Scanners[0].Beacons))

	c, ok := overlap.Detect(fa, fb)
	require.True(t, ok)
	assert.Equal(t, 30, c.Size())
	assert.Equal(t, c.A, c.B, "a moved copy keeps beacon indices")
}

// TestDetect_CoincidentDistances uses a tight cloud whose distances repeat.
func TestDetect_CoincidentDistances(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	seen := map[geom.Point]bool{}
	var pts []geom.Point
	for len(pts) < 14 {
		p := geom.Point{rng.Intn(7) - 3, rng.Intn(7) - 3, rng.Intn(7) - 3}
		if !seen[p] {
			seen[p] = true
			pts = append(pts, p)
		}
	}
	fa := fingerprint.Build(pts)
	require.False(t, fa.Unique, "a 7³ lattice must repeat distances")

	m := geom.Mapping{Offset: geom.Point{100, 0, -3}, Orientation: geom.AllOrientations()[11]}
	fb := fingerprint.Build(m.ApplyAll(pts))

	c, ok := overlap.Detect(fa, fb)
	require.True(t, ok)
	assert.Equal(t, 14, c.Size())
	assert.False(t, c.UniqueDistances())
}

// TestDetect_Guards covers nil and undersized inputs.
func TestDetect_Guards(t *testing.T) {
	_, fa, _ := pairFixture(t, 7, 26, 12)

	_, ok := overlap.Detect(nil, fa)
	assert.False(t, ok)
	_, ok = overlap.Detect(fa, nil)
	assert.False(t, ok)

	small := fingerprint.Build([]geom.Point{{0, 0, 0}, {1, 2, 3}, {5, 1, 9}})
	_, ok = overlap.Detect(small, small)
	assert.False(t, ok, "three beacons can never reach twelve")
}

// TestNewDetector_Options validates option bounds.
func TestNewDetector_Options(t *testing.T) {
	d, err := overlap.NewDetector()
	require.NoError(t, err)
	assert.Equal(t, overlap.DefaultMinOverlap, d.MinOverlap())

	for _, n := range []int{-1, 0, 1, 65} {
		_, err := overlap.NewDetector(overlap.WithMinOverlap(n))
		assert.ErrorIs(t, err, overlap.ErrOptionViolation, "n=%d", n)
	}

	d, err = overlap.NewDetector(overlap.WithMinOverlap(2))
	require.NoError(t, err)
	assert.Equal(t, 2, d.MinOverlap())
}
