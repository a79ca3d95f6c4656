// SPDX-License-Identifier: MIT

package synth_test

import (
	"testing"

	"github.com/katalvlaran/beaconreg/geom"
	"github.com/katalvlaran/beaconreg/synth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// shared counts beacons two scanners have in common, using the ground truth.
func shared(fx *synth.Fixture, i, j int) int {
	set := make(map[geom.Point]struct{})
	for _, p := range fx.Truth[i].ApplyAll(fx.Scanners[i].Beacons) {
		set[p] = struct{}{}
	}
	n := 0
	for _, p := range fx.Truth[j].ApplyAll(fx.Scanners[j].Beacons) {
		if _, ok := set[p]; ok {
			n++
		}
	}
	return n
}

// TestGenerate_ChainShape checks counts, ids, overlaps and the world set.
func TestGenerate_ChainShape(t *testing.T) {
	fx, err := synth.Generate(synth.WithSeed(5), synth.WithScanners(6), synth.WithBeacons(25), synth.WithOverlap(12))
	require.NoError(t, err)
	require.Len(t, fx.Scanners, 6)
	require.Len(t, fx.Truth, 6)
	assert.Equal(t, geom.IdentityMapping(), fx.Truth[0])
	assert.Len(t, fx.World, 25+5*13)

	for i, s := range fx.Scanners {
		assert.Equal(t, i, s.ID)
		require.NoError(t, s.Validate())
		assert.Len(t, s.Beacons, 25)
	}
	for i := 1; i < 6; i++ {
		assert.Equal(t, 12, shared(fx, i-1, i), "neighbours %d,%d", i-1, i)
	}
	for i := 2; i < 6; i++ {
		assert.Equal(t, 0, shared(fx, i-2, i), "scanners %d,%d two hops apart", i-2, i)
	}
}

// TestGenerate_Deterministic returns identical fixtures for the same seed.
func TestGenerate_Deterministic(t *testing.T) {
	a, err := synth.Generate(synth.WithSeed(77))
	require.NoError(t, err)
	b, err := synth.Generate(synth.WithSeed(77))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := synth.Generate(synth.WithSeed(78))
	require.NoError(t, err)
	assert.NotEqual(t, a.Scanners, c.Scanners)
}

// TestGenerate_ProperByDefault keeps frames proper unless mirrors are enabled.
func TestGenerate_ProperByDefault(t *testing.T) {
	fx, err := synth.Generate(synth.WithSeed(1), synth.WithScanners(20), synth.WithBeacons(4), synth.WithOverlap(2))
	require.NoError(t, err)
	for i, m := range fx.Truth {
		assert.True(t, m.Orientation.Proper(), "frame %d", i)
	}

	mirrored := 0
	fx, err = synth.Generate(synth.WithSeed(1), synth.WithScanners(40), synth.WithBeacons(4), synth.WithOverlap(2), synth.WithMirrors())
	require.NoError(t, err)
	for _, m := range fx.Truth {
		if !m.Orientation.Proper() {
			mirrored++
		}
	}
	assert.Positive(t, mirrored, "40 draws from 48 orientations should include a mirror")
}

// TestGenerate_Infeasible rejects shapes the chain cannot hold.
func TestGenerate_Infeasible(t *testing.T) {
	_, err := synth.Generate(synth.WithBeacons(10), synth.WithOverlap(11))
	assert.ErrorIs(t, err, synth.ErrInfeasible)

	_, err = synth.Generate(synth.WithScanners(3), synth.WithBeacons(20), synth.WithOverlap(12))
	assert.ErrorIs(t, err, synth.ErrInfeasible)

	_, err = synth.Generate(synth.WithScanners(2), synth.WithBeacons(30), synth.WithSpread(1))
	assert.ErrorIs(t, err, synth.ErrInfeasible, "27 lattice points cannot hold 48 beacons")

	fx, err := synth.Generate(synth.WithScanners(2), synth.WithBeacons(20), synth.WithOverlap(12))
	require.NoError(t, err, "two scanners may share more than half their beacons")
	assert.Equal(t, 12, shared(fx, 0, 1))
}

// TestOptions_Panic checks option constructors reject meaningless input.
func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { synth.WithRand(nil) })
	assert.Panics(t, func() { synth.WithScanners(0) })
	assert.Panics(t, func() { synth.WithBeacons(1) })
	assert.Panics(t, func() { synth.WithBeacons(65) })
	assert.Panics(t, func() { synth.WithOverlap(-1) })
	assert.Panics(t, func() { synth.WithSpread(0) })
}
