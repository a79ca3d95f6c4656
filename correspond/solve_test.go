// SPDX-License-Identifier: MIT

package correspond_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/beaconreg/correspond"
	"github.com/katalvlaran/beaconreg/fingerprint"
	"github.com/katalvlaran/beaconreg/geom"
	"github.com/katalvlaran/beaconreg/overlap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quarterTurnZ maps (x, y, z) to (−y, x, z).
var quarterTurnZ = geom.Orientation{Axes: [3]int{1, 0, 2}, Neg: [3]bool{true, false, false}}

// cloud returns n distinct points in [-spread, spread]³, each coordinate a
// multiple of step.
func cloud(rng *rand.Rand, n, spread, step int) []geom.Point {
	seen := make(map[geom.Point]bool, n)
	out := make([]geom.Point, 0, n)
	coord := func() int { return (rng.Intn(2*spread+1) - spread) * step }
	for len(out) < n {
		p := geom.Point{coord(), coord(), coord()}
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}

// observe expresses world points in the frame whose mapping into the world is
// m, then shuffles them.
func observe(rng *rand.Rand, world []geom.Point, m geom.Mapping) []geom.Point {
	local := m.Inverse().ApplyAll(world)
	rng.Shuffle(len(local), func(i, j int) { local[i], local[j] = local[j], local[i] })
	return local
}

// solveAll fingerprints, detects and solves a against b.
func solveAll(t *testing.T, a, b []geom.Point, det *overlap.Detector, opts ...correspond.Option) (*correspond.Match, error) {
	t.Helper()
	fa, fb := fingerprint.Build(a), fingerprint.Build(b)
	c, ok := det.Detect(fa, fb)
	require.True(t, ok, "inputs must overlap")
	s, err := correspond.NewSolver(opts...)
	require.NoError(t, err)
	return s.Solve(a, b, fa, fb, c)
}

// requireCarries checks every paired beacon lands on its partner.
func requireCarries(t *testing.T, m *correspond.Match, a, b []geom.Point) {
	t.Helper()
	require.Equal(t, len(m.A), len(m.B))
	seen := map[int]bool{}
	for k := range m.A {
		require.False(t, seen[m.B[k]], "b index %d paired twice", m.B[k])
		seen[m.B[k]] = true
		require.Equal(t, a[m.A[k]], m.Mapping.Apply(b[m.B[k]]), "pair %d", k)
	}
}

func defaultDetector(t *testing.T) *overlap.Detector {
	d, err := overlap.NewDetector()
	require.NoError(t, err)
	return d
}

// TestSolve_QuarterTurn registers twelve beacons seen after a 90° turn about
// z and a shift of (5,5,0).
func TestSolve_QuarterTurn(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	a := cloud(rng, 12, 1000, 1)
	truth := geom.Mapping{Offset: geom.Point{5, 5, 0}, Orientation: quarterTurnZ}
	b := observe(rng, a, truth)

	m, err := solveAll(t, a, b, defaultDetector(t))
	require.NoError(t, err)
	assert.Equal(t, 12, m.Size())
	assert.Equal(t, truth, m.Mapping)
	requireCarries(t, m, a, b)
}

// TestSolve_Self pairs a scanner with an unmoved copy of itself: every beacon
// matches its own index under the identity mapping.
func TestSolve_Self(t *testing.T) {
	rng := rand.New(rand.NewSource(24))
	a := cloud(rng, 24, 1000, 1)
	b := append([]geom.Point(nil), a...)

	m, err := solveAll(t, a, b, defaultDetector(t))
	require.NoError(t, err)
	assert.Equal(t, len(a), m.Size())
	assert.Equal(t, geom.IdentityMapping(), m.Mapping)
	assert.Equal(t, m.A, m.B)
	requireCarries(t, m, a, b)
}

// TestSolve_EveryOrientation recovers all 48 signed permutations, mirrors
// included.
func TestSolve_EveryOrientation(t *testing.T) {
	rng := rand.New(rand.NewSource(48))
	world := cloud(rng, 20, 1000, 1)
	for _, o := range geom.AllOrientations() {
		truth := geom.Mapping{Offset: geom.Point{rng.Intn(2001) - 1000, rng.Intn(2001) - 1000, rng.Intn(2001) - 1000}, Orientation: o}
		b := observe(rng, world, truth)

		m, err := solveAll(t, world, b, defaultDetector(t))
		require.NoError(t, err, "orientation %v", o)
		assert.Equal(t, truth, m.Mapping, "orientation %v", o)
		requireCarries(t, m, world, b)
	}
}

// TestSolve_ProperOnly rejects a mirrored frame when reflections are off.
func TestSolve_ProperOnly(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	a := cloud(rng, 15, 1000, 1)

	mirror := geom.Mapping{Offset: geom.Point{1, 2, 3}, Orientation: geom.Orientation{Axes: [3]int{0, 1, 2}, Neg: [3]bool{false, false, true}}}
	require.False(t, mirror.Orientation.Proper())
	_, err := solveAll(t, a, observe(rng, a, mirror), defaultDetector(t), correspond.WithProperOnly())
	assert.ErrorIs(t, err, correspond.ErrInconsistentGeometry)

	turn := geom.Mapping{Offset: geom.Point{1, 2, 3}, Orientation: quarterTurnZ}
	b := observe(rng, a, turn)
	m, err := solveAll(t, a, b, defaultDetector(t), correspond.WithProperOnly())
	require.NoError(t, err)
	assert.Equal(t, turn, m.Mapping)
}

// TestSolve_CoincidentDistances pairs a lattice cloud whose distances repeat.
func TestSolve_CoincidentDistances(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	a := cloud(rng, 14, 3, 1)
	require.False(t, fingerprint.Build(a).Unique)

	truth := geom.Mapping{Offset: geom.Point{100, 0, -3}, Orientation: geom.AllOrientations()[11]}
	b := observe(rng, a, truth)

	m, err := solveAll(t, a, b, defaultDetector(t))
	require.NoError(t, err)
	assert.Equal(t, 14, m.Size())
	requireCarries(t, m, a, b)
}

// TestSolve_SearchLimit gives up on coincident distances when the search
// budget is exhausted.
func TestSolve_SearchLimit(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	a := cloud(rng, 14, 3, 1)
	b := observe(rng, a, geom.Mapping{Offset: geom.Point{1, 1, 1}, Orientation: quarterTurnZ})

	_, err := solveAll(t, a, b, defaultDetector(t), correspond.WithSearchLimit(3))
	assert.ErrorIs(t, err, correspond.ErrAmbiguousCorrespondence)
}

// TestSolve_NonAxisRotation detects a congruent copy that no signed axis
// permutation explains: the 3-4-5 rotation about z keeps distances exact on
// points whose coordinates are multiples of five.
func TestSolve_NonAxisRotation(t *testing.T) {
	rng := rand.New(rand.NewSource(345))
	a := cloud(rng, 12, 200, 5)
	b := make([]geom.Point, len(a))
	for i, p := range a {
		b[i] = geom.Point{(3*p[0] - 4*p[1]) / 5, (4*p[0] + 3*p[1]) / 5, p[2]}
	}

	_, err := solveAll(t, a, b, defaultDetector(t))
	assert.ErrorIs(t, err, correspond.ErrInconsistentGeometry)
}

// TestSolve_CandidateMismatch rejects candidates that do not fit the inputs.
func TestSolve_CandidateMismatch(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	a := cloud(rng, 12, 1000, 1)
	fa := fingerprint.Build(a)
	good, ok := overlap.Detect(fa, fa)
	require.True(t, ok)

	tests := []struct {
		name string
		b    []geom.Point
		fb   *fingerprint.Fingerprint
		c    *overlap.Candidate
	}{
		{"NilCandidate", a, fa, nil},
		{"NilFingerprint", a, nil, good},
		{"UnequalSets", a, fa, &overlap.Candidate{A: good.A, B: good.B[:5]}},
		{"IndexOutOfRange", a, fa, &overlap.Candidate{A: good.A, B: append(append([]int(nil), good.B[:11]...), 40)}},
		{"ForeignFingerprint", a[:6], fa, good},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := correspond.Solve(a, tc.b, fa, tc.fb, tc.c)
			assert.ErrorIs(t, err, correspond.ErrCandidateMismatch)
		})
	}
}

// TestMatch_Reverse flips the direction of a solved match.
func TestMatch_Reverse(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	a := cloud(rng, 13, 1000, 1)
	b := observe(rng, a, geom.Mapping{Offset: geom.Point{-7, 0, 44}, Orientation: geom.ProperRotations()[5]})

	m, err := solveAll(t, a, b, defaultDetector(t))
	require.NoError(t, err)
	requireCarries(t, m.Reverse(), b, a)
}

// TestNewSolver_Options validates option bounds.
func TestNewSolver_Options(t *testing.T) {
	_, err := correspond.NewSolver(correspond.WithSearchLimit(0))
	assert.ErrorIs(t, err, correspond.ErrOptionViolation)

	s, err := correspond.NewSolver(correspond.WithSearchLimit(10), correspond.WithProperOnly())
	require.NoError(t, err)
	assert.NotNil(t, s)
}
