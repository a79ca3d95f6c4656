// SPDX-License-Identifier: MIT

package synth

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/beaconreg/geom"
	"github.com/katalvlaran/beaconreg/scanner"
)

// ErrInfeasible is returned when the requested chain cannot be laid out.
var ErrInfeasible = errors.New("synth: infeasible fixture shape")

// Fixture is a generated dataset with its ground truth.
type Fixture struct {
	// Scanners in chain order; Scanners[i].ID == i.
	Scanners []scanner.Scanner

	// Truth[i] maps scanner i's frame into scanner 0's frame.
	Truth []geom.Mapping

	// World holds every distinct beacon in scanner 0's frame.
	World []geom.Point
}

// Generate builds a chain fixture.
// Stage 1: draw a random frame (orientation + offset) per scanner.
// Stage 2: walk the chain; scanner i takes Overlap beacons from the part of
// scanner i−1 not already shared with i−2, and fills up with fresh beacons.
// Stage 3: express each scanner's beacons in its own frame and shuffle them.
// Complexity: O(Scanners · Beacons).
func Generate(opts ...Option) (*Fixture, error) {
	cfg := newConfig(opts...)
	if cfg.overlap > cfg.beacons {
		return nil, fmt.Errorf("%w: overlap %d > beacons %d", ErrInfeasible, cfg.overlap, cfg.beacons)
	}
	if cfg.scanners > 2 && cfg.beacons-cfg.overlap < cfg.overlap {
		return nil, fmt.Errorf("%w: %d beacons leave %d fresh, need %d to continue the chain",
			ErrInfeasible, cfg.beacons, cfg.beacons-cfg.overlap, cfg.overlap)
	}
	side := int64(2*cfg.spread + 1)
	need := int64(cfg.beacons + (cfg.scanners-1)*(cfg.beacons-cfg.overlap))
	if need > side*side*side {
		return nil, fmt.Errorf("%w: spread %d cannot hold %d distinct beacons", ErrInfeasible, cfg.spread, need)
	}

	g := &generator{cfg: cfg, used: make(map[geom.Point]struct{}, need)}
	fx := &Fixture{
		Scanners: make([]scanner.Scanner, cfg.scanners),
		Truth:    make([]geom.Mapping, cfg.scanners),
	}

	// Stage 1
	fx.Truth[0] = geom.IdentityMapping()
	for i := 1; i < cfg.scanners; i++ {
		fx.Truth[i] = g.frame()
	}

	// Stage 2
	var fresh []geom.Point // beacons of the previous scanner free to share
	for i := 0; i < cfg.scanners; i++ {
		world := make([]geom.Point, 0, cfg.beacons)
		if i > 0 {
			world = append(world, fresh[:cfg.overlap]...)
		}
		start := len(world)
		for len(world) < cfg.beacons {
			world = append(world, g.beacon())
		}
		fx.World = append(fx.World, world[start:]...)
		fresh = world[start:]
		if len(fresh) < cfg.overlap {
			// two-scanner chains may reuse shared beacons; nothing follows
			fresh = world
		}

		// Stage 3
		inv := fx.Truth[i].Inverse()
		local := inv.ApplyAll(world)
		cfg.rng.Shuffle(len(local), func(a, b int) { local[a], local[b] = local[b], local[a] })
		fx.Scanners[i] = scanner.Scanner{ID: i, Beacons: local}
	}

	return fx, nil
}

// generator carries the RNG and the set of world beacons already drawn.
type generator struct {
	cfg  config
	used map[geom.Point]struct{}
}

// coord draws one coordinate in [-spread, spread].
func (g *generator) coord() int {
	return g.cfg.rng.Intn(2*g.cfg.spread+1) - g.cfg.spread
}

// beacon draws a world beacon not drawn before.
func (g *generator) beacon() geom.Point {
	for {
		p := geom.Point{g.coord(), g.coord(), g.coord()}
		if _, dup := g.used[p]; !dup {
			g.used[p] = struct{}{}
			return p
		}
	}
}

// frame draws a random scanner pose relative to scanner 0.
func (g *generator) frame() geom.Mapping {
	pool := geom.ProperRotations()
	if g.cfg.mirrors {
		pool = geom.AllOrientations()
	}
	return geom.Mapping{
		Offset:      geom.Point{g.coord(), g.coord(), g.coord()},
		Orientation: pool[g.cfg.rng.Intn(len(pool))],
	}
}
