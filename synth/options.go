// SPDX-License-Identifier: MIT

package synth

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/beaconreg/scanner"
)

// Deterministic defaults (named, no magic numbers).
const (
	defaultSeed     = int64(1)
	defaultScanners = 5
	defaultBeacons  = 26
	defaultOverlap  = 12
	defaultSpread   = 1000
)

// config aggregates all generator knobs. It is passed by VALUE.
type config struct {
	rng      *rand.Rand // nil until resolved in newConfig
	scanners int
	beacons  int
	overlap  int
	spread   int
	mirrors  bool
}

// Option customizes Generate.
type Option func(*config)

// newConfig applies options in order (last wins) over the defaults.
func newConfig(opts ...Option) config {
	cfg := config{
		scanners: defaultScanners,
		beacons:  defaultBeacons,
		overlap:  defaultOverlap,
		spread:   defaultSpread,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(defaultSeed))
	}
	return cfg
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("synth: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithScanners sets the number of scanners in the chain. Panics if n < 1.
func WithScanners(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("synth: WithScanners(%d): need at least one scanner", n))
	}
	return func(c *config) {
		c.scanners = n
	}
}

// WithBeacons sets how many beacons each scanner observes.
// Panics outside [scanner.MinBeacons, scanner.MaxBeacons].
func WithBeacons(n int) Option {
	if n < scanner.MinBeacons || n > scanner.MaxBeacons {
		panic(fmt.Sprintf("synth: WithBeacons(%d): want %d..%d", n, scanner.MinBeacons, scanner.MaxBeacons))
	}
	return func(c *config) {
		c.beacons = n
	}
}

// WithOverlap sets how many beacons consecutive scanners share. Panics if k < 0.
func WithOverlap(k int) Option {
	if k < 0 {
		panic(fmt.Sprintf("synth: WithOverlap(%d): negative overlap", k))
	}
	return func(c *config) {
		c.overlap = k
	}
}

// WithSpread bounds world coordinates to [-s, s]. Panics if s < 1.
func WithSpread(s int) Option {
	if s < 1 {
		panic(fmt.Sprintf("synth: WithSpread(%d): spread must be positive", s))
	}
	return func(c *config) {
		c.spread = s
	}
}

// WithMirrors lets scanner frames be mirrored as well as rotated.
func WithMirrors() Option {
	return func(c *config) {
		c.mirrors = true
	}
}
