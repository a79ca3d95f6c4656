// SPDX-License-Identifier: MIT

package framegraph

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/beaconreg/correspond"
	"github.com/katalvlaran/beaconreg/geom"
)

// Sentinel errors for frame graph operations.
var (
	// ErrScannerNotFound indicates an operation referenced an unknown scanner.
	ErrScannerNotFound = errors.New("framegraph: scanner not found")

	// ErrSelfOverlap indicates an overlap from a scanner to itself.
	ErrSelfOverlap = errors.New("framegraph: scanner cannot overlap itself")

	// ErrNilMatch indicates AddOverlap was given no match.
	ErrNilMatch = errors.New("framegraph: match is nil")

	// ErrBrokenPath indicates two consecutive scanners of a path share no
	// recorded overlap.
	ErrBrokenPath = errors.New("framegraph: path step has no overlap")
)

// Overlap is one recorded edge: Match pairs beacons of A (Match.A) with
// beacons of B (Match.B) and maps B's frame into A's. A < B always.
type Overlap struct {
	A, B  int
	Match *correspond.Match
}

// Graph is an undirected graph whose vertices are scanner indices and whose
// edges are solved overlaps. Each edge is stored in both directions; the
// reverse direction holds the reversed match.
//
// mu guards scanners and adj. All methods are safe for concurrent use.
type Graph struct {
	mu       sync.RWMutex
	scanners map[int]struct{}
	adj      map[int]map[int]*correspond.Match // adj[a][b] maps b's frame into a's
	edges    int
}

// New returns an empty Graph.
// Complexity: O(1).
func New() *Graph {
	return &Graph{
		scanners: make(map[int]struct{}),
		adj:      make(map[int]map[int]*correspond.Match),
	}
}

// AddScanner inserts scanner id; re-adding an existing id is a no-op.
// Complexity: O(1).
func (g *Graph) AddScanner(id int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addScannerLocked(id)
}

func (g *Graph) addScannerLocked(id int) {
	if _, ok := g.scanners[id]; ok {
		return
	}
	g.scanners[id] = struct{}{}
	g.adj[id] = make(map[int]*correspond.Match)
}

// HasScanner reports whether id is present.
func (g *Graph) HasScanner(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.scanners[id]
	return ok
}

// AddOverlap records that m maps scanner b's frame into scanner a's.
// Missing scanners are added. A second overlap between the same pair
// replaces the first.
// Complexity: O(1).
func (g *Graph) AddOverlap(a, b int, m *correspond.Match) error {
	if m == nil {
		return ErrNilMatch
	}
	if a == b {
		return fmt.Errorf("%w: %d", ErrSelfOverlap, a)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.addScannerLocked(a)
	g.addScannerLocked(b)
	if _, dup := g.adj[a][b]; !dup {
		g.edges++
	}
	g.adj[a][b] = m
	g.adj[b][a] = m.Reverse()
	return nil
}

// HasOverlap reports whether an overlap between a and b is recorded.
func (g *Graph) HasOverlap(a, b int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adj[a][b]
	return ok
}

// Match returns the match mapping b's frame into a's.
func (g *Graph) Match(a, b int) (*correspond.Match, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	m, ok := g.adj[a][b]
	return m, ok
}

// Neighbors returns the scanners overlapping id in ascending order.
// Complexity: O(d log d).
func (g *Graph) Neighbors(id int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	row, ok := g.adj[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrScannerNotFound, id)
	}
	out := make([]int, 0, len(row))
	for nb := range row {
		out = append(out, nb)
	}
	sort.Ints(out)
	return out, nil
}

// Scanners returns every scanner id in ascending order.
func (g *Graph) Scanners() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]int, 0, len(g.scanners))
	for id := range g.scanners {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

// Overlaps returns every edge once, with A < B, sorted by (A, B).
// Complexity: O(E log E).
func (g *Graph) Overlaps() []Overlap {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Overlap, 0, g.edges)
	for a, row := range g.adj {
		for b, m := range row {
			if a < b {
				out = append(out, Overlap{A: a, B: b, Match: m})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})
	return out
}

// Order returns the number of scanners.
func (g *Graph) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.scanners)
}

// Size returns the number of overlaps.
func (g *Graph) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.edges
}

// Chain composes the overlaps along path and returns the mapping from the
// frame of the last scanner into the frame of the first. A single-element
// path yields the identity.
// Complexity: O(len(path)).
func (g *Graph) Chain(path []int) (geom.Mapping, error) {
	if len(path) == 0 {
		return geom.Mapping{}, fmt.Errorf("%w: empty path", ErrBrokenPath)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.scanners[path[0]]; !ok {
		return geom.Mapping{}, fmt.Errorf("%w: %d", ErrScannerNotFound, path[0])
	}
	acc := geom.IdentityMapping()
	for k := 1; k < len(path); k++ {
		m, ok := g.adj[path[k-1]][path[k]]
		if !ok {
			return geom.Mapping{}, fmt.Errorf("%w: %d→%d", ErrBrokenPath, path[k-1], path[k])
		}
		acc = acc.Compose(m.Mapping)
	}
	return acc, nil
}
