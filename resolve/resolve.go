// SPDX-License-Identifier: MIT

package resolve

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/beaconreg/correspond"
	"github.com/katalvlaran/beaconreg/fingerprint"
	"github.com/katalvlaran/beaconreg/framegraph"
	"github.com/katalvlaran/beaconreg/geom"
	"github.com/katalvlaran/beaconreg/internal/monitoring"
	"github.com/katalvlaran/beaconreg/overlap"
	"github.com/katalvlaran/beaconreg/scanner"
)

// state of a scanner during the walk.
type state uint8

const (
	unvisited state = iota
	queued          // mapping known, not yet expanded
	resolved        // expanded
)

// frontierItem pairs a scanner index with its depth.
type frontierItem struct {
	id    int
	depth int
}

// pairResult is the outcome of one overlap check.
type pairResult struct {
	match *correspond.Match
	err   error
}

// walker encapsulates mutable traversal state. Only the goroutine running
// loop touches it; pair checks write into their own pairResult slot.
type walker struct {
	scanners []scanner.Scanner
	fps      []*fingerprint.Fingerprint
	det      *overlap.Detector
	solver   *correspond.Solver
	opts     Options
	ctx      context.Context
	workers  int

	frontier []frontierItem
	state    []state
	res      *Result
}

// Mappings resolves scanners with default options and returns, per input
// index, the mapping from that scanner's frame into scanner 0's frame.
func Mappings(scanners []scanner.Scanner) ([]geom.Mapping, error) {
	res, err := Resolve(scanners)
	if err != nil {
		return nil, err
	}
	return res.Mappings, nil
}

// Resolve places every scanner in the root scanner's frame.
//
// Stage 1: validate input and fingerprint every scanner concurrently.
// Stage 2: walk outward from the root. Each expanded scanner is checked
// against every still-unvisited scanner in parallel; matches are committed
// in ascending index order, giving each newly placed scanner the mapping
// parent∘match and queuing it for expansion.
// Stage 3: any scanner left unvisited yields a *DisconnectedError.
//
// A pair is checked at most once: when one side is expanded the other is
// still unvisited, and afterwards neither is.
//
// Returns ErrNoScanners, ErrRootOutOfRange, ErrOptionViolation, a scanner
// validation error, *PairError, *DisconnectedError, ctx.Err(), or a hook
// error.
//
// Complexity: O(S²) pair checks worst case, each O(n²) for n beacons.
func Resolve(scanners []scanner.Scanner, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Stage 1
	n := len(scanners)
	if n == 0 {
		return nil, ErrNoScanners
	}
	if o.Root >= n {
		return nil, fmt.Errorf("%w: root %d, %d scanners", ErrRootOutOfRange, o.Root, n)
	}
	for i := range scanners {
		if err := scanners[i].Validate(); err != nil {
			return nil, fmt.Errorf("resolve: scanner at index %d: %w", i, err)
		}
	}

	workers := o.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	det, err := overlap.NewDetector(overlap.WithMinOverlap(o.MinOverlap))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOptionViolation, err)
	}
	var solverOpts []correspond.Option
	if o.ProperOnly {
		solverOpts = append(solverOpts, correspond.WithProperOnly())
	}
	solver, err := correspond.NewSolver(solverOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOptionViolation, err)
	}
	fps, err := fingerprint.BuildAll(o.Ctx, scanners, workers)
	if err != nil {
		return nil, err
	}

	w := &walker{
		scanners: scanners,
		fps:      fps,
		det:      det,
		solver:   solver,
		opts:     o,
		ctx:      o.Ctx,
		workers:  workers,
		frontier: make([]frontierItem, 0, n),
		state:    make([]state, n),
		res: &Result{
			Mappings: make([]geom.Mapping, n),
			Order:    make([]int, 0, n),
			Parent:   make(map[int]int, n),
			Depth:    make(map[int]int, n),
			Graph:    framegraph.New(),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Graph.AddScanner(i)
	}

	// Stage 2
	w.push(o.Root, 0, -1, geom.IdentityMapping())
	if err := w.loop(); err != nil {
		return nil, err
	}

	// Stage 3
	var missing []int
	for i, st := range w.state {
		if st == unvisited {
			missing = append(missing, i)
		}
	}
	if len(missing) > 0 {
		return nil, newDisconnectedError(missing)
	}

	monitoring.Logf("resolve: %d scanners placed in frame of scanner %d after %d pair checks (%s)",
		n, o.Root, w.res.PairsTried, o.Strategy)
	return w.res, nil
}

// push records a newly placed scanner and adds it to the frontier.
func (w *walker) push(id, depth, parent int, m geom.Mapping) {
	w.state[id] = queued
	w.res.Mappings[id] = m
	w.res.Depth[id] = depth
	if parent >= 0 {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, depth)
	w.frontier = append(w.frontier, frontierItem{id: id, depth: depth})
}

// pop removes the next scanner to expand: the oldest for BreadthFirst,
// the newest for DepthFirst.
func (w *walker) pop() frontierItem {
	var item frontierItem
	if w.opts.Strategy == DepthFirst {
		last := len(w.frontier) - 1
		item = w.frontier[last]
		w.frontier = w.frontier[:last]
	} else {
		item = w.frontier[0]
		w.frontier = w.frontier[1:]
	}
	return item
}

// loop expands the frontier until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.frontier) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.pop()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.expand(item); err != nil {
			return err
		}
	}
	return nil
}

// visit marks the scanner resolved, records it in Order and calls OnResolve.
func (w *walker) visit(item frontierItem) error {
	w.state[item.id] = resolved
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnResolve(item.id, w.res.Mappings[item.id]); err != nil {
		return fmt.Errorf("resolve: OnResolve error at scanner %d: %w", item.id, err)
	}
	return nil
}

// expand checks item against every unvisited scanner on a bounded errgroup,
// then commits the matches in ascending index order.
func (w *walker) expand(item frontierItem) error {
	var targets []int
	for j, st := range w.state {
		if st == unvisited {
			targets = append(targets, j)
		}
	}
	if len(targets) == 0 {
		return nil
	}

	results := make([]pairResult, len(targets))
	g, gctx := errgroup.WithContext(w.ctx)
	g.SetLimit(min(w.workers, len(targets)))
	for k, j := range targets {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[k] = w.check(item.id, j)
			return results[k].err
		})
	}
	waitErr := g.Wait()
	w.res.PairsTried += len(targets)

	// a pair failure takes precedence over the cancellation it triggered
	for _, r := range results {
		if r.err != nil {
			return r.err
		}
	}
	if waitErr != nil {
		return waitErr
	}

	for k, j := range targets {
		m := results[k].match
		if m == nil {
			continue
		}
		if err := w.res.Graph.AddOverlap(item.id, j, m); err != nil {
			return fmt.Errorf("resolve: recording overlap %d-%d: %w", item.id, j, err)
		}
		global := w.res.Mappings[item.id].Compose(m.Mapping)
		monitoring.Logf("resolve: scanner %d overlaps scanner %d on %d beacons; scanner %d at %s",
			item.id, j, m.Size(), j, global)
		w.push(j, item.depth+1, item.id, global)
	}
	return nil
}

// check runs detection and, on overlap, correspondence for the pair (a, b).
// A solver failure after a positive detection is fatal and becomes a
// *PairError.
func (w *walker) check(a, b int) pairResult {
	c, ok := w.det.Detect(w.fps[a], w.fps[b])
	if !ok {
		return pairResult{}
	}
	m, err := w.solver.Solve(w.scanners[a].Beacons, w.scanners[b].Beacons, w.fps[a], w.fps[b], c)
	if err != nil {
		return pairResult{err: &PairError{A: a, B: b, IndicesA: c.A, IndicesB: c.B, Err: err}}
	}
	return pairResult{match: m}
}
