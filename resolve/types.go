// SPDX-License-Identifier: MIT

package resolve

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/beaconreg/framegraph"
	"github.com/katalvlaran/beaconreg/geom"
	"github.com/katalvlaran/beaconreg/overlap"
)

// Sentinel errors for resolution.
var (
	// ErrNoScanners is returned for an empty input.
	ErrNoScanners = errors.New("resolve: no scanners")

	// ErrRootOutOfRange is returned when WithRoot names a missing scanner.
	ErrRootOutOfRange = errors.New("resolve: root scanner out of range")

	// ErrDisconnectedFrameGraph is matched by *DisconnectedError.
	ErrDisconnectedFrameGraph = errors.New("resolve: frame graph is disconnected")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("resolve: invalid option supplied")
)

// Strategy selects the order in which resolved scanners are expanded.
type Strategy int

const (
	// BreadthFirst expands scanners in the order they were resolved (queue).
	BreadthFirst Strategy = iota

	// DepthFirst expands the most recently resolved scanner first (stack).
	DepthFirst
)

// String returns "bfs" or "dfs".
func (s Strategy) String() string {
	switch s {
	case BreadthFirst:
		return "bfs"
	case DepthFirst:
		return "dfs"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy accepts "bfs", "breadth-first", "dfs" or "depth-first",
// case-insensitively.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bfs", "breadth-first":
		return BreadthFirst, nil
	case "dfs", "depth-first":
		return DepthFirst, nil
	default:
		return 0, fmt.Errorf("%w: unknown strategy %q", ErrOptionViolation, s)
	}
}

// Option configures Resolve via functional arguments. An invalid Option is
// recorded and surfaced as ErrOptionViolation when Resolve is invoked.
type Option func(*Options)

// Options holds parameters and callbacks for Resolve.
type Options struct {
	// Ctx allows cancellation between expansion steps.
	Ctx context.Context

	// Root is the input index whose frame becomes the global frame.
	Root int

	// Strategy picks queue (BreadthFirst) or stack (DepthFirst) expansion.
	Strategy Strategy

	// Workers bounds concurrent pair checks; 0 means GOMAXPROCS.
	Workers int

	// MinOverlap is the shared-beacon threshold for two scanners to match.
	MinOverlap int

	// ProperOnly rejects mirrored frames.
	ProperOnly bool

	// OnEnqueue is called when a scanner is resolved and queued for
	// expansion, with its depth (hops from the root).
	OnEnqueue func(id, depth int)

	// OnResolve is called when a queued scanner is expanded, with its global
	// mapping. A non-nil error aborts Resolve.
	OnResolve func(id int, m geom.Mapping) error

	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - root 0, BreadthFirst, GOMAXPROCS workers
//   - the 12-beacon threshold, mirrored frames allowed
//   - no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		MinOverlap: overlap.DefaultMinOverlap,
		OnEnqueue:  func(int, int) {},
		OnResolve:  func(int, geom.Mapping) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithRoot selects the scanner whose frame is global. Negative ids are
// recorded as ErrOptionViolation; ids past the input fail with
// ErrRootOutOfRange.
func WithRoot(id int) Option {
	return func(o *Options) {
		if id < 0 {
			o.err = fmt.Errorf("%w: Root cannot be negative (%d)", ErrOptionViolation, id)
			return
		}
		o.Root = id
	}
}

// WithStrategy selects the expansion order.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s != BreadthFirst && s != DepthFirst {
			o.err = fmt.Errorf("%w: unknown strategy %d", ErrOptionViolation, int(s))
			return
		}
		o.Strategy = s
	}
}

// WithWorkers bounds concurrent pair checks.
//
//	n > 0:  at most n goroutines
//	n == 0: GOMAXPROCS
//	n < 0:  ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithMinOverlap sets the shared-beacon threshold; see overlap.WithMinOverlap
// for the accepted range.
func WithMinOverlap(n int) Option {
	return func(o *Options) {
		if _, err := overlap.NewDetector(overlap.WithMinOverlap(n)); err != nil {
			o.err = fmt.Errorf("%w: %v", ErrOptionViolation, err)
			return
		}
		o.MinOverlap = n
	}
}

// WithProperOnly rejects mirrored frames.
func WithProperOnly() Option {
	return func(o *Options) {
		o.ProperOnly = true
	}
}

// WithOnEnqueue registers a callback to run when a scanner is queued.
func WithOnEnqueue(fn func(id, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnResolve registers a callback to run when a scanner is expanded;
// returning an error stops Resolve.
func WithOnResolve(fn func(id int, m geom.Mapping) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnResolve = fn
		}
	}
}

// Result holds the outcome of Resolve:
//   - Mappings: per input index, the mapping into the root frame.
//   - Order: scanners in expansion order, root first.
//   - Parent: for every non-root scanner, the scanner it was matched from.
//   - Depth: hops from the root.
//   - Graph: the overlaps used to place each scanner.
//   - PairsTried: overlap checks performed.
type Result struct {
	Mappings   []geom.Mapping
	Order      []int
	Parent     map[int]int
	Depth      map[int]int
	Graph      *framegraph.Graph
	PairsTried int
}

// PathTo reconstructs the chain of scanners from the root to dest.
// Returns an error if dest was not resolved.
func (r *Result) PathTo(dest int) ([]int, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("resolve: no path to scanner %d", dest)
	}
	path := []int{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// PairError reports a pair of scanners that shared enough distances but
// could not be registered. A and B are input indices.
type PairError struct {
	A, B               int
	IndicesA, IndicesB []int // overlap candidate beacon indices
	Err                error
}

func (e *PairError) Error() string {
	return fmt.Sprintf("resolve: scanners %d and %d (%d shared beacons): %v", e.A, e.B, len(e.IndicesA), e.Err)
}

func (e *PairError) Unwrap() error { return e.Err }

// DisconnectedError lists scanners no chain of overlaps reaches from the
// root, in ascending order. It matches ErrDisconnectedFrameGraph.
type DisconnectedError struct {
	Unresolved []int
}

func (e *DisconnectedError) Error() string {
	ids := make([]string, len(e.Unresolved))
	for i, id := range e.Unresolved {
		ids[i] = fmt.Sprint(id)
	}
	return fmt.Sprintf("%v: unresolved scanners [%s]", ErrDisconnectedFrameGraph, strings.Join(ids, " "))
}

func (e *DisconnectedError) Unwrap() error { return ErrDisconnectedFrameGraph }

// newDisconnectedError sorts ids into a *DisconnectedError.
func newDisconnectedError(ids []int) *DisconnectedError {
	sort.Ints(ids)
	return &DisconnectedError{Unresolved: ids}
}
