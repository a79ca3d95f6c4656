// SPDX-License-Identifier: MIT

package fingerprint

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/beaconreg/scanner"
)

// BuildAll builds one fingerprint per scanner, in input order, on at most
// workers goroutines (workers <= 0 means GOMAXPROCS).
// Each goroutine writes only its own result slot, so no locking is needed.
// Returns ctx.Err() if the context is cancelled before all work is done.
func BuildAll(ctx context.Context, scanners []scanner.Scanner, workers int) ([]*Fingerprint, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	results := make([]*Fingerprint, len(scanners))
	if len(scanners) == 0 {
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(workers, len(scanners)))

	for i := range scanners {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = Build(scanners[i].Beacons)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
