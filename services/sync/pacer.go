package sync

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// chunkedRunner executes items in fixed-size chunks. Each chunk runs
// fully concurrently; a pause is inserted between chunks (none after
// the last). This is the upstream rate ceiling made explicit and
// tunable rather than ad hoc sleeps.
type chunkedRunner struct {
	size  int
	pause time.Duration
}

// run invokes fn for indices 0..n-1 under the chunking contract. It
// returns early when ctx is canceled during an inter-chunk pause.
func (r chunkedRunner) run(ctx context.Context, n int, fn func(ctx context.Context, i int)) {
	size := r.size
	if size <= 0 {
		size = 1
	}

	for start := 0; start < n; start += size {
		if start > 0 {
			select {
			case <-ctx.Done():
				return
			case <-time.After(r.pause):
			}
		}

		end := min(start+size, n)
		g, gctx := errgroup.WithContext(ctx)
		for i := start; i < end; i++ {
			g.Go(func() error {
				fn(gctx, i)
				return nil
			})
		}
		_ = g.Wait()
	}
}
