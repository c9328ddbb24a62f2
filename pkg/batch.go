package palimpsest

import (
	"context"
	"runtime"

	"github.com/sourcegraph/conc/pool"
)

// Job pairs an input image with the file its result goes to.
type Job struct {
	Source      string
	Destination string
}

// ProcessFiles runs transform over every job with at most maxWorkers files
// in flight; maxWorkers < 1 means one per CPU. Each image is still processed
// by a single goroutine. All jobs are attempted, and the returned error joins
// every failure.
func (p *Pipeline) ProcessFiles(ctx context.Context, jobs []Job, transform Transform, maxWorkers int) error {
	if maxWorkers < 1 {
		maxWorkers = runtime.GOMAXPROCS(0)
	}
	wp := pool.New().
		WithMaxGoroutines(maxWorkers).
		WithErrors().
		WithContext(ctx)
	for _, job := range jobs {
		wp.Go(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return p.Run(job.Source, job.Destination, transform)
		})
	}
	return wp.Wait()
}
