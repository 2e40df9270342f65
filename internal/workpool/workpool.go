// Package workpool runs independent, index-addressed tasks on a bounded set of
// goroutines. Tasks must not share mutable state: each one owns the output slot
// named by its index, so no locking or ordering protocol is needed beyond the
// final wait.
package workpool

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Workers normalizes a requested worker count: values <= 0 select GOMAXPROCS.
func Workers(n int) int {
	if n <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return n
}

// ForEach calls fn(i) for every i in [0, n) using at most workers goroutines
// (see Workers). With a single worker or a single task it runs inline.
// The first non-nil error is returned once every started task has finished.
func ForEach(n, workers int, fn func(i int) error) error {
	if n <= 0 {
		return nil
	}
	workers = Workers(workers)
	if workers == 1 || n == 1 {
		for i := 0; i < n; i++ {
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		g.Go(func() error { return fn(i) })
	}

	return g.Wait()
}
