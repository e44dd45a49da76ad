package lbm

import (
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// chunks splits [start,end) into at most workers contiguous ranges
// (GOMAXPROCS when workers <= 0) and calls fn for each.
func chunks(workers, start, end int, fn func(s, e int)) {
	total := end - start
	if total <= 0 {
		return
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, total)
	chunk := (total + workers - 1) / workers
	for s := start; s < end; s += chunk {
		fn(s, min(s+chunk, end))
	}
}

// parallelFor executes fn for each i in [start,end) and returns once every
// index is done. Stages that cannot fail use it as their barrier.
func parallelFor(workers, start, end int, fn func(i int)) {
	if workers == 1 {
		for i := start; i < end; i++ {
			fn(i)
		}
		return
	}
	var wg sync.WaitGroup
	chunks(workers, start, end, func(s, e int) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := s; i < e; i++ {
				fn(i)
			}
		}()
	})
	wg.Wait()
}

// parallelRange is parallelFor for stages that can fail. The first error
// returned by fn is reported; the chunk that produced it stops early, the
// others run to completion.
func parallelRange(workers, start, end int, fn func(i int) error) error {
	if workers == 1 {
		for i := start; i < end; i++ {
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	}
	var g errgroup.Group
	chunks(workers, start, end, func(s, e int) {
		g.Go(func() error {
			for i := s; i < e; i++ {
				if err := fn(i); err != nil {
					return err
				}
			}
			return nil
		})
	})
	return g.Wait()
}
