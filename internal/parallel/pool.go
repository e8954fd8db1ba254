// Package parallel provides the worker pool and row-band partitioning used
// to pack a single frame across multiple goroutines.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a pool of goroutines for packing frame bands in parallel.
//
// A frame arrives once per display interval, so the pool keeps its workers
// parked between frames instead of spawning goroutines per call. Work items
// are independent band-pack closures; the pool imposes no ordering between
// them.
//
// Thread safety: Pool is safe for concurrent use.
type Pool struct {
	// workers is the number of worker goroutines.
	workers int

	// queue carries pending work items to the workers.
	queue chan func()

	// done signals workers to stop.
	done chan struct{}

	// wg waits for all workers to finish.
	wg sync.WaitGroup

	// running indicates whether the pool is accepting work.
	running atomic.Bool
}

// NewPool creates a pool with the specified number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
// The pool starts immediately and workers begin waiting for work.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		workers: workers,
		queue:   make(chan func(), workers*2),
		done:    make(chan struct{}),
	}

	p.running.Store(true)

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker()
	}

	return p
}

// worker is the main loop for each worker goroutine.
func (p *Pool) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.done:
			// Drain remaining work before exiting.
			for {
				select {
				case work := <-p.queue:
					if work != nil {
						work()
					}
				default:
					return
				}
			}

		case work := <-p.queue:
			if work != nil {
				work()
			}
		}
	}
}

// ExecuteAll runs every work item on the pool and waits for all of them to
// complete. If the pool is closed the items run on the calling goroutine,
// so callers never silently lose work.
func (p *Pool) ExecuteAll(work []func()) {
	if len(work) == 0 {
		return
	}

	if !p.running.Load() {
		for _, fn := range work {
			fn()
		}
		return
	}

	var completion sync.WaitGroup
	completion.Add(len(work))

	for _, fn := range work {
		workFn := fn
		wrapped := func() {
			defer completion.Done()
			workFn()
		}

		select {
		case p.queue <- wrapped:
		case <-p.done:
			// Pool is closing, execute directly.
			wrapped()
		}
	}

	completion.Wait()
}

// Close gracefully shuts down the pool. It stops accepting new work, waits
// for queued work to complete, and stops all workers.
// Close is safe to call multiple times.
func (p *Pool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}

	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int {
	return p.workers
}

// IsRunning returns true if the pool is still accepting work.
func (p *Pool) IsRunning() bool {
	return p.running.Load()
}
