// Copyright 2025 The algosharp Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool for
// fork/join parallelism. A Pool is created once and shared by many
// operations, so recursive algorithms do not spawn a goroutine per split.
//
// Work is only handed to a worker when one is free. When every worker is
// busy the caller runs the work itself, which keeps recursive use (a task
// that calls Invoke from inside a worker) from deadlocking.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.Invoke(
//	    func() { sortLeft() },
//	    func() { sortRight() },
//	)
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/sourcegraph/conc/panics"
	"golang.org/x/sync/semaphore"
)

// Pool is a persistent worker pool that can be reused across many parallel
// operations. Workers are spawned once at creation and reused.
type Pool struct {
	numWorkers int
	workC      chan workItem
	// slots bounds the number of work items handed to workers. It never
	// exceeds the number of workers, so a dispatched item always finds a
	// worker even when every other worker is blocked waiting on its own
	// children.
	slots     *semaphore.Weighted
	closeOnce sync.Once
	closed    atomic.Bool
}

// workItem represents a single unit of dispatched work.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
	catcher *panics.Catcher
}

// New creates a new worker pool with the specified number of workers.
// Workers are spawned immediately and persist until Close is called.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers),
		slots:      semaphore.NewWeighted(int64(numWorkers)),
	}

	for range numWorkers {
		go p.worker()
	}

	return p
}

var defaultPool = sync.OnceValue(func() *Pool {
	return New(0)
})

// Default returns a process-wide pool sized to GOMAXPROCS at first use.
// It is never closed.
func Default() *Pool {
	return defaultPool()
}

// worker is the main loop for each persistent worker goroutine.
func (p *Pool) worker() {
	for item := range p.workC {
		item.catcher.Try(item.fn)
		p.slots.Release(1)
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the worker pool. All pending work will complete.
// Calling Close multiple times is safe. A closed pool runs all work on the
// calling goroutine.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// tryDispatch hands fn to a free worker. It returns false, without blocking,
// when no worker is free or the pool is closed.
func (p *Pool) tryDispatch(fn func(), wg *sync.WaitGroup, pc *panics.Catcher) (ok bool) {
	if p.closed.Load() || !p.slots.TryAcquire(1) {
		return false
	}
	defer func() {
		// Close raced with us and the channel is gone.
		if recover() != nil {
			p.slots.Release(1)
			wg.Done()
			ok = false
		}
	}()
	wg.Add(1)
	p.workC <- workItem{fn: fn, barrier: wg, catcher: pc}
	return true
}

// Invoke runs every fn and returns when all of them have finished.
// fns[0] always runs on the calling goroutine; the others are handed to free
// workers and run inline when no worker is free. The functions must not
// write to shared state the others touch.
//
// If any fn panics, Invoke panics on the calling goroutine after all of them
// have finished.
func (p *Pool) Invoke(fns ...func()) {
	if len(fns) == 0 {
		return
	}

	var (
		wg     sync.WaitGroup
		pc     panics.Catcher
		inline []func()
	)
	for _, fn := range fns[1:] {
		if !p.tryDispatch(fn, &wg, &pc) {
			inline = append(inline, fn)
		}
	}

	pc.Try(fns[0])
	for _, fn := range inline {
		pc.Try(fn)
	}

	wg.Wait()
	pc.Repanic()
}

// ParallelFor executes fn over [0, n) using the worker pool.
// Each call of fn processes a contiguous range of indices.
// Blocks until all work completes.
//
// fn receives (start, end) indices where work should process [start, end).
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	if p.closed.Load() {
		// Fallback to sequential if pool is closed
		fn(0, n)
		return
	}

	// Determine number of chunks (don't use more workers than items)
	workers := min(p.numWorkers, n)

	// For very small n, just run sequentially
	if workers == 1 {
		fn(0, n)
		return
	}

	// Calculate chunk size (ensure all items are covered)
	chunkSize := (n + workers - 1) / workers

	var fns []func()
	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		fns = append(fns, func() {
			fn(start, end)
		})
	}

	p.Invoke(fns...)
}
