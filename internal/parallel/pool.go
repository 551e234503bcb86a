// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package parallel runs frame work on a fixed set of goroutines.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed set of worker goroutines with one queue each. An idle
// worker takes work from the other queues before it blocks on its own.
//
// Pool is safe for concurrent use.
type Pool struct {
	queues  []chan func()
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool
}

// NewPool starts a pool of n workers. Non-positive n means GOMAXPROCS.
func NewPool(n int) *Pool {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	depth := max(n*4, 8)

	p := &Pool{
		queues: make([]chan func(), n),
		done:   make(chan struct{}),
	}
	for i := range p.queues {
		p.queues[i] = make(chan func(), depth)
	}
	p.running.Store(true)

	p.wg.Add(n)
	for i := range n {
		go p.work(i)
	}
	return p
}

func (p *Pool) work(id int) {
	defer p.wg.Done()
	own := p.queues[id]
	for {
		if fn := p.take(id); fn != nil {
			fn()
			continue
		}
		select {
		case fn := <-own:
			fn()
		case <-p.done:
			for {
				select {
				case fn := <-own:
					fn()
				default:
					return
				}
			}
		}
	}
}

// take returns queued work from any queue, own first, or nil.
func (p *Pool) take(id int) func() {
	n := len(p.queues)
	for i := range n {
		select {
		case fn := <-p.queues[(id+i)%n]:
			return fn
		default:
		}
	}
	return nil
}

// Run executes every function in work and waits for all of them. Once the
// pool is closed, Run executes work on the calling goroutine.
func (p *Pool) Run(work []func()) {
	if len(work) == 0 {
		return
	}
	if !p.running.Load() {
		for _, fn := range work {
			fn()
		}
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(work))
	for i, fn := range work {
		task := func() {
			defer wg.Done()
			fn()
		}
		select {
		case p.queues[i%len(p.queues)] <- task:
		case <-p.done:
			task()
		}
	}
	wg.Wait()
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int { return len(p.queues) }

// Running reports whether Close has not been called yet.
func (p *Pool) Running() bool { return p.running.Load() }

// Close stops the workers after the queued work has run. Pending Run calls
// must have returned.
// Close is safe to call multiple times.
func (p *Pool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}
