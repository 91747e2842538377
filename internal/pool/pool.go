// Package pool provides a fixed-size worker pool executing queued tasks in
// FIFO order, with a completion handle per submitted task.
//
// The queue is unbounded and guarded by a single mutex with a condition
// variable; workers block on the condition when idle and run tasks outside
// the lock. Shutdown refuses further submissions, drains everything already
// queued, and joins every worker before returning.
package pool

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
)

// ErrClosed is returned by Submit after Shutdown has begun.
var ErrClosed = errors.New("pool: closed")

// Task computes a result. Tasks must not touch state shared with other
// tasks; the pool gives no ordering guarantee between them.
type Task[R any] func() (R, error)

// Future is the completion handle for a submitted task.
type Future[R any] struct {
	done   chan struct{}
	result R
	err    error
}

// Wait blocks until the task has run and returns its result. A task that
// panicked reports the panic as an error.
func (f *Future[R]) Wait() (R, error) {
	<-f.done
	return f.result, f.err
}

type queued[R any] struct {
	task   Task[R]
	future *Future[R]
}

// Pool executes tasks on a fixed set of worker goroutines.
type Pool[R any] struct {
	mu     sync.Mutex
	cond   *sync.Cond
	queue  []queued[R]
	closed bool
	wg     sync.WaitGroup
}

// New starts a pool with the given number of workers. Zero or negative
// means one worker per CPU.
func New[R any](workers int) *Pool[R] {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	p := &Pool[R]{}
	p.cond = sync.NewCond(&p.mu)
	p.wg.Add(workers)
	for range workers {
		go p.worker()
	}
	return p
}

// Submit enqueues a task and returns its completion handle. It fails only
// after Shutdown has begun.
func (p *Pool[R]) Submit(task Task[R]) (*Future[R], error) {
	f := &Future[R]{done: make(chan struct{})}
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil, ErrClosed
	}
	p.queue = append(p.queue, queued[R]{task: task, future: f})
	p.mu.Unlock()
	p.cond.Signal()
	return f, nil
}

// Shutdown stops accepting tasks, lets the queue drain, and waits for all
// workers to exit. No queued task is dropped. Safe to call more than once.
func (p *Pool[R]) Shutdown() {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		p.cond.Broadcast()
	}
	p.mu.Unlock()
	p.wg.Wait()
}

func (p *Pool[R]) worker() {
	defer p.wg.Done()
	for {
		p.mu.Lock()
		for len(p.queue) == 0 && !p.closed {
			p.cond.Wait()
		}
		if len(p.queue) == 0 {
			// Closed and drained.
			p.mu.Unlock()
			return
		}
		item := p.queue[0]
		p.queue[0] = queued[R]{}
		p.queue = p.queue[1:]
		p.mu.Unlock()

		item.future.result, item.future.err = run(item.task)
		close(item.future.done)
	}
}

// run executes a task with the panic boundary the pool guarantees: a fault
// in one task must not take down the worker or its siblings.
func run[R any](task Task[R]) (result R, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task panicked: %v", r)
		}
	}()
	return task()
}
