package executor

import (
	"golang.org/x/sync/errgroup"
)

// --------------------------------------------------------------------------
// Worker Pool
// --------------------------------------------------------------------------

// queueFactor sizes the task queue relative to the worker count. Submissions
// beyond queue capacity block until a worker frees up.
const queueFactor = 4

// Pool is a fixed-size worker pool. Tasks are executed in submission order by
// the first free worker.
type Pool struct {
	tasks   chan func()
	workers *errgroup.Group
}

// NewPool creates a pool with the given number of worker goroutines. A size
// <= 0 is treated as 1.
func NewPool(size int) *Pool {
	if size <= 0 {
		size = 1
	}

	p := &Pool{
		tasks:   make(chan func(), size*queueFactor),
		workers: new(errgroup.Group),
	}

	for i := 0; i < size; i++ {
		p.workers.Go(func() error {
			for task := range p.tasks {
				task()
			}
			return nil
		})
	}

	return p
}

// Submit schedules fn on the pool. Blocks while the queue is full.
//
// Thread-safe: This method is safe for concurrent use
func (p *Pool) Submit(fn func()) {
	p.tasks <- fn
}

// Close stops accepting tasks and waits for the workers to drain the queue.
func (p *Pool) Close() {
	close(p.tasks)
	_ = p.workers.Wait()
}
