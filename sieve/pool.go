package sieve

import "sync"

// workerState is the per-worker scratch a sieve task needs: its own
// counter buffer, never shared with any other goroutine, mirroring the
// spec's "each worker owns its counter buffer C" invariant.
type workerState struct {
	c []uint16
}

// workerPool is a channel-based resource manager for workerStates,
// grounded on the teacher's concurrency.ResourceManager[T]: a buffered
// channel doubling as a free-list of owned resources, plus a bounded
// error channel.
type workerPool struct {
	sync.WaitGroup
	resources chan *workerState
	errors    chan error
}

func newWorkerPool(threads, windowSize int) *workerPool {
	resources := make(chan *workerState, threads)
	for i := 0; i < threads; i++ {
		resources <- &workerState{c: make([]uint16, windowSize)}
	}
	return &workerPool{
		resources: resources,
		errors:    make(chan error, threads),
	}
}

// task is the unit of work a pool goroutine runs with a checked-out
// resource.
type task func(s *workerState) error

// run launches f concurrently against the next free worker state. If
// an error has already been recorded, run is a no-op (mirrors the
// teacher's "if errors non-empty, do nothing" short circuit).
func (p *workerPool) run(f task) {
	p.Add(1)
	go func() {
		defer p.Done()
		if len(p.errors) != 0 {
			return
		}
		s := <-p.resources
		if err := f(s); err != nil {
			if len(p.errors) < cap(p.errors) {
				p.errors <- err
			}
		}
		p.resources <- s
	}()
}

// wait blocks until every dispatched task finishes and returns the
// first recorded error, if any.
func (p *workerPool) wait() error {
	p.WaitGroup.Wait()
	if len(p.errors) != 0 {
		return <-p.errors
	}
	return nil
}
