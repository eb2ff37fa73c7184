package concurrent

import (
	"fmt"
	"time"
)

// ErrScheduleTimeout is returned by ScheduleTimeout when no worker
// becomes free within the given duration.
var ErrScheduleTimeout = fmt.Errorf("schedule error: timed out")

/*
Pool reuses a bounded set of goroutines instead of spawning one per
websocket event.
ref: https://sergey.kamardin.org/articles/million-websocket-and-go/
*/
type Pool struct {
	sem  chan struct{}
	work chan func()
}

// NewPool creates a pool of at most size goroutines with a work queue
// of the given capacity, and spawns the first spawn workers eagerly.
func NewPool(size, queue, spawn int) *Pool {
	if spawn <= 0 && queue > 0 {
		panic("dead queue configuration detected")
	}
	if spawn > size {
		panic("spawn > workers")
	}

	p := &Pool{
		sem:  make(chan struct{}, size),
		work: make(chan func(), queue),
	}
	for i := 0; i < spawn; i++ {
		p.sem <- struct{}{}
		go p.worker(func() {})
	}

	return p
}

// Schedule blocks until a worker or a queue slot takes the task.
func (p *Pool) Schedule(task func()) {
	p.schedule(task, nil)
}

// ScheduleTimeout gives up with ErrScheduleTimeout when every worker
// stays busy for the whole timeout.
func (p *Pool) ScheduleTimeout(timeout time.Duration, task func()) error {
	return p.schedule(task, time.After(timeout))
}

func (p *Pool) schedule(task func(), timeout <-chan time.Time) error {
	select {
	case <-timeout:
		return ErrScheduleTimeout
	case p.work <- task:
		return nil
	case p.sem <- struct{}{}:
		go p.worker(task)
		return nil
	}
}

// Close releases idle workers. callers must stop scheduling before
// closing.
func (p *Pool) Close() {
	close(p.work)
}

func (p *Pool) worker(task func()) {
	defer func() { <-p.sem }()

	task()

	for task := range p.work {
		task()
	}
}
