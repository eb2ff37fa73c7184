package concurrent

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestWorkerPoolProcessesAllJobs(t *testing.T) {
	n := 100
	wp := NewWorkerPool[int, int](8, n)

	for i := 0; i < n; i++ {
		wp.AddJob(i)
	}
	wp.Close()
	wp.Start(func(job int) int { return job * 2 })
	wp.Wait()

	sum := 0
	count := 0
	for res := range wp.CollectResults() {
		sum += res
		count++
	}

	if count != n {
		t.Fatalf("want %d results, got %d", n, count)
	}
	// sum of 2*i for i in [0, n) = n*(n-1)
	if want := n * (n - 1); sum != want {
		t.Fatalf("want sum %d, got %d", want, sum)
	}
}

func TestPoolSchedule(t *testing.T) {
	p := NewPool(4, 4, 1)
	defer p.Close()

	var done atomic.Int32
	finished := make(chan struct{})
	for i := 0; i < 8; i++ {
		p.Schedule(func() {
			if done.Add(1) == 8 {
				close(finished)
			}
		})
	}

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatalf("pool did not run all tasks, done=%d", done.Load())
	}
}

func TestPoolScheduleTimeout(t *testing.T) {
	p := NewPool(1, 0, 1)
	defer p.Close()

	block := make(chan struct{})
	p.Schedule(func() { <-block })

	err := p.ScheduleTimeout(20*time.Millisecond, func() {})
	close(block)

	if err != ErrScheduleTimeout {
		t.Fatalf("want ErrScheduleTimeout, got %v", err)
	}
}
