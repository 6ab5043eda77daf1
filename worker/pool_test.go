package worker

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingTask struct {
	n    *int64
	done chan struct{}
}

func (c *countingTask) Run(ctx context.Context, p *Pool) {
	atomic.AddInt64(c.n, 1)
	close(c.done)
}

func TestPoolRunsSubmittedTasks(t *testing.T) {
	p := New(context.Background(), 3)
	defer p.Shutdown()

	var n int64
	var wg sync.WaitGroup
	const total = 50
	wg.Add(total)
	for i := 0; i < total; i++ {
		done := make(chan struct{})
		go func() {
			<-done
			wg.Done()
		}()
		p.Submit(&countingTask{n: &n, done: done})
	}
	wg.Wait()

	assert.EqualValues(t, total, atomic.LoadInt64(&n))
}

type selfEnqueueTask struct {
	remaining *int64
	done      chan struct{}
}

func (s *selfEnqueueTask) Run(ctx context.Context, p *Pool) {
	if atomic.AddInt64(s.remaining, -1) > 0 {
		p.Submit(s)
		return
	}
	close(s.done)
}

func TestTaskCanEnqueueFurtherTasksOnTheSamePool(t *testing.T) {
	p := New(context.Background(), 2)
	defer p.Shutdown()

	remaining := int64(5)
	done := make(chan struct{})
	p.Submit(&selfEnqueueTask{remaining: &remaining, done: done})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("self-enqueuing task never completed")
	}
	assert.EqualValues(t, 0, atomic.LoadInt64(&remaining))
}

func TestShutdownIsIdempotentAndJoinReturns(t *testing.T) {
	p := New(context.Background(), 2)
	p.Shutdown()
	p.Shutdown()

	joined := make(chan struct{})
	go func() {
		p.Join()
		close(joined)
	}()

	select {
	case <-joined:
	case <-time.After(2 * time.Second):
		t.Fatal("join never returned after shutdown")
	}
}

func TestSubmitAfterShutdownIsDropped(t *testing.T) {
	p := New(context.Background(), 1)
	p.Shutdown()
	p.Join()

	var n int64
	done := make(chan struct{})
	p.Submit(&countingTask{n: &n, done: done})

	select {
	case <-done:
		t.Fatal("task submitted after shutdown should not run")
	case <-time.After(100 * time.Millisecond):
	}
}
