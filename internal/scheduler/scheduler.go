// Package scheduler runs a callback on a fixed interval with an explicit
// stop contract, instead of leaving ambient ticker state around.
package scheduler

import (
	"context"
	"sync"
	"time"
)

// Task is a handle to a running periodic job.
type Task struct {
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// Every runs fn on a fixed interval until Stop is called or ctx is done.
// fn runs synchronously in the timer goroutine, so invocations never
// overlap: a tick that fires while fn is still running is delivered after
// it returns, and at most one tick is pending.
func Every(ctx context.Context, interval time.Duration, fn func(context.Context)) *Task {
	t := &Task{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}

	go func() {
		defer close(t.done)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				fn(ctx)
			case <-t.stop:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return t
}

// Stop cancels further triggers and waits for an in-flight run to finish.
// Safe to call more than once.
func (t *Task) Stop() {
	t.stopOnce.Do(func() { close(t.stop) })
	<-t.done
}
