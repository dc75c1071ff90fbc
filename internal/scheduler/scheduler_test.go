package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEvery_Ticks(t *testing.T) {
	var runs atomic.Int64
	task := Every(context.Background(), 10*time.Millisecond, func(ctx context.Context) {
		runs.Add(1)
	})
	defer task.Stop()

	assert.Eventually(t, func() bool { return runs.Load() >= 2 }, time.Second, 5*time.Millisecond)
}

func TestStop_HaltsTriggers(t *testing.T) {
	var runs atomic.Int64
	task := Every(context.Background(), 5*time.Millisecond, func(ctx context.Context) {
		runs.Add(1)
	})

	assert.Eventually(t, func() bool { return runs.Load() >= 1 }, time.Second, time.Millisecond)
	task.Stop()

	after := runs.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, runs.Load())
}

func TestStop_Idempotent(t *testing.T) {
	task := Every(context.Background(), time.Hour, func(ctx context.Context) {})

	assert.NotPanics(t, func() {
		task.Stop()
		task.Stop()
	})
}

func TestContextCancel_HaltsTriggers(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var runs atomic.Int64
	task := Every(ctx, 5*time.Millisecond, func(ctx context.Context) {
		runs.Add(1)
	})

	cancel()
	task.Stop()

	after := runs.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, runs.Load())
}

func TestRuns_DoNotOverlap(t *testing.T) {
	var active, maxActive atomic.Int64
	task := Every(context.Background(), time.Millisecond, func(ctx context.Context) {
		n := active.Add(1)
		if n > maxActive.Load() {
			maxActive.Store(n)
		}
		time.Sleep(5 * time.Millisecond)
		active.Add(-1)
	})

	time.Sleep(50 * time.Millisecond)
	task.Stop()

	assert.Equal(t, int64(1), maxActive.Load())
}
