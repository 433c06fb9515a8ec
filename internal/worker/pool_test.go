package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/KaleFarm_Go/internal/testing/leaktest"
)

type testJob struct {
	executed *int32
}

func (j *testJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	return nil
}

func TestPool(t *testing.T) {
	var executed int32
	pool := NewPool(TestWorkerCount, TestQueueSize)
	pool.Start()

	ctx := context.Background()
	job := &testJob{executed: &executed}
	require.NoError(t, pool.Enqueue(ctx, job))
	require.NoError(t, pool.Enqueue(ctx, job))

	require.NoError(t, pool.Stop(ctx))

	assert.Equal(t, int32(TestExpectedJobCount), atomic.LoadInt32(&executed))
}

func TestPool_StopDrainsQueue(t *testing.T) {
	var executed int32
	pool := NewPool(1, TestQueueSize)

	job := &testJob{executed: &executed}
	for i := 0; i < 5; i++ {
		require.True(t, pool.TryEnqueue(job))
	}

	// Workers start after the queue is loaded and must still run everything
	pool.Start()
	require.NoError(t, pool.Stop(context.Background()))
	assert.Equal(t, int32(5), atomic.LoadInt32(&executed))
}

func TestPool_RejectsAfterStop(t *testing.T) {
	pool := NewPool(1, 1)
	pool.Start()
	require.NoError(t, pool.Stop(context.Background()))

	var executed int32
	assert.False(t, pool.TryEnqueue(&testJob{executed: &executed}))
	assert.ErrorIs(t, pool.Enqueue(context.Background(), &testJob{executed: &executed}), ErrPoolStopped)

	// Stopping twice is safe
	assert.NoError(t, pool.Stop(context.Background()))
}

func TestPool_TryEnqueueFull(t *testing.T) {
	pool := NewPool(1, 1)

	var executed int32
	assert.True(t, pool.TryEnqueue(&testJob{executed: &executed}))
	assert.False(t, pool.TryEnqueue(&testJob{executed: &executed}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, pool.Enqueue(ctx, &testJob{executed: &executed}), context.DeadlineExceeded)

	pool.Start()
	require.NoError(t, pool.Stop(context.Background()))
	assert.Equal(t, int32(1), atomic.LoadInt32(&executed))
}

func TestPool_JobErrorDoesNotKillWorker(t *testing.T) {
	pool := NewPool(1, TestQueueSize)
	pool.Start()

	ctx := context.Background()
	var executed int32
	require.NoError(t, pool.Enqueue(ctx, JobFunc(func(ctx context.Context) error {
		return errors.New("boom")
	})))
	require.NoError(t, pool.Enqueue(ctx, &testJob{executed: &executed}))

	require.NoError(t, pool.Stop(ctx))
	assert.Equal(t, int32(1), atomic.LoadInt32(&executed))
}

func TestPool_StopTimeoutCancelsJobs(t *testing.T) {
	pool := NewPool(1, 1)
	pool.Start()

	started := make(chan struct{})
	finished := make(chan error, 1)
	require.NoError(t, pool.Enqueue(context.Background(), JobFunc(func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		finished <- ctx.Err()
		return nil
	})))
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, pool.Stop(ctx), context.DeadlineExceeded)

	select {
	case err := <-finished:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("job did not observe cancellation")
	}
}

func TestPool_StopLeavesNoWorkers(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		var executed int32
		pool := NewPool(4, TestQueueSize)
		pool.Start()
		for i := 0; i < 8; i++ {
			require.NoError(t, pool.Enqueue(context.Background(), &testJob{executed: &executed}))
		}
		require.NoError(t, pool.Stop(context.Background()))
		assert.Equal(t, int32(8), atomic.LoadInt32(&executed))
	})
}
