package worker

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/KaleFarm_Go/internal/logger"
)

// LoopRunner runs keyed periodic loops. Each tick calls the loop's function;
// a loop stops when its key is stopped, the function returns false, or the runner shuts down.
type LoopRunner struct {
	mu       sync.Mutex
	loops    map[string]chan struct{}
	shutdown chan struct{}
	closed   bool
	wg       sync.WaitGroup
}

// NewLoopRunner creates an empty runner
func NewLoopRunner() *LoopRunner {
	return &LoopRunner{
		loops:    make(map[string]chan struct{}),
		shutdown: make(chan struct{}),
	}
}

// Start runs tick immediately and then every interval until stopped
func (r *LoopRunner) Start(ctx context.Context, key string, interval time.Duration, tick func(ctx context.Context) bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrRunnerClosed
	}
	if _, ok := r.loops[key]; ok {
		return ErrLoopExists
	}

	stop := make(chan struct{})
	r.loops[key] = stop
	r.wg.Add(1)

	// The loop outlives the request that started it
	loopCtx := context.WithoutCancel(ctx)
	go r.run(loopCtx, key, interval, stop, tick)

	logger.FromContext(ctx).Info(LogMsgLoopStarted, "key", key, "interval", interval)
	return nil
}

func (r *LoopRunner) run(ctx context.Context, key string, interval time.Duration, stop chan struct{}, tick func(ctx context.Context) bool) {
	defer r.wg.Done()
	defer r.remove(key, stop)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if !tick(ctx) {
			return
		}
		select {
		case <-ticker.C:
		case <-stop:
			return
		case <-r.shutdown:
			return
		}
	}
}

// remove deletes key only if it still maps to this loop
func (r *LoopRunner) remove(key string, stop chan struct{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if current, ok := r.loops[key]; ok && current == stop {
		delete(r.loops, key)
	}
}

// Stop ends the loop under key. A tick already running finishes first.
func (r *LoopRunner) Stop(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stop, ok := r.loops[key]
	if !ok {
		return ErrLoopNotFound
	}
	close(stop)
	delete(r.loops, key)

	logger.FromContext(ctx).Info(LogMsgLoopStopped, "key", key)
	return nil
}

// Running reports whether a loop runs under key
func (r *LoopRunner) Running(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.loops[key]
	return ok
}

// Keys lists the running loops
func (r *LoopRunner) Keys() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	keys := make([]string, 0, len(r.loops))
	for key := range r.loops {
		keys = append(keys, key)
	}
	return keys
}

// Shutdown stops every loop and waits for in-flight ticks
func (r *LoopRunner) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)

	r.mu.Lock()
	if !r.closed {
		r.closed = true
		close(r.shutdown)
		log.Info(LogMsgLoopShutdown, "loops", len(r.loops))
		r.loops = make(map[string]chan struct{})
	}
	r.mu.Unlock()

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgLoopTimeout)
		return ctx.Err()
	}
}
