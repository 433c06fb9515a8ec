package worker

import (
	"context"
	"sync"

	"github.com/osse101/KaleFarm_Go/internal/logger"
)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// JobFunc adapts a function to Job
type JobFunc func(ctx context.Context) error

// Process calls f(ctx)
func (f JobFunc) Process(ctx context.Context) error {
	return f(ctx)
}

// Pool represents a worker pool
type Pool struct {
	workers  int
	jobQueue chan Job
	wg       sync.WaitGroup
	quit     chan struct{}

	// ctx is handed to every job; cancelled when Stop gives up waiting
	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.RWMutex
	stopped  bool
	stopOnce sync.Once
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		workers:  workers,
		jobQueue: make(chan Job, queueSize),
		quit:     make(chan struct{}),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start starts the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker is the worker loop. On quit it drains whatever is still queued.
func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobQueue:
			p.process(job)
		case <-p.quit:
			for {
				select {
				case job := <-p.jobQueue:
					p.process(job)
				default:
					return
				}
			}
		}
	}
}

func (p *Pool) process(job Job) {
	if err := job.Process(p.ctx); err != nil {
		logger.FromContext(p.ctx).Error(LogMsgWorkerJobFailed, "error", err)
	}
}

// Enqueue adds a job to the queue, blocking while it is full
func (p *Pool) Enqueue(ctx context.Context, job Job) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return ErrPoolStopped
	}

	select {
	case p.jobQueue <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TryEnqueue adds a job without blocking. It returns false if the queue is full or the pool stopped.
func (p *Pool) TryEnqueue(job Job) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return false
	}

	select {
	case p.jobQueue <- job:
		return true
	default:
		return false
	}
}

// Stop stops accepting jobs, lets the workers drain the queue and waits for them.
// If ctx ends first, running jobs see their context cancelled.
func (p *Pool) Stop(ctx context.Context) error {
	log := logger.FromContext(ctx)

	p.stopOnce.Do(func() {
		log.Info(LogMsgPoolStopping, "queued", len(p.jobQueue))
		p.mu.Lock()
		p.stopped = true
		p.mu.Unlock()
		close(p.quit)
	})

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.cancel()
		log.Info(LogMsgPoolStopped)
		return nil
	case <-ctx.Done():
		p.cancel()
		log.Warn(LogMsgPoolTimeout)
		return ctx.Err()
	}
}
