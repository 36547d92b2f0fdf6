package notify

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
)

// Pool runs notification tasks in the background with bounded concurrency.
// Submit never blocks: tasks beyond the pending cap are dropped.
type Pool struct {
	sem        *semaphore.Weighted
	maxPending int
	timeout    time.Duration
	metrics    *Metrics
	log        *slog.Logger

	base   context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	pending int
	closed  bool
	wg      sync.WaitGroup
}

// NewPool creates a pool running at most workers tasks at once and holding at
// most maxPending accepted tasks (running plus waiting). Each task gets its own
// context with the given timeout, detached from any request.
func NewPool(workers, maxPending int, timeout time.Duration, metrics *Metrics, logger *slog.Logger) *Pool {
	if workers <= 0 {
		workers = 1
	}
	if maxPending < workers {
		maxPending = workers
	}
	base, cancel := context.WithCancel(context.Background())
	return &Pool{
		sem:        semaphore.NewWeighted(int64(workers)),
		maxPending: maxPending,
		timeout:    timeout,
		metrics:    metrics,
		log:        logger.With("component", "notify_pool"),
		base:       base,
		cancel:     cancel,
	}
}

// Submit schedules task. It reports false when the task was dropped.
func (p *Pool) Submit(name string, task func(ctx context.Context)) bool {
	p.mu.Lock()
	if p.closed || p.pending >= p.maxPending {
		closed := p.closed
		p.mu.Unlock()
		p.metrics.Dropped.Inc()
		p.log.Warn("notification task dropped",
			slog.String("task", name),
			slog.Bool("closed", closed),
		)
		return false
	}
	p.pending++
	p.wg.Add(1)
	p.mu.Unlock()

	go p.run(name, task)
	return true
}

func (p *Pool) run(name string, task func(ctx context.Context)) {
	defer p.wg.Done()
	defer func() {
		p.mu.Lock()
		p.pending--
		p.mu.Unlock()
	}()

	if err := p.sem.Acquire(p.base, 1); err != nil {
		p.metrics.Dropped.Inc()
		p.log.Warn("notification task abandoned", slog.String("task", name))
		return
	}
	defer p.sem.Release(1)

	p.metrics.InFlight.Inc()
	defer p.metrics.InFlight.Dec()

	ctx, cancel := context.WithTimeout(p.base, p.timeout)
	defer cancel()

	defer func() {
		if rec := recover(); rec != nil {
			p.log.Error("notification task panic",
				slog.String("task", name),
				slog.String("panic", fmt.Sprint(rec)),
				slog.String("stack", string(debug.Stack())),
			)
		}
	}()

	task(ctx)
}

// Wait blocks until every accepted task has finished.
func (p *Pool) Wait() {
	p.wg.Wait()
}

// Shutdown stops accepting tasks and waits for the accepted ones. When ctx
// expires first, running tasks are canceled and ctx's error is returned.
func (p *Pool) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.cancel()
		return nil
	case <-ctx.Done():
		p.cancel()
		<-done
		return ctx.Err()
	}
}
