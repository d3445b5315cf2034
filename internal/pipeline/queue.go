package pipeline

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Job is the smallest useful unit of batch routing. Extend as needed later
// (profile, retry, priority).
type Job struct {
	Path        string
	Hint        string
	SubmittedAt time.Time
	TraceID     string
}

// RouteQueue fans routing decisions out over a fixed worker pool. Documents
// are independent, so workers need no coordination beyond the channel.
type RouteQueue struct {
	router  *Router
	logger  *slog.Logger
	workers int
	timeout time.Duration
	onDone  func(Job, Decision, error)

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*RouteQueue)

func WithWorkers(n int) Option {
	return func(q *RouteQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}

func WithQueueSize(n int) Option {
	return func(q *RouteQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}

func WithRouteTimeout(d time.Duration) Option {
	return func(q *RouteQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

// WithResultHandler registers a callback invoked after every job, on the
// worker goroutine, with the decision or the routing error.
func WithResultHandler(fn func(Job, Decision, error)) Option {
	return func(q *RouteQueue) {
		q.onDone = fn
	}
}

func NewRouteQueue(router *Router, logger *slog.Logger, opts ...Option) *RouteQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &RouteQueue{
		router:  router,
		logger:  logger,
		workers: 4,
		timeout: time.Minute,
		ch:      make(chan Job, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *RouteQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Debug("route worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					dec, err := q.router.Route(ctx, job.Path, job.Hint)
					cancel()

					if err != nil {
						q.logger.Error("routing failed", "worker_id", workerID, "path", job.Path, "error", err)
					}
					if q.onDone != nil {
						q.onDone(job, dec, err)
					}
				}

				q.logger.Debug("route worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *RouteQueue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "path", job.Path)
		return nil
	}
	select {
	case q.ch <- job:
		q.logger.Debug("queued document for routing", "path", job.Path)
	default:
		q.logger.Warn("queue full, applying backpressure", "path", job.Path)
		q.ch <- job
	}
	return nil
}

func (q *RouteQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}
