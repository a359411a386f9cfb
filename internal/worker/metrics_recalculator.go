package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/vmesquit/mesapos/internal/domain/model"
)

// Recalculator exposes the subset of application functionality required by
// the worker.
type Recalculator interface {
	Recalculate(ctx context.Context, restaurantID int64, date time.Time) (*model.DailyMetric, error)
}

type job struct {
	restaurantID int64
	date         time.Time
}

// MetricsRecalculator recomputes daily metrics in the background. Use cases
// schedule restaurant days fire-and-forget; a worker pool drains the queue.
type MetricsRecalculator struct {
	recalc  Recalculator
	workers int
	logger  *slog.Logger

	jobs   chan job
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewMetricsRecalculator constructs the metrics worker pool.
func NewMetricsRecalculator(recalc Recalculator, queueSize, workers int, logger *slog.Logger) *MetricsRecalculator {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = 1
	}
	return &MetricsRecalculator{
		recalc:  recalc,
		workers: workers,
		logger:  logger,
		jobs:    make(chan job, queueSize),
	}
}

// Schedule enqueues a recomputation request without blocking the caller.
// When the queue is full the request is dropped; the next order mutation
// for the same restaurant reschedules it.
func (p *MetricsRecalculator) Schedule(restaurantID int64, date time.Time) {
	select {
	case p.jobs <- job{restaurantID: restaurantID, date: date}:
	default:
		p.logger.Warn("metrics queue full, dropping recalculation",
			slog.Int64("restaurant_id", restaurantID))
	}
}

// Start launches background processing.
func (p *MetricsRecalculator) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(runCtx)
	}
}

// Stop waits for all workers to finish.
func (p *MetricsRecalculator) Stop() {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.mu.Unlock()

	p.wg.Wait()
}

func (p *MetricsRecalculator) worker(ctx context.Context) {
	defer p.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case j := <-p.jobs:
			if _, err := p.recalc.Recalculate(ctx, j.restaurantID, j.date); err != nil {
				p.logger.Error("daily metrics recalculation failed",
					slog.Int64("restaurant_id", j.restaurantID),
					slog.String("error", err.Error()),
				)
			}
		}
	}
}
