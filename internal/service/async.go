package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/couchcryptid/bank-status-service/internal/domain"
	"github.com/couchcryptid/bank-status-service/internal/observability"
)

// AsyncAnalytics dispatches each event on its own goroutine so the request
// path never waits on the sink. Publish failures are logged and counted,
// never propagated; RecordEvent always returns nil.
type AsyncAnalytics struct {
	inner   domain.Analytics
	logger  *slog.Logger
	metrics *observability.Metrics
	timeout time.Duration
	wg      sync.WaitGroup
}

// NewAsyncAnalytics wraps inner with asynchronous dispatch. Each publish gets
// its own deadline of timeout (5s when non-positive), detached from the
// request context because the response may be sent before the publish
// completes.
func NewAsyncAnalytics(inner domain.Analytics, logger *slog.Logger, metrics *observability.Metrics, timeout time.Duration) *AsyncAnalytics {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &AsyncAnalytics{
		inner:   inner,
		logger:  logger,
		metrics: metrics,
		timeout: timeout,
	}
}

// RecordEvent schedules the event and returns immediately.
func (a *AsyncAnalytics) RecordEvent(_ context.Context, ev domain.Event) error {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
		defer cancel()

		if err := a.inner.RecordEvent(ctx, ev); err != nil {
			a.logger.Warn("analytics publish failed", "event", ev.Name, "error", err)
			a.metrics.AnalyticsErrors.Inc()
			return
		}
		a.metrics.AnalyticsEvents.Inc()
	}()
	return nil
}

// Flush blocks until all scheduled events have been attempted. Called during
// shutdown so in-flight events are not lost.
func (a *AsyncAnalytics) Flush() {
	a.wg.Wait()
}
