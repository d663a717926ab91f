// Package rollbar reports unexpected errors to Rollbar.
package rollbar

import (
	"log/slog"

	rollbargo "github.com/rollbar/rollbar-go"

	"github.com/couchcryptid/bank-status-service/internal/config"
)

// Tracker sends errors to Rollbar. It implements domain.ErrorTracker.
type Tracker struct {
	client *rollbargo.Client
	logger *slog.Logger
}

// NewTracker creates an asynchronous Rollbar client; delivery never blocks
// the caller.
func NewTracker(cfg *config.Config, logger *slog.Logger) *Tracker {
	client := rollbargo.NewAsync(cfg.RollbarToken, cfg.RollbarEnvironment, "", "", "")
	return &Tracker{client: client, logger: logger}
}

// ReportError queues err for delivery at error level.
func (t *Tracker) ReportError(err error) {
	t.client.ErrorWithLevel(rollbargo.ERR, err)
}

// Close flushes queued items and shuts the client down.
func (t *Tracker) Close() error {
	return t.client.Close()
}
