package domain

import (
	"context"
	"time"
)

// Analytics event names emitted by the resolver and the orchestrator.
const (
	EventCountryLookupSuccess = "country_lookup_success"
	EventCountryLookupFailed  = "country_lookup_failed"
	EventBankStatusCheck      = "bank_status_check"
)

// Event is one analytics datapoint.
type Event struct {
	Name       string            `json:"name"`
	Attributes map[string]string `json:"attributes,omitempty"`
	Time       time.Time         `json:"time"`
}

// Analytics records events for later analysis. Implementations may deliver
// asynchronously; callers never treat a recording failure as a request
// failure.
type Analytics interface {
	RecordEvent(ctx context.Context, ev Event) error
}

// ErrorTracker surfaces unexpected faults to operators. Fire and forget.
type ErrorTracker interface {
	ReportError(err error)
}

// NopAnalytics discards events. Wired in when analytics is disabled.
type NopAnalytics struct{}

func (NopAnalytics) RecordEvent(context.Context, Event) error { return nil }

// NopTracker discards errors. Wired in when no tracker is configured.
type NopTracker struct{}

func (NopTracker) ReportError(error) {}
