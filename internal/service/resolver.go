// Package service composes the location resolver, the country registry, and
// the bank status engine into the end-to-end request decision, and attaches
// the observability that decision emits.
package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/couchcryptid/bank-status-service/internal/domain"
	"github.com/couchcryptid/bank-status-service/internal/observability"
)

// Resolver decides a country code for a request. An explicit visitor-supplied
// code is authoritative; the geolocation transport is only contacted when no
// code was supplied.
type Resolver struct {
	locator   domain.CountryLocator
	analytics domain.Analytics
	tracker   domain.ErrorTracker
	logger    *slog.Logger
	metrics   *observability.Metrics
}

// NewResolver creates a Resolver with the given collaborators.
func NewResolver(locator domain.CountryLocator, analytics domain.Analytics, tracker domain.ErrorTracker, logger *slog.Logger, metrics *observability.Metrics) *Resolver {
	return &Resolver{
		locator:   locator,
		analytics: analytics,
		tracker:   tracker,
		logger:    logger,
		metrics:   metrics,
	}
}

// Resolve produces the LocationResolution for one request. Every call emits
// exactly one country_lookup analytics event; failures judged unexpected are
// additionally reported to the error tracker. Lookup failures never
// propagate: they degrade to an unsuccessful resolution.
func (r *Resolver) Resolve(ctx context.Context, explicitCode, remoteIP string) domain.LocationResolution {
	if strings.TrimSpace(explicitCode) != "" {
		code := domain.NormalizeCountryCode(explicitCode)
		r.trackSuccess(ctx, code)
		return domain.LocationResolution{Success: true, CountryCode: code}
	}

	raw, err := r.locator.CountryForIP(ctx, remoteIP)
	if err != nil {
		kind, attempted := classifyLookupError(err)
		r.logger.Warn("country lookup failed",
			"remote_ip", remoteIP,
			"kind", kind,
			"error", err,
		)
		r.metrics.CountryLookups.WithLabelValues("failure", string(kind)).Inc()
		r.recordEvent(ctx, domain.EventCountryLookupFailed, map[string]string{
			"country_code": attempted,
			"error":        string(kind),
		})
		if !kind.Expected() {
			r.tracker.ReportError(err)
		}
		return domain.LocationResolution{ErrorKind: kind}
	}

	code := domain.NormalizeCountryCode(raw)
	r.trackSuccess(ctx, code)
	return domain.LocationResolution{Success: true, CountryCode: code}
}

func (r *Resolver) trackSuccess(ctx context.Context, code domain.CountryCode) {
	r.metrics.CountryLookups.WithLabelValues("success", "").Inc()
	r.recordEvent(ctx, domain.EventCountryLookupSuccess, map[string]string{
		"country_code": string(code),
	})
}

// recordEvent emits an analytics event, swallowing failures: a broken
// observability pipe never becomes a user-visible error.
func (r *Resolver) recordEvent(ctx context.Context, name string, attrs map[string]string) {
	ev := domain.Event{Name: name, Attributes: attrs, Time: domain.Now()}
	if err := r.analytics.RecordEvent(ctx, ev); err != nil {
		r.logger.Warn("analytics event failed", "event", name, "error", err)
		r.metrics.AnalyticsErrors.Inc()
	}
}

// classifyLookupError maps a locator failure onto the error taxonomy,
// recovering the attempted country code when the provider returned one.
func classifyLookupError(err error) (domain.ErrorKind, string) {
	var lerr *domain.LookupError
	if errors.As(err, &lerr) {
		return lerr.Kind, lerr.Code
	}
	return domain.ErrorKindUnknownResponseError, ""
}
