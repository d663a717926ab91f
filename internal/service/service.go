package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/bank-status-service/internal/domain"
	"github.com/couchcryptid/bank-status-service/internal/observability"
)

// Service runs the end-to-end bank status decision: resolve the country,
// look it up in the registry, and evaluate its bank schedule.
type Service struct {
	resolver  *Resolver
	calendar  domain.HolidayCalendar
	analytics domain.Analytics
	logger    *slog.Logger
	metrics   *observability.Metrics
}

// New creates a Service.
func New(resolver *Resolver, calendar domain.HolidayCalendar, analytics domain.Analytics, logger *slog.Logger, metrics *observability.Metrics) *Service {
	return &Service{
		resolver:  resolver,
		calendar:  calendar,
		analytics: analytics,
		logger:    logger,
		metrics:   metrics,
	}
}

// Check handles one request. Expected degradations (no resolvable country,
// unsupported country) come back as CheckResult.Error values; a returned
// error means a configuration defect and should fail the request loudly.
// Exactly one bank_status_check analytics event fires per call regardless of
// the branch taken.
func (s *Service) Check(ctx context.Context, explicitCode, remoteIP string) (domain.CheckResult, error) {
	resolution := s.resolver.Resolve(ctx, explicitCode, remoteIP)

	var result domain.CheckResult
	if !resolution.Success {
		result.Error = domain.RequestErrorNoCountry
	} else {
		country, err := domain.CountryFor(resolution.CountryCode)
		switch {
		case errors.Is(err, domain.ErrNoSuchCountry):
			result.Error = domain.RequestErrorUnsupportedCountry
		default:
			status, err := domain.BankStatusNow(country, s.calendar)
			if err != nil {
				return domain.CheckResult{}, err
			}
			result.Country = &country
			result.Status = &status
		}
	}

	code := string(resolution.CountryCode)
	s.metrics.StatusChecks.WithLabelValues(code, string(result.Error)).Inc()
	s.recordCheckEvent(ctx, code, result.Error)

	return result, nil
}

// CheckReadiness verifies that the static configuration the engine depends
// on is usable: a non-empty registry whose time zones load.
func (s *Service) CheckReadiness(_ context.Context) error {
	supported := domain.SupportedCountries()
	if len(supported) == 0 {
		return errors.New("country registry is empty")
	}
	for _, c := range supported {
		if _, err := time.LoadLocation(c.Bank.TimeZone); err != nil {
			return fmt.Errorf("country %s time zone: %w", c.Code, err)
		}
	}
	return nil
}

func (s *Service) recordCheckEvent(ctx context.Context, code string, reqErr domain.RequestError) {
	attrs := map[string]string{"country_code": code}
	if reqErr != domain.RequestErrorNone {
		attrs["error"] = string(reqErr)
	}
	ev := domain.Event{Name: domain.EventBankStatusCheck, Attributes: attrs, Time: domain.Now()}
	if err := s.analytics.RecordEvent(ctx, ev); err != nil {
		s.logger.Warn("analytics event failed", "event", domain.EventBankStatusCheck, "error", err)
		s.metrics.AnalyticsErrors.Inc()
	}
}
