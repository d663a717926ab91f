package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/bank-status-service/internal/domain"
	"github.com/couchcryptid/bank-status-service/internal/observability"
)

type failingAnalytics struct{}

func (failingAnalytics) RecordEvent(context.Context, domain.Event) error {
	return errors.New("sink unavailable")
}

func TestAsyncAnalytics_DeliversAfterFlush(t *testing.T) {
	inner := &recordingAnalytics{}
	metrics := observability.NewMetricsForTesting()
	a := NewAsyncAnalytics(inner, discardLogger(), metrics, time.Second)

	err := a.RecordEvent(context.Background(), domain.Event{
		Name:       domain.EventBankStatusCheck,
		Attributes: map[string]string{"country_code": "US"},
	})
	require.NoError(t, err)
	a.Flush()

	events := inner.named(domain.EventBankStatusCheck)
	require.Len(t, events, 1)
	assert.Equal(t, "US", events[0].Attributes["country_code"])
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.AnalyticsEvents))
}

func TestAsyncAnalytics_SwallowsSinkFailures(t *testing.T) {
	metrics := observability.NewMetricsForTesting()
	a := NewAsyncAnalytics(failingAnalytics{}, discardLogger(), metrics, time.Second)

	err := a.RecordEvent(context.Background(), domain.Event{Name: domain.EventCountryLookupFailed})
	require.NoError(t, err)
	a.Flush()

	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.AnalyticsErrors))
}

func TestAsyncAnalytics_DetachedFromRequestContext(t *testing.T) {
	inner := &recordingAnalytics{}
	a := NewAsyncAnalytics(inner, discardLogger(), observability.NewMetricsForTesting(), time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // response already sent; the publish must still go out

	require.NoError(t, a.RecordEvent(ctx, domain.Event{Name: domain.EventCountryLookupSuccess}))
	a.Flush()

	assert.Len(t, inner.named(domain.EventCountryLookupSuccess), 1)
}
