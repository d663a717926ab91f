// Package geoip implements the outbound IP geolocation lookup against the
// provider's HTTP API, classifying every way the provider can fail into the
// domain error taxonomy.
package geoip

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/couchcryptid/bank-status-service/internal/config"
	"github.com/couchcryptid/bank-status-service/internal/domain"
	"github.com/couchcryptid/bank-status-service/internal/observability"
)

// badCountryCode is the sentinel the provider returns for requests it could
// not make sense of.
const badCountryCode = "XX"

// Client implements domain.CountryLocator against the geolocation provider.
type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a geolocation client. The configured timeout bounds the
// whole request; a slow provider degrades to a Timeout failure rather than
// holding the request.
func NewClient(cfg *config.Config, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		apiKey: cfg.GeoIPAPIKey,
		httpClient: &http.Client{
			Timeout: cfg.GeoIPTimeout,
		},
		baseURL: cfg.GeoIPBaseURL,
		metrics: metrics,
		logger:  logger,
	}
}

// CountryForIP resolves remoteIP to the provider's raw country code. All
// failures come back as *domain.LookupError; the caller decides which kinds
// are worth alerting on.
func (c *Client) CountryForIP(ctx context.Context, remoteIP string) (string, error) {
	if strings.TrimSpace(remoteIP) == "" {
		// A request with no usable client address carries no geolocation
		// signal; same bucket as reserved/private IPs.
		return "", c.fail(domain.ErrorKindUnsupportedIP, "", errors.New("no remote ip"))
	}

	u := fmt.Sprintf("%s/%s", strings.TrimRight(c.baseURL, "/"), url.PathEscape(remoteIP))
	if c.apiKey != "" {
		params := url.Values{"key": {c.apiKey}}
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", c.fail(domain.ErrorKindConnectionFailed, "", fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.GeoIPRequestDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return "", c.fail(classifyTransportError(err), "", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to decode
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusUnprocessableEntity:
		// The provider reports reserved, private, and unknown IPs this way.
		body, _ := io.ReadAll(resp.Body)
		return "", c.fail(domain.ErrorKindUnsupportedIP, "", fmt.Errorf("geoip status %d: %s", resp.StatusCode, body))
	default:
		body, _ := io.ReadAll(resp.Body)
		return "", c.fail(domain.ErrorKindUnknownResponseError, "", fmt.Errorf("geoip status %d: %s", resp.StatusCode, body))
	}

	var lookup lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&lookup); err != nil {
		return "", c.fail(domain.ErrorKindUnknownResponseFormat, "", fmt.Errorf("decode response: %w", err))
	}

	code := strings.ToUpper(strings.TrimSpace(lookup.CountryCode))
	switch code {
	case "":
		return "", c.fail(domain.ErrorKindUnknownResponseFormat, "", errors.New("response missing country_code"))
	case badCountryCode:
		return "", c.fail(domain.ErrorKindReceivedBadCountry, code, fmt.Errorf("provider returned %s", code))
	}

	c.metrics.GeoIPRequests.WithLabelValues("success").Inc()
	return code, nil
}

// fail counts the outcome and wraps err into the domain error type.
func (c *Client) fail(kind domain.ErrorKind, code string, err error) error {
	c.metrics.GeoIPRequests.WithLabelValues(string(kind)).Inc()
	return &domain.LookupError{Kind: kind, Code: code, Err: err}
}

// classifyTransportError separates deadline expiry from everything else the
// transport can do (refused connections, DNS failures, broken bodies).
func classifyTransportError(err error) domain.ErrorKind {
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.ErrorKindTimeout
	}
	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return domain.ErrorKindTimeout
	}
	return domain.ErrorKindConnectionFailed
}

// Provider API response types.

type lookupResponse struct {
	CountryCode string `json:"country_code"`
	CountryName string `json:"country_name"`
	IP          string `json:"ip"`
}
