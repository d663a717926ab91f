// Package http exposes the bank-status API plus health, readiness, and
// metrics endpoints.
package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/couchcryptid/bank-status-service/internal/domain"
	"github.com/couchcryptid/bank-status-service/internal/observability"
)

// BankStatusService runs the end-to-end bank status decision.
type BankStatusService interface {
	Check(ctx context.Context, explicitCode, remoteIP string) (domain.CheckResult, error)
	CheckReadiness(ctx context.Context) error
}

// Server exposes the JSON API and the operational HTTP endpoints.
type Server struct {
	httpServer *http.Server
	service    BankStatusService
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewServer creates an HTTP server with the API, /healthz, /readyz, and
// /metrics routes.
func NewServer(addr string, service BankStatusService, metrics *observability.Metrics, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		service: service,
		metrics: metrics,
		logger:  logger,
	}

	mux.HandleFunc("GET /api/v1/bank-status", s.handleBankStatus)
	mux.HandleFunc("GET /api/v1/countries", s.handleCountries)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)
	mux.Handle("GET /metrics", promhttp.Handler())

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleBankStatus(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer func() {
		s.metrics.HTTPRequestDuration.WithLabelValues("/api/v1/bank-status").Observe(time.Since(start).Seconds())
	}()

	code := r.URL.Query().Get("country_code")
	ip := r.URL.Query().Get("ip")
	if ip == "" {
		ip = clientIP(r)
	}

	result, err := s.service.Check(r.Context(), code, ip)
	if err != nil {
		// Configuration defect; the visitor gets a plain failure, operators
		// get the details.
		s.logger.Error("bank status check failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal_error"})
		return
	}

	writeJSON(w, http.StatusOK, toBankStatusResponse(result))
}

func (s *Server) handleCountries(w http.ResponseWriter, _ *http.Request) {
	supported := domain.SupportedCountries()
	countries := make([]countryListEntry, 0, len(supported))
	for _, c := range supported {
		countries = append(countries, countryListEntry{
			Code: string(c.Code),
			Name: c.DisplayName,
		})
	}
	writeJSON(w, http.StatusOK, countriesResponse{Countries: countries})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.service.CheckReadiness(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"error":  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// clientIP extracts the requester's address, preferring the first
// X-Forwarded-For hop set by the load balancer.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if first, _, ok := strings.Cut(fwd, ","); ok {
			return strings.TrimSpace(first)
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}

// API response types.

type bankStatusResponse struct {
	Country *countryResponse `json:"country,omitempty"`
	Status  *statusResponse  `json:"status,omitempty"`
	Error   string           `json:"error,omitempty"`
}

type countryResponse struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	ScheduleName string `json:"schedule_name"`
	ScheduleLink string `json:"schedule_link"`
}

type statusResponse struct {
	Closed bool   `json:"closed"`
	Reason string `json:"reason,omitempty"`
}

type countriesResponse struct {
	Countries []countryListEntry `json:"countries"`
}

type countryListEntry struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

func toBankStatusResponse(result domain.CheckResult) bankStatusResponse {
	resp := bankStatusResponse{Error: string(result.Error)}
	if result.Country != nil {
		resp.Country = &countryResponse{
			Code:         string(result.Country.Code),
			Name:         result.Country.DisplayName,
			ScheduleName: result.Country.Bank.ScheduleName,
			ScheduleLink: result.Country.Bank.ScheduleLink,
		}
	}
	if result.Status != nil {
		resp.Status = &statusResponse{
			Closed: result.Status.Closed,
			Reason: result.Status.Reason,
		}
	}
	return resp
}
