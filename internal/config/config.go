package config

import (
	"errors"
	"os"
	"strings"
	"time"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	// Geolocation provider.
	GeoIPBaseURL string
	GeoIPAPIKey  string
	GeoIPTimeout time.Duration

	// Kafka analytics sink.
	KafkaBrokers        []string
	KafkaAnalyticsTopic string
	AnalyticsEnabled    bool

	// Rollbar error tracking.
	RollbarToken       string
	RollbarEnvironment string

	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration
}

// Load reads configuration from environment variables, applying defaults
// where unset. It is called once at startup; nothing re-reads the
// environment afterwards.
func Load() (*Config, error) {
	geoipTimeout, err := time.ParseDuration(envOrDefault("GEOIP_TIMEOUT", "2s"))
	if err != nil || geoipTimeout <= 0 {
		return nil, errors.New("invalid GEOIP_TIMEOUT")
	}

	shutdownTimeout, err := time.ParseDuration(envOrDefault("SHUTDOWN_TIMEOUT", "10s"))
	if err != nil || shutdownTimeout <= 0 {
		return nil, errors.New("invalid SHUTDOWN_TIMEOUT")
	}

	analyticsEnabled := true
	if v := os.Getenv("ANALYTICS_ENABLED"); v != "" {
		analyticsEnabled = v == "true"
	}

	cfg := &Config{
		GeoIPBaseURL: envOrDefault("GEOIP_BASE_URL", "https://api.hostip.info"),
		GeoIPAPIKey:  os.Getenv("GEOIP_API_KEY"),
		GeoIPTimeout: geoipTimeout,

		KafkaBrokers:        parseBrokers(envOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaAnalyticsTopic: envOrDefault("KAFKA_ANALYTICS_TOPIC", "bank-status-analytics"),
		AnalyticsEnabled:    analyticsEnabled,

		RollbarToken:       os.Getenv("ROLLBAR_TOKEN"),
		RollbarEnvironment: envOrDefault("ROLLBAR_ENVIRONMENT", "development"),

		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,
	}

	if cfg.GeoIPBaseURL == "" {
		return nil, errors.New("GEOIP_BASE_URL is required")
	}
	if cfg.AnalyticsEnabled {
		if len(cfg.KafkaBrokers) == 0 {
			return nil, errors.New("KAFKA_BROKERS is required when analytics is enabled")
		}
		if cfg.KafkaAnalyticsTopic == "" {
			return nil, errors.New("KAFKA_ANALYTICS_TOPIC is required when analytics is enabled")
		}
	}

	return cfg, nil
}

// envOrDefault returns the value of key, or fallback when unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// parseBrokers splits a comma-separated broker list, dropping empty entries.
func parseBrokers(s string) []string {
	var brokers []string
	for _, b := range strings.Split(s, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
