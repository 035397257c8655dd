package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool   `envconfig:"METRICS_ENABLED" default:"true"`
	Port         string `envconfig:"METRICS_PORT" default:"9090"`
	OtlpEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:""`
	ServiceName  string `envconfig:"OTEL_SERVICE_NAME" default:"today-games-service"`
	OtlpInsecure bool   `envconfig:"OTEL_EXPORTER_OTLP_INSECURE" default:"true"`
}

func loadMetrics() (MetricsConfig, error) {
	var cfg MetricsConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return MetricsConfig{}, fmt.Errorf("failed to process metrics config: %w", err)
	}
	return cfg, nil
}
