package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// LogConfig controls the process logger.
type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"text"`
	// File enables rotating file output instead of stdout.
	File string `envconfig:"LOG_FILE" default:""`
}

func loadLog() (LogConfig, error) {
	var cfg LogConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return LogConfig{}, fmt.Errorf("failed to process log config: %w", err)
	}
	return cfg, nil
}

func (l LogConfig) validate() error {
	switch strings.ToLower(l.Format) {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("LOG_FORMAT must be text or json, got %q", l.Format)
	}
}
