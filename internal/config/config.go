package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the server.
type Config struct {
	Host     string `envconfig:"HOST" default:""`
	Port     int    `envconfig:"PORT" default:"5000"`
	Debug    bool   `envconfig:"DEBUG" default:"false"`
	Provider string `envconfig:"PROVIDER" default:"airtable"`
	// Timezone names the zone used for "today". Empty means the process local zone.
	Timezone           string   `envconfig:"TIMEZONE" default:""`
	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`

	Airtable AirtableConfig `ignored:"true"`
	Log      LogConfig      `ignored:"true"`
	Metrics  MetricsConfig  `ignored:"true"`
}

// Load reads configuration from the environment, after merging an optional .env file.
func Load() (Config, error) {
	// Missing .env is the normal case outside local development.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process environment config: %w", err)
	}

	airtable, err := loadAirtable()
	if err != nil {
		return Config{}, err
	}
	cfg.Airtable = airtable

	logCfg, err := loadLog()
	if err != nil {
		return Config{}, err
	}
	cfg.Log = logCfg

	metricsCfg, err := loadMetrics()
	if err != nil {
		return Config{}, err
	}
	cfg.Metrics = metricsCfg

	if cfg.Debug {
		cfg.EnableDebug()
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks values envconfig cannot express as types.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	switch strings.ToLower(c.Provider) {
	case ProviderAirtable, ProviderFixture:
	default:
		return fmt.Errorf("unknown PROVIDER %q", c.Provider)
	}
	if c.Timezone != "" {
		if _, err := time.LoadLocation(c.Timezone); err != nil {
			return fmt.Errorf("TIMEZONE %q: %w", c.Timezone, err)
		}
	}
	if err := c.Airtable.validate(); err != nil {
		return err
	}
	if err := c.Log.validate(); err != nil {
		return err
	}
	return nil
}

// EnableDebug turns on debug logging and per-record diagnostics.
func (c *Config) EnableDebug() {
	c.Debug = true
	c.Log.Level = "debug"
}

// Addr returns the listen address for the API server.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// ProviderName returns the normalized provider name.
func (c Config) ProviderName() string {
	return strings.ToLower(strings.TrimSpace(c.Provider))
}
