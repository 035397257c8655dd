package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// AirtableConfig configures the upstream table fetch.
type AirtableConfig struct {
	Token         string        `envconfig:"TOKEN" default:""`
	BaseURL       string        `envconfig:"API_URL" default:"https://api.airtable.com/v0"`
	BaseID        string        `envconfig:"BASE_ID" default:"appwknGToAyZyO50F"`
	TableID       string        `envconfig:"TABLE_ID" default:"tblXUBdMdUjq0lDav"`
	Timeout       time.Duration `envconfig:"TIMEOUT" default:"10s"`
	FetchDeadline time.Duration `envconfig:"FETCH_DEADLINE" default:"30s"`
	MaxPages      int           `envconfig:"MAX_PAGES" default:"100"`
	PageSize      int           `envconfig:"PAGE_SIZE" default:"0"`
}

func loadAirtable() (AirtableConfig, error) {
	var cfg AirtableConfig
	if err := envconfig.Process(envPrefixAirtable, &cfg); err != nil {
		return AirtableConfig{}, fmt.Errorf("failed to process airtable config: %w", err)
	}
	return cfg, nil
}

func (a AirtableConfig) validate() error {
	if a.BaseID == "" || a.TableID == "" {
		return fmt.Errorf("AIRTABLE_BASE_ID and AIRTABLE_TABLE_ID must be set")
	}
	if a.Timeout <= 0 {
		return fmt.Errorf("AIRTABLE_TIMEOUT must be positive, got %s", a.Timeout)
	}
	if a.FetchDeadline <= 0 {
		return fmt.Errorf("AIRTABLE_FETCH_DEADLINE must be positive, got %s", a.FetchDeadline)
	}
	if a.MaxPages < 1 {
		return fmt.Errorf("AIRTABLE_MAX_PAGES must be at least 1, got %d", a.MaxPages)
	}
	if a.PageSize < 0 || a.PageSize > maxAirtablePageSize {
		return fmt.Errorf("AIRTABLE_PAGE_SIZE must be between 0 and %d, got %d", maxAirtablePageSize, a.PageSize)
	}
	return nil
}
