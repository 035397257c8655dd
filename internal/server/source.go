package server

import (
	"log/slog"
	"time"

	"today-games-service/internal/config"
	"today-games-service/internal/metrics"
	"today-games-service/internal/providers"
	"today-games-service/internal/providers/airtable"
	"today-games-service/internal/providers/fixture"
)

// sourceFactory assembles the record source with shared wrappers.
type sourceFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newSourceFactory(logger *slog.Logger, metrics *metrics.Recorder) sourceFactory {
	return sourceFactory{logger: logger, metrics: metrics}
}

func (f sourceFactory) build(cfg config.Config, loc *time.Location) providers.RecordSource {
	name := cfg.ProviderName()
	return providers.NewLoggingSource(f.selectSource(cfg, loc), name, f.logger)
}

func (f sourceFactory) selectSource(cfg config.Config, loc *time.Location) providers.RecordSource {
	switch cfg.ProviderName() {
	case config.ProviderFixture:
		return fixture.New(loc)
	case config.ProviderAirtable, "":
		if cfg.Airtable.Token == "" && f.logger != nil {
			f.logger.Warn("AIRTABLE_TOKEN is empty; upstream will reject requests")
		}
		return airtable.NewClient(airtable.Config{
			BaseURL:       cfg.Airtable.BaseURL,
			BaseID:        cfg.Airtable.BaseID,
			TableID:       cfg.Airtable.TableID,
			Token:         cfg.Airtable.Token,
			Timeout:       cfg.Airtable.Timeout,
			FetchDeadline: cfg.Airtable.FetchDeadline,
			MaxPages:      cfg.Airtable.MaxPages,
			PageSize:      cfg.Airtable.PageSize,
			Recorder:      f.metrics,
			Logger:        f.logger,
		})
	default:
		if f.logger != nil {
			f.logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New(loc)
	}
}
