package providers

import (
	"context"
	"log/slog"
	"time"

	domaingames "today-games-service/internal/domain/games"
	"today-games-service/internal/logging"
)

// loggingSource wraps a RecordSource and logs the outcome of every fetch.
type loggingSource struct {
	inner  RecordSource
	name   string
	logger *slog.Logger
	now    func() time.Time
}

// NewLoggingSource returns a RecordSource that logs fetch results under name.
// The request-scoped logger on ctx is preferred over logger when present.
func NewLoggingSource(inner RecordSource, name string, logger *slog.Logger) RecordSource {
	return &loggingSource{
		inner:  inner,
		name:   name,
		logger: logger,
		now:    time.Now,
	}
}

func (s *loggingSource) FetchRecords(ctx context.Context) ([]domaingames.Record, error) {
	start := s.now()
	records, err := s.inner.FetchRecords(ctx)
	elapsed := s.now().Sub(start)

	logger := logging.FromContext(ctx, s.logger)
	if err != nil {
		logWithSource(ctx, logger, slog.LevelWarn, s.name, "upstream fetch failed",
			slog.String(logging.FieldErrorKind, string(KindOf(err))),
			slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
			slog.Any("error", err),
		)
		return nil, err
	}

	logWithSource(ctx, logger, slog.LevelInfo, s.name, "upstream fetch complete",
		slog.Int(logging.FieldRecords, len(records)),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
	return records, nil
}

// logWithSource emits a log entry if logger is non-nil and always includes the source name.
func logWithSource(ctx context.Context, logger *slog.Logger, level slog.Level, source string, msg string, args ...any) {
	if logger == nil {
		return
	}
	args = append(args, slog.String(logging.FieldSource, source))
	logger.Log(ctx, level, msg, args...)
}
