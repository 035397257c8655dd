package games

import (
	"context"
	"log/slog"
	"time"

	domaingames "today-games-service/internal/domain/games"
	"today-games-service/internal/logging"
	"today-games-service/internal/providers"
	"today-games-service/internal/timeutil"
)

// Service builds the day's game list from a RecordSource.
type Service struct {
	source  providers.RecordSource
	loc     *time.Location
	logger  *slog.Logger
	verbose bool
	now     func() time.Time
}

// NewService constructs a Service. A nil loc resolves the reference date in the
// process local zone. verbose logs every matching record's fields at debug level.
func NewService(source providers.RecordSource, loc *time.Location, logger *slog.Logger, verbose bool) *Service {
	return &Service{
		source:  source,
		loc:     loc,
		logger:  logger,
		verbose: verbose,
		now:     time.Now,
	}
}

// ReferenceDate returns today's date string as used for filtering.
func (s *Service) ReferenceDate() string {
	return timeutil.DateIn(s.now(), s.loc)
}

// Today fetches every record and returns the games whose start date falls on
// the reference date, computed once before the fetch begins.
func (s *Service) Today(ctx context.Context) (domaingames.TodayResponse, error) {
	date := s.ReferenceDate()

	records, err := s.source.FetchRecords(ctx)
	if err != nil {
		return domaingames.TodayResponse{}, err
	}

	logger := logging.FromContext(ctx, s.logger)
	projector := Projector{}
	if s.verbose && logger != nil {
		projector.OnMatch = func(rec domaingames.Record) {
			logger.Debug("matching record", slog.String("id", rec.ID), slog.Any("fields", rec.Fields))
		}
	}

	games := projector.Project(records, date)
	logging.Info(logger, "today games resolved",
		slog.String(logging.FieldDate, date),
		slog.Int(logging.FieldRecords, len(records)),
		slog.Int(logging.FieldCount, len(games)),
	)
	return domaingames.NewTodayResponse(date, games), nil
}

// WithClock replaces the wall clock used for the reference date.
func (s *Service) WithClock(now func() time.Time) *Service {
	if now != nil {
		s.now = now
	}
	return s
}
