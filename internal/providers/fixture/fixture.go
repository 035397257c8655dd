package fixture

import (
	"context"
	"time"

	domaingames "today-games-service/internal/domain/games"
	"today-games-service/internal/timeutil"
)

// Source returns a static set of records useful for local testing and bootstrapping.
type Source struct {
	now func() time.Time
	loc *time.Location
}

// New creates a fixture source whose records fall on the current date in loc.
// A nil loc means the process local zone.
func New(loc *time.Location) *Source {
	return &Source{
		now: time.Now,
		loc: loc,
	}
}

// FetchRecords returns a deterministic set of example records: two today, one
// tomorrow, and one without a start date.
func (s *Source) FetchRecords(ctx context.Context) ([]domaingames.Record, error) {
	_ = ctx

	now := s.now()
	today := timeutil.DateIn(now, s.loc)
	tomorrow := timeutil.DateIn(now.AddDate(0, 0, 1), s.loc)

	return []domaingames.Record{
		{
			ID: "fixture-1",
			Fields: domaingames.Fields{
				domaingames.FieldEvent:           "Celtics vs Lakers",
				domaingames.FieldStartDate:       today + "T19:30:00.000Z",
				domaingames.FieldStatus:          "Scheduled",
				domaingames.FieldPrimetime:       true,
				domaingames.FieldPrimetimeSelect: "National TV",
			},
		},
		{
			ID: "fixture-2",
			Fields: domaingames.Fields{
				domaingames.FieldStartDate: today + "T17:00:00.000Z",
			},
		},
		{
			ID: "fixture-3",
			Fields: domaingames.Fields{
				domaingames.FieldEvent:     "Warriors vs Heat",
				domaingames.FieldStartDate: tomorrow + "T02:00:00.000Z",
			},
		},
		{
			ID: "fixture-4",
			Fields: domaingames.Fields{
				domaingames.FieldEvent: "Unscheduled exhibition",
			},
		},
	}, nil
}
