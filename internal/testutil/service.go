package testutil

import (
	"time"

	"today-games-service/internal/app/games"
	domaingames "today-games-service/internal/domain/games"
	"today-games-service/internal/providers"
)

// NewServiceAt builds a games service over a static source with the clock
// fixed at now, resolving dates in UTC.
func NewServiceAt(records []domaingames.Record, now time.Time) *games.Service {
	return NewServiceWithSource(&StaticSource{Records: records}, now)
}

// NewServiceWithSource builds a games service over source with a fixed UTC clock.
func NewServiceWithSource(source providers.RecordSource, now time.Time) *games.Service {
	return games.NewService(source, time.UTC, nil, false).WithClock(NowAt(now))
}
