package testutil

import (
	"context"
	"sync/atomic"

	domaingames "today-games-service/internal/domain/games"
)

// StaticSource returns the configured records and error while counting calls.
type StaticSource struct {
	Records []domaingames.Record
	Err     error
	Calls   atomic.Int32
}

func (s *StaticSource) FetchRecords(ctx context.Context) ([]domaingames.Record, error) {
	_ = ctx
	s.Calls.Add(1)
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Records, nil
}

// PanicSource panics on fetch; used to exercise recovery paths.
type PanicSource struct{}

func (PanicSource) FetchRecords(ctx context.Context) ([]domaingames.Record, error) {
	panic("source exploded")
}
