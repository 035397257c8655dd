package providers

import (
	"context"

	domaingames "today-games-service/internal/domain/games"
)

// RecordSource fetches the complete upstream record set.
// Implementations return records in upstream delivery order and never return
// partial results alongside an error.
type RecordSource interface {
	FetchRecords(ctx context.Context) ([]domaingames.Record, error)
}
