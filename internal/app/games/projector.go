package games

import (
	"slices"
	"strings"

	domaingames "today-games-service/internal/domain/games"
)

// Projector filters records to one date and maps them to summaries.
type Projector struct {
	// OnMatch, when set, is called for every record that passes the date filter.
	OnMatch func(domaingames.Record)
}

// Project applies the default Projector.
func Project(records []domaingames.Record, date string) []domaingames.Summary {
	return Projector{}.Project(records, date)
}

// Project keeps records whose Start Date string begins with date, maps them to
// summaries and stable-sorts by startDate. The match is a plain string prefix
// check; timestamps are neither parsed nor shifted between zones.
func (p Projector) Project(records []domaingames.Record, date string) []domaingames.Summary {
	out := make([]domaingames.Summary, 0)
	for _, rec := range records {
		start, ok := rec.Fields.String(domaingames.FieldStartDate)
		if !ok || !strings.HasPrefix(start, date) {
			continue
		}
		if p.OnMatch != nil {
			p.OnMatch(rec)
		}
		out = append(out, summarize(rec, start))
	}

	slices.SortStableFunc(out, func(a, b domaingames.Summary) int {
		return strings.Compare(a.StartDate, b.StartDate)
	})
	return out
}

func summarize(rec domaingames.Record, start string) domaingames.Summary {
	return domaingames.Summary{
		ID:              rec.ID,
		Event:           valueOr(rec.Fields, domaingames.FieldEvent, domaingames.DefaultEvent),
		StartDate:       start,
		Status:          valueOr(rec.Fields, domaingames.FieldStatus, domaingames.DefaultStatus),
		Primetime:       valueOr(rec.Fields, domaingames.FieldPrimetime, domaingames.DefaultPrimetime),
		PrimetimeSelect: valueOr(rec.Fields, domaingames.FieldPrimetimeSelect, domaingames.DefaultPrimetimeSelect),
	}
}

// valueOr returns the raw field value when present, without coercion.
func valueOr(fields domaingames.Fields, key string, fallback any) any {
	if v, ok := fields.Lookup(key); ok {
		return v
	}
	return fallback
}
