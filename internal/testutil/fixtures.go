package testutil

import domaingames "today-games-service/internal/domain/games"

// SampleRecord returns a record with only a start date set.
func SampleRecord(id, startDate string) domaingames.Record {
	return domaingames.Record{
		ID: id,
		Fields: domaingames.Fields{
			domaingames.FieldStartDate: startDate,
		},
	}
}

// SampleEventRecord returns a record with an event name and start date.
func SampleEventRecord(id, event, startDate string) domaingames.Record {
	rec := SampleRecord(id, startDate)
	rec.Fields[domaingames.FieldEvent] = event
	return rec
}
