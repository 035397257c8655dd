package airtable

import domaingames "today-games-service/internal/domain/games"

// listRecordsResponse is one page of the list-records endpoint.
type listRecordsResponse struct {
	Records []domaingames.Record `json:"records"`
	Offset  string               `json:"offset"`
}
