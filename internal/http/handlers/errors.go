package handlers

import (
	"net/http"

	"today-games-service/internal/providers"
)

const (
	msgUpstreamFetch   = "Failed to fetch from Airtable"
	msgPaginationLimit = "Airtable pagination limit exceeded"
)

// errorResponseFor maps a fetch error to the status and envelope sent to the caller.
// Upstream status failures keep the upstream's status code and raw body.
func errorResponseFor(err error) (status int, message, details string) {
	if plErr, ok := providers.AsPaginationLimitError(err); ok {
		return http.StatusBadGateway, msgPaginationLimit, plErr.Error()
	}
	if upErr, ok := providers.AsUpstreamFetchError(err); ok {
		status := upErr.StatusCode
		if status < 400 || status > 599 {
			status = http.StatusBadGateway
		}
		details := upErr.Body
		if upErr.Timeout {
			details = upErr.Error()
		}
		return status, msgUpstreamFetch, details
	}
	return http.StatusInternalServerError, err.Error(), ""
}
