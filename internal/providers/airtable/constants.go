package airtable

import "time"

const (
	providerName = "airtable"

	defaultBaseURL       = "https://api.airtable.com/v0"
	defaultHTTPTimeout   = 10 * time.Second
	defaultFetchDeadline = 30 * time.Second
	defaultMaxPages      = 100
	// Airtable rejects pageSize above 100.
	maxPageSize = 100
	// Upper bound on how much of an error body is carried into UpstreamFetchError.
	maxErrorBodyBytes = 1 << 20

	queryOffset   = "offset"
	queryPageSize = "pageSize"
)
