package config

// Provider names accepted by PROVIDER.
const (
	ProviderAirtable = "airtable"
	ProviderFixture  = "fixture"
)

const (
	envPrefixAirtable = "AIRTABLE"

	defaultAirtableBaseURL = "https://api.airtable.com/v0"
	defaultAirtableBaseID  = "appwknGToAyZyO50F"
	defaultAirtableTableID = "tblXUBdMdUjq0lDav"

	// Airtable rejects pageSize above 100.
	maxAirtablePageSize = 100
)
