package games

// Upstream field names read from each record.
const (
	FieldEvent           = "Event"
	FieldStartDate       = "Start Date"
	FieldStatus          = "Status"
	FieldPrimetime       = "Primetime"
	FieldPrimetimeSelect = "Primetime Select"
)

// Defaults applied when a field is absent from the upstream record.
const (
	DefaultEvent           = "Match"
	DefaultStartDate       = ""
	DefaultStatus          = "Scheduled"
	DefaultPrimetime       = false
	DefaultPrimetimeSelect = ""
)

// Fields holds upstream field values exactly as decoded.
// Keys missing from the upstream payload are absent from the map.
type Fields map[string]any

// Lookup returns the raw value for key and whether it was present.
func (f Fields) Lookup(key string) (any, bool) {
	if f == nil {
		return nil, false
	}
	v, ok := f[key]
	return v, ok
}

// String returns the value for key when it is present and a string.
func (f Fields) String(key string) (string, bool) {
	v, ok := f.Lookup(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Record is a single row from the upstream table.
type Record struct {
	ID     string `json:"id"`
	Fields Fields `json:"fields"`
}

// Summary is the client-facing projection of a Record.
// Pass-through fields keep the upstream type, so a non-boolean Primetime is
// served as received.
type Summary struct {
	ID              string `json:"id"`
	Event           any    `json:"event"`
	StartDate       string `json:"startDate"`
	Status          any    `json:"status"`
	Primetime       any    `json:"primetime"`
	PrimetimeSelect any    `json:"primetimeSelect"`
}

// TodayResponse is the payload returned by /api/today-games.
type TodayResponse struct {
	Date  string    `json:"date"`
	Games []Summary `json:"games"`
	Count int       `json:"count"`
}

// NewTodayResponse builds a TodayResponse payload. Games is never nil so it
// encodes as an empty array.
func NewTodayResponse(date string, games []Summary) TodayResponse {
	if games == nil {
		games = []Summary{}
	}
	return TodayResponse{
		Date:  date,
		Games: games,
		Count: len(games),
	}
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error     string `json:"error"`
	Details   string `json:"details,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}
