package games

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryJSONTags(t *testing.T) {
	summaryType := reflect.TypeOf(Summary{})
	fields := map[string]string{
		"ID":              "id",
		"Event":           "event",
		"StartDate":       "startDate",
		"Status":          "status",
		"Primetime":       "primetime",
		"PrimetimeSelect": "primetimeSelect",
	}
	for name, tag := range fields {
		f, ok := summaryType.FieldByName(name)
		require.True(t, ok, "missing field %s", name)
		assert.Equal(t, tag, f.Tag.Get("json"))
	}
}

func TestNewTodayResponseCountsGames(t *testing.T) {
	resp := NewTodayResponse("2025-03-01", []Summary{{ID: "a"}, {ID: "b"}})

	assert.Equal(t, "2025-03-01", resp.Date)
	assert.Equal(t, 2, resp.Count)
	assert.Len(t, resp.Games, 2)
}

func TestNewTodayResponseEncodesEmptyArray(t *testing.T) {
	body, err := json.Marshal(NewTodayResponse("2025-03-01", nil))
	require.NoError(t, err)

	assert.JSONEq(t, `{"date":"2025-03-01","games":[],"count":0}`, string(body))
}

func TestRecordDecodesFieldsAsIs(t *testing.T) {
	var rec Record
	require.NoError(t, json.Unmarshal([]byte(`{"id":"r1","fields":{"Event":"A","Primetime":"yes","Start Date":"2025-03-01T10:00:00"}}`), &rec))

	assert.Equal(t, "r1", rec.ID)
	v, ok := rec.Fields.Lookup(FieldPrimetime)
	assert.True(t, ok)
	assert.Equal(t, "yes", v)

	start, ok := rec.Fields.String(FieldStartDate)
	assert.True(t, ok)
	assert.Equal(t, "2025-03-01T10:00:00", start)

	_, ok = rec.Fields.Lookup(FieldStatus)
	assert.False(t, ok)
}

func TestFieldsStringRejectsNonString(t *testing.T) {
	f := Fields{FieldStartDate: true}
	_, ok := f.String(FieldStartDate)
	assert.False(t, ok)

	var nilFields Fields
	_, ok = nilFields.String(FieldStartDate)
	assert.False(t, ok)
}

func TestErrorResponseOmitsEmptyDetails(t *testing.T) {
	body, err := json.Marshal(ErrorResponse{Error: "boom"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":"boom"}`, string(body))
}
