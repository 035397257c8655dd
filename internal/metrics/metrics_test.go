package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecorderTracksPageRequestsAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordPageRequest("airtable", 10*time.Millisecond, nil)
	rec.RecordPageRequest("airtable", 15*time.Millisecond, errors.New("boom"))

	snap := rec.Snapshot("airtable")
	assert.Equal(t, 2, snap.PageRequests)
	assert.Equal(t, 1, snap.PageErrors)
	assert.Equal(t, 15*time.Millisecond, snap.LastPageLatency)
}

func TestRecorderTracksFetches(t *testing.T) {
	rec := NewRecorder()
	rec.RecordFetch("airtable", 3, 250, time.Second, "")
	rec.RecordFetch("airtable", 1, 0, time.Second, "upstream_fetch")

	snap := rec.Snapshot("airtable")
	assert.Equal(t, 2, snap.Fetches)
	assert.Equal(t, 1, snap.FetchErrors)
	assert.Equal(t, 1, snap.LastPages)
	assert.Equal(t, 0, snap.LastRecords)
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	assert.NotPanics(t, func() {
		rec.RecordPageRequest("x", time.Millisecond, nil)
		rec.RecordFetch("x", 1, 1, time.Millisecond, "")
		rec.RecordHTTPRequest("GET", "/health", 200, time.Millisecond)
	})
	assert.Equal(t, Snapshot{}, rec.Snapshot("x"))
}

func TestSnapshotUnknownSource(t *testing.T) {
	assert.Equal(t, Snapshot{}, NewRecorder().Snapshot("missing"))
}
