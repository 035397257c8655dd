package metrics

import (
	"sync"
	"time"
)

type sourceStats struct {
	pageRequests    int
	pageErrors      int
	fetches         int
	fetchErrors     int
	lastPages       int
	lastRecords     int
	lastPageLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about upstream calls and
// forwards them to OpenTelemetry instruments when configured.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*sourceStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*sourceStats),
		otel:  otel,
	}
}

// RecordPageRequest counts one upstream page request and stores its latency.
func (r *Recorder) RecordPageRequest(source string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.update(source, func(s *sourceStats) {
		s.pageRequests++
		s.lastPageLatency = duration
		if err != nil {
			s.pageErrors++
		}
	})
	if r.otel != nil {
		r.otel.recordPageRequest(source, duration, err)
	}
}

// RecordFetch tracks a complete paginated fetch. errKind is empty on success.
func (r *Recorder) RecordFetch(source string, pages, records int, duration time.Duration, errKind string) {
	if r == nil {
		return
	}

	r.update(source, func(s *sourceStats) {
		s.fetches++
		s.lastPages = pages
		s.lastRecords = records
		if errKind != "" {
			s.fetchErrors++
		}
	})
	if r.otel != nil {
		r.otel.recordFetch(source, pages, records, duration, errKind)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// Snapshot is a copy of the current stats for a source.
type Snapshot struct {
	PageRequests    int
	PageErrors      int
	Fetches         int
	FetchErrors     int
	LastPages       int
	LastRecords     int
	LastPageLatency time.Duration
}

func (r *Recorder) Snapshot(source string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[source]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		PageRequests:    stats.pageRequests,
		PageErrors:      stats.pageErrors,
		Fetches:         stats.fetches,
		FetchErrors:     stats.fetchErrors,
		LastPages:       stats.lastPages,
		LastRecords:     stats.lastRecords,
		LastPageLatency: stats.lastPageLatency,
	}
}

func (r *Recorder) update(source string, fn func(*sourceStats)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[source]
	if !ok {
		stats = &sourceStats{}
		r.stats[source] = stats
	}
	fn(stats)
}
