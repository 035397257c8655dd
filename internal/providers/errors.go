package providers

import (
	"context"
	"errors"
	"fmt"
)

// ErrorKind classifies fetch failures for the HTTP boundary and telemetry.
type ErrorKind string

const (
	KindNone                    ErrorKind = ""
	KindUpstreamFetch           ErrorKind = "upstream_fetch"
	KindPaginationLimitExceeded ErrorKind = "pagination_limit_exceeded"
	KindUnexpected              ErrorKind = "unexpected"
)

// UpstreamFetchError reports a page request that did not succeed: either a
// non-2xx status or a timeout talking to the upstream.
type UpstreamFetchError struct {
	Source     string
	StatusCode int
	// Body is the raw upstream response body, possibly truncated.
	Body    string
	Page    int
	Timeout bool
	Err     error
}

func (e *UpstreamFetchError) Error() string {
	source := e.Source
	if source == "" {
		source = "upstream"
	}
	if e.Timeout {
		return fmt.Sprintf("%s: page %d timed out: %v", source, e.Page, e.Err)
	}
	return fmt.Sprintf("%s: page %d returned status %d", source, e.Page, e.StatusCode)
}

func (e *UpstreamFetchError) Unwrap() error { return e.Err }

// PaginationLimitError reports that the upstream kept returning continuation
// tokens past the configured page ceiling.
type PaginationLimitError struct {
	Source   string
	MaxPages int
}

func (e *PaginationLimitError) Error() string {
	source := e.Source
	if source == "" {
		source = "upstream"
	}
	return fmt.Sprintf("%s: pagination exceeded %d pages", source, e.MaxPages)
}

// AsUpstreamFetchError attempts to unwrap an error into an UpstreamFetchError.
func AsUpstreamFetchError(err error) (*UpstreamFetchError, bool) {
	var upErr *UpstreamFetchError
	if errors.As(err, &upErr) {
		return upErr, true
	}
	return nil, false
}

// AsPaginationLimitError attempts to unwrap an error into a PaginationLimitError.
func AsPaginationLimitError(err error) (*PaginationLimitError, bool) {
	var plErr *PaginationLimitError
	if errors.As(err, &plErr) {
		return plErr, true
	}
	return nil, false
}

// KindOf returns the ErrorKind for err.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, context.Canceled):
		return KindUnexpected
	}
	if _, ok := AsPaginationLimitError(err); ok {
		return KindPaginationLimitExceeded
	}
	if _, ok := AsUpstreamFetchError(err); ok {
		return KindUpstreamFetch
	}
	return KindUnexpected
}
