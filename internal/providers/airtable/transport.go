package airtable

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

func resolveHTTPClient(client *http.Client, timeout time.Duration) httpDoer {
	if client != nil {
		return client
	}
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	return &http.Client{Timeout: timeout}
}

func normalizeBaseURL(raw string) string {
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}

func tableURL(baseURL, baseID, tableID string) string {
	return baseURL + "/" + url.PathEscape(baseID) + "/" + url.PathEscape(tableID)
}

func resolveMaxPages(n int) int {
	if n <= 0 {
		return defaultMaxPages
	}
	return n
}

func resolvePageSize(size int) int {
	if size <= 0 {
		return 0
	}
	if size > maxPageSize {
		return maxPageSize
	}
	return size
}

func resolveDeadline(d time.Duration) time.Duration {
	if d <= 0 {
		return defaultFetchDeadline
	}
	return d
}

// isTimeout reports whether err came from a client timeout or an expired deadline.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
