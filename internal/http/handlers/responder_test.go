package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domaingames "today-games-service/internal/domain/games"
	"today-games-service/internal/http/middleware"
	"today-games-service/internal/providers"
	"today-games-service/internal/testutil"
)

func TestWriteErrorIncludesRequestID(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	h := middleware.LoggingMiddleware(logger, nil, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusTeapot, "boom", "short and stout", logger)
	}))

	req, err := http.NewRequest(http.MethodGet, "/health", nil)
	require.NoError(t, err)
	req.Header.Set("X-Request-ID", "abc123")
	rr := testutil.ServeRequest(h, req)

	testutil.AssertStatus(t, rr, http.StatusTeapot)
	testutil.AssertJSONContentType(t, rr)

	var body domaingames.ErrorResponse
	testutil.DecodeJSON(t, rr, &body)
	assert.Equal(t, "boom", body.Error)
	assert.Equal(t, "short and stout", body.Details)
	assert.Equal(t, "abc123", body.RequestID)
}

func TestWriteErrorOmitsEmptyDetails(t *testing.T) {
	rr := testutil.Serve(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusInternalServerError, "kaput", "", nil)
	}), http.MethodGet, "/", nil)

	assert.JSONEq(t, `{"error":"kaput"}`, rr.Body.String())
}

func TestErrorResponseFor(t *testing.T) {
	cases := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
		wantDetails string
	}{
		{
			name:        "upstream status keeps code and raw body",
			err:         &providers.UpstreamFetchError{Source: "airtable", StatusCode: http.StatusTooManyRequests, Body: `{"errors":[]}`},
			wantStatus:  http.StatusTooManyRequests,
			wantMessage: msgUpstreamFetch,
			wantDetails: `{"errors":[]}`,
		},
		{
			name:        "wrapped upstream error",
			err:         fmt.Errorf("fetch: %w", &providers.UpstreamFetchError{StatusCode: http.StatusUnauthorized, Body: "nope"}),
			wantStatus:  http.StatusUnauthorized,
			wantMessage: msgUpstreamFetch,
			wantDetails: "nope",
		},
		{
			name:        "out of range status becomes bad gateway",
			err:         &providers.UpstreamFetchError{StatusCode: http.StatusFound, Body: "moved"},
			wantStatus:  http.StatusBadGateway,
			wantMessage: msgUpstreamFetch,
			wantDetails: "moved",
		},
		{
			name:        "pagination limit",
			err:         &providers.PaginationLimitError{Source: "airtable", MaxPages: 3},
			wantStatus:  http.StatusBadGateway,
			wantMessage: msgPaginationLimit,
			wantDetails: (&providers.PaginationLimitError{Source: "airtable", MaxPages: 3}).Error(),
		},
		{
			name:        "anything else",
			err:         errors.New("decode page 1: unexpected EOF"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "decode page 1: unexpected EOF",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, message, details := errorResponseFor(tc.err)
			assert.Equal(t, tc.wantStatus, status)
			assert.Equal(t, tc.wantMessage, message)
			assert.Equal(t, tc.wantDetails, details)
		})
	}
}

func TestErrorResponseForTimeoutUsesErrorText(t *testing.T) {
	err := &providers.UpstreamFetchError{Source: "airtable", StatusCode: http.StatusGatewayTimeout, Timeout: true, Err: errors.New("deadline")}
	status, message, details := errorResponseFor(err)
	assert.Equal(t, http.StatusGatewayTimeout, status)
	assert.Equal(t, msgUpstreamFetch, message)
	assert.Equal(t, err.Error(), details)
}
