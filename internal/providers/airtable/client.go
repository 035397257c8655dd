package airtable

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	domaingames "today-games-service/internal/domain/games"
	"today-games-service/internal/logging"
	"today-games-service/internal/metrics"
	"today-games-service/internal/providers"
)

// Config controls how the Airtable client reaches the list-records endpoint.
type Config struct {
	BaseURL string
	BaseID  string
	TableID string
	Token   string
	// HTTPClient overrides the default client; Timeout is ignored when set.
	HTTPClient *http.Client
	// Timeout bounds each page request.
	Timeout time.Duration
	// FetchDeadline bounds the whole paginated fetch.
	FetchDeadline time.Duration
	MaxPages      int
	PageSize      int
	Recorder      *metrics.Recorder
	Logger        *slog.Logger
}

// Client fetches every record of one Airtable table, following offset
// continuation tokens until the table is exhausted.
type Client struct {
	endpoint   string
	token      string
	httpClient httpDoer
	deadline   time.Duration
	maxPages   int
	pageSize   int
	recorder   *metrics.Recorder
	logger     *slog.Logger
	now        func() time.Time
}

// NewClient constructs an Airtable client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		endpoint:   tableURL(normalizeBaseURL(cfg.BaseURL), cfg.BaseID, cfg.TableID),
		token:      cfg.Token,
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		deadline:   resolveDeadline(cfg.FetchDeadline),
		maxPages:   resolveMaxPages(cfg.MaxPages),
		pageSize:   resolvePageSize(cfg.PageSize),
		recorder:   cfg.Recorder,
		logger:     cfg.Logger,
		now:        time.Now,
	}
}

// FetchRecords retrieves the full table in upstream order. Any failing page
// discards everything fetched so far.
func (c *Client) FetchRecords(ctx context.Context) ([]domaingames.Record, error) {
	start := c.now()
	records, pages, err := c.fetchAll(ctx)
	c.recorder.RecordFetch(providerName, pages, len(records), c.now().Sub(start), string(providers.KindOf(err)))
	if err != nil {
		return nil, err
	}
	logging.Debug(logging.FromContext(ctx, c.logger), "airtable table fetched",
		slog.Int(logging.FieldPages, pages),
		slog.Int(logging.FieldRecords, len(records)),
	)
	return records, nil
}

func (c *Client) fetchAll(ctx context.Context) ([]domaingames.Record, int, error) {
	ctx, cancel := context.WithTimeout(ctx, c.deadline)
	defer cancel()

	all := make([]domaingames.Record, 0)
	offset := ""

	for page := 1; ; page++ {
		if page > c.maxPages {
			return nil, page - 1, &providers.PaginationLimitError{Source: providerName, MaxPages: c.maxPages}
		}

		payload, err := c.fetchPage(ctx, page, offset)
		if err != nil {
			return nil, page, err
		}
		all = append(all, payload.Records...)

		logging.Debug(logging.FromContext(ctx, c.logger), "airtable page fetched",
			slog.Int("page", page),
			slog.Int(logging.FieldRecords, len(payload.Records)),
			slog.Bool("has_more", payload.Offset != ""),
		)

		if payload.Offset == "" {
			return all, page, nil
		}
		offset = payload.Offset
	}
}

func (c *Client) fetchPage(ctx context.Context, page int, offset string) (listRecordsResponse, error) {
	start := c.now()
	payload, err := c.doPage(ctx, page, offset)
	c.recorder.RecordPageRequest(providerName, c.now().Sub(start), err)
	return payload, err
}

func (c *Client) doPage(ctx context.Context, page int, offset string) (listRecordsResponse, error) {
	var payload listRecordsResponse

	req, err := c.buildRequest(ctx, offset)
	if err != nil {
		return payload, fmt.Errorf("airtable: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return payload, c.transportError(page, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		if readErr != nil && isTimeout(readErr) {
			return payload, c.transportError(page, readErr)
		}
		return payload, &providers.UpstreamFetchError{
			Source:     providerName,
			StatusCode: resp.StatusCode,
			Body:       string(body),
			Page:       page,
		}
	}

	decoder := json.NewDecoder(resp.Body)
	// Numbers stay json.Number so they re-encode exactly as received.
	decoder.UseNumber()
	if err := decoder.Decode(&payload); err != nil {
		if isTimeout(err) {
			return payload, c.transportError(page, err)
		}
		return payload, fmt.Errorf("airtable: decode page %d: %w", page, err)
	}
	return payload, nil
}

func (c *Client) buildRequest(ctx context.Context, offset string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	if offset != "" {
		q.Set(queryOffset, offset)
	}
	if c.pageSize > 0 {
		q.Set(queryPageSize, strconv.Itoa(c.pageSize))
	}
	req.URL.RawQuery = q.Encode()

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (c *Client) transportError(page int, err error) error {
	if isTimeout(err) {
		return &providers.UpstreamFetchError{
			Source:     providerName,
			StatusCode: http.StatusGatewayTimeout,
			Page:       page,
			Timeout:    true,
			Err:        err,
		}
	}
	return fmt.Errorf("airtable: page %d request: %w", page, err)
}
