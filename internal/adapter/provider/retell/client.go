package retell

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/heartmarshall/callhistory-backend/internal/domain"
	"github.com/heartmarshall/callhistory-backend/internal/provider"
)

const (
	// DefaultBaseURL is the public Retell API endpoint.
	DefaultBaseURL = "https://api.retellai.com"

	listCallsPath = "/v2/list-calls"
	getCallPath   = "/v2/get-call/"
)

// Client talks to the Retell call-analytics API.
type Client struct {
	http *resty.Client
	log  *slog.Logger
}

// NewClient creates a Client authenticated with the given API key.
func NewClient(baseURL, apiKey string, timeout time.Duration, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{
		http: httpClient,
		log:  logger.With("adapter", "retell"),
	}
}

// ListCalls fetches one page of the call listing. An empty cursor requests the
// first page. Transport failures and non-2xx responses wrap domain.ErrUpstream.
func (c *Client) ListCalls(ctx context.Context, cursor string) (provider.CallPage, error) {
	payload := map[string]string{}
	if cursor != "" {
		payload["cursor"] = cursor
	}

	c.log.DebugContext(ctx, "retell list calls", slog.String("cursor", cursor))

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(payload).
		Post(listCallsPath)
	if err != nil {
		return provider.CallPage{}, fmt.Errorf("retell: list calls: %w: %w", domain.ErrUpstream, err)
	}
	if resp.IsError() {
		return provider.CallPage{}, fmt.Errorf("retell: list calls: %w: status %d", domain.ErrUpstream, resp.StatusCode())
	}

	page, err := decodePage(resp.Body())
	if err != nil {
		return provider.CallPage{}, fmt.Errorf("retell: list calls: %w: %w", domain.ErrUpstream, err)
	}

	c.log.DebugContext(ctx, "retell list calls response",
		slog.Int("status", resp.StatusCode()),
		slog.Int("calls", len(page.Calls)),
		slog.Bool("has_next", page.NextCursor != ""),
	)

	return page, nil
}

// GetCall fetches the full detail of a single call. Anything other than a
// 200 response is returned as an error.
func (c *Client) GetCall(ctx context.Context, callID string) (provider.RawCall, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get(getCallPath + url.PathEscape(callID))
	if err != nil {
		return nil, fmt.Errorf("retell: get call %s: %w: %w", callID, domain.ErrUpstream, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("retell: get call %s: %w: status %d", callID, domain.ErrUpstream, resp.StatusCode())
	}

	var call provider.RawCall
	if err := decodeJSON(resp.Body(), &call); err != nil {
		return nil, fmt.Errorf("retell: get call %s: decode: %w", callID, err)
	}
	return call, nil
}

// decodePage accepts either {"calls": [...], "next_cursor": "..."} or a bare
// array of calls. A bare array never has a next page.
func decodePage(body []byte) (provider.CallPage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return provider.CallPage{}, nil
	}

	if trimmed[0] == '[' {
		var calls []provider.RawCall
		if err := decodeJSON(trimmed, &calls); err != nil {
			return provider.CallPage{}, fmt.Errorf("decode call list: %w", err)
		}
		return provider.CallPage{Calls: calls}, nil
	}

	var envelope listResponse
	if err := decodeJSON(trimmed, &envelope); err != nil {
		return provider.CallPage{}, fmt.Errorf("decode call page: %w", err)
	}
	return provider.CallPage{
		Calls:      envelope.Calls,
		NextCursor: envelope.NextCursor,
	}, nil
}

func decodeJSON(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}
