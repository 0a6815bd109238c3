package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"stock-sync/core/syncerr"
)

// DefaultTimeout bounds a single request when the caller does not configure one.
const DefaultTimeout = 60 * time.Second

// Requester sends JSON requests to one base URL with a fixed set of headers.
type Requester struct {
	baseURL    string
	header     http.Header
	httpClient *http.Client
}

// Option configures a Requester.
type Option func(*Requester)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(r *Requester) {
		r.httpClient = c
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(r *Requester) {
		if d > 0 {
			r.httpClient.Timeout = d
		}
	}
}

// WithHeader adds a header sent with every request.
func WithHeader(key, value string) Option {
	return func(r *Requester) {
		r.header.Set(key, value)
	}
}

// NewRequester creates a Requester for baseURL.
func NewRequester(baseURL string, opts ...Option) *Requester {
	r := &Requester{
		baseURL:    strings.TrimRight(baseURL, "/"),
		header:     make(http.Header),
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	r.header.Set("Accept", "application/json")
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// BaseURL returns the URL requests are resolved against.
func (r *Requester) BaseURL() string {
	return r.baseURL
}

// Do sends one request and decodes a 2xx JSON answer into out.
// body is marshalled as JSON when non-nil; out may be nil to discard the answer.
// op names the operation in returned errors.
func (r *Requester) Do(ctx context.Context, op, method, path string, query url.Values, body, out any) error {
	fullURL := r.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return syncerr.InvalidArgument(op, "encode request: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return syncerr.InvalidArgument(op, "create request: %v", err)
	}
	for key, values := range r.header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return syncerr.Transport(op, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return syncerr.Transport(op, fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return syncerr.HTTPStatus(op, resp.StatusCode, respBody)
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return syncerr.DataFormat(op, "response", truncate(respBody), err)
		}
	}
	return nil
}

func truncate(b []byte) string {
	const limit = 256
	if len(b) > limit {
		return string(b[:limit]) + "..."
	}
	return string(b)
}
