package pihole

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/holeops/adpause/pkg/httpclient"
)

// Package pihole implements a client for the Pi-hole admin HTTP API.

const (
	// AdminEndpoint is the single admin API endpoint; the operation is
	// selected by query parameters.
	AdminEndpoint = "/admin/api.php"

	defaultTimeout = 10 * time.Second
)

// Client talks to a Pi-hole appliance. It is stateless beyond its
// configuration; every call issues one independent request, so a Client may
// be shared across goroutines subject to the transport's own guarantees.
type Client struct {
	baseURL string
	apiKey  string
	http    httpclient.Client
}

// CallOptions carries the optional parts of a Call. Both maps default to
// empty and are passed through unmodified.
type CallOptions struct {
	Params  map[string]string
	Headers map[string]string
}

// New builds a Client over the given transport. baseURL and apiKey are
// stored verbatim and deliberately NOT validated here; callers wanting to
// fail fast before any network activity should check them with
// ValidateAPIURL and ValidateAPIKey first. A nil transport falls back to a
// resty client with a default timeout.
func New(baseURL, apiKey string, hc httpclient.Client) *Client {
	if hc == nil {
		hc = httpclient.NewRestyClient(defaultTimeout)
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    hc,
	}
}

// Call issues one GET to baseURL + endpoint with the given query parameters
// and headers. The endpoint is appended by plain concatenation; no slash
// normalization happens here, the caller supplies a correctly joined path.
//
// A 200 response with a JSON body returns the body. A non-200 status returns
// *HTTPError. A 200 response that does not parse as JSON returns an error
// wrapping ErrInvalidResponse. Transport failures are wrapped and propagated.
// There are no retries and no caching.
func (c *Client) Call(ctx context.Context, endpoint string, opts CallOptions) (json.RawMessage, error) {
	resp, err := c.http.Get(ctx, c.baseURL+endpoint, opts.Params, opts.Headers)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", endpoint, err)
	}
	if resp.StatusCode() != 200 {
		return nil, &HTTPError{Status: resp.StatusCode()}
	}

	body := resp.Body()
	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return json.RawMessage(body), nil
}

// DisableAdblocker asks the appliance to stop blocking for the given number
// of seconds. The value is passed through unmodified; the appliance defines
// the semantics of zero or negative windows (zero means indefinite).
//
// The returned bool reports whether the appliance accepted the request. Only
// *HTTPError is converted to false; an unparsable body or a transport
// failure is returned as an error so the caller can tell a refusal from a
// broken exchange.
func (c *Client) DisableAdblocker(ctx context.Context, seconds float64) (bool, error) {
	return c.toggle(ctx, map[string]string{
		"disable": formatSeconds(seconds),
		"auth":    c.apiKey,
	})
}

// EnableAdblocker re-enables blocking, ending any active disable window
// early. Error discrimination matches DisableAdblocker.
func (c *Client) EnableAdblocker(ctx context.Context) (bool, error) {
	return c.toggle(ctx, map[string]string{
		"enable": "",
		"auth":   c.apiKey,
	})
}

// toggle runs one state-changing call and applies the boolean contract.
func (c *Client) toggle(ctx context.Context, params map[string]string) (bool, error) {
	if _, err := c.Call(ctx, AdminEndpoint, CallOptions{Params: params}); err != nil {
		var httpErr *HTTPError
		if errors.As(err, &httpErr) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Status reports the appliance blocking state ("enabled" or "disabled").
// Unlike the state-changing calls, every failure propagates as an error.
func (c *Client) Status(ctx context.Context) (string, error) {
	raw, err := c.Call(ctx, AdminEndpoint, CallOptions{Params: map[string]string{
		"status": "",
		"auth":   c.apiKey,
	}})
	if err != nil {
		return "", err
	}

	var out struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return out.Status, nil
}

// formatSeconds renders the disable window the way it goes on the wire:
// integral values without a fraction, fractional values as given.
func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
