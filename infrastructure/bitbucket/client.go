// Package bitbucket implements the Bitbucket Cloud 2.0 REST client behind
// domain.Client. It owns endpoint paths, query-parameter encoding and HTTP
// verbs; every call issues exactly one outbound request.
package bitbucket

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/go-querystring/query"

	"github.com/rios0rios0/bitbridge/domain"
)

// DefaultBaseURL is the fixed API root of Bitbucket Cloud.
const DefaultBaseURL = "https://api.bitbucket.org/2.0"

const requestTimeout = 30 * time.Second

// Client is the Bitbucket Cloud REST client. It is stateless per call; the
// credentials and the underlying http.Client are read-only after construction,
// so a single instance is safe for concurrent use.
type Client struct {
	baseURL    string
	username   string
	password   string
	httpClient *http.Client
}

var _ domain.Client = (*Client)(nil)

// New creates a client against the public Bitbucket Cloud API using the
// given username and app password.
func New(username, appPassword string) *Client {
	return NewWithBaseURL(DefaultBaseURL, username, appPassword)
}

// NewWithBaseURL creates a client against a custom API root. Used by tests
// and on-premise proxies.
func NewWithBaseURL(baseURL, username, appPassword string) *Client {
	return &Client{
		baseURL:  baseURL,
		username: username,
		password: appPassword,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// BaseURL returns the configured API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do issues a single HTTP request and decodes the JSON response into out.
// body, when non-nil, is JSON-encoded into the request. opts, when non-nil,
// is encoded into the query string via its `url` struct tags so that absent
// optional fields never appear on the wire.
func (c *Client) do(ctx context.Context, method, endpoint string, opts, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	requestURL := c.baseURL + endpoint
	if opts != nil {
		values, err := query.Values(opts)
		if err != nil {
			return fmt.Errorf("failed to encode query parameters: %w", err)
		}
		if encoded := values.Encode(); encoded != "" {
			requestURL += "?" + encoded
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	auth := base64.StdEncoding.EncodeToString([]byte(c.username + ":" + c.password))
	req.Header.Set("Authorization", "Basic "+auth)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &domain.TransportError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domain.TransportError{Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &domain.RemoteAPIError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Message:    decodeErrorMessage(respBody),
		}
	}

	if out != nil && len(respBody) > 0 {
		if unmarshalErr := json.Unmarshal(respBody, out); unmarshalErr != nil {
			return fmt.Errorf("failed to parse response: %w", unmarshalErr)
		}
	}

	return nil
}

// errorBody is the error envelope Bitbucket wraps around failed calls.
type errorBody struct {
	Error struct {
		Message string `json:"message"`
		Detail  string `json:"detail"`
	} `json:"error"`
}

// decodeErrorMessage extracts the human-readable message from a Bitbucket
// error body, falling back to the raw body when it is not the documented
// shape.
func decodeErrorMessage(body []byte) string {
	var decoded errorBody
	if err := json.Unmarshal(body, &decoded); err == nil && decoded.Error.Message != "" {
		if decoded.Error.Detail != "" {
			return decoded.Error.Message + ": " + decoded.Error.Detail
		}
		return decoded.Error.Message
	}
	return string(body)
}

// escape makes a value safe for use as a single path component.
func escape(component string) string {
	return url.PathEscape(component)
}
