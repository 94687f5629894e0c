// Package platform is the REST client for the Limelight backend. It is the
// only place that speaks the platform wire format; state services above it
// deal in models only.
package platform

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.golimelight.com"

// statusCheckTimeout bounds the launch-time website check so a dead network
// cannot hang startup. Expiry counts as a failed request.
const statusCheckTimeout = 10 * time.Second

// Client handles authenticated requests against the platform API. There is
// deliberately no retry: a failed request is surfaced once.
type Client struct {
	httpClient  *http.Client
	quickClient *http.Client
	baseURL     string
}

// NewClient creates a platform client. An empty baseURL selects production.
func NewClient(baseURL string) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		quickClient: &http.Client{Timeout: statusCheckTimeout},
		baseURL:     strings.TrimRight(baseURL, "/"),
	}
}

// newRequest builds a JSON request with the bearer token attached. Tokens
// are fetched by callers immediately before use and never stored here.
func (c *Client) newRequest(method, path, token string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

// do executes a request and enforces the 2xx contract. Failure bodies are
// not contractually specified, so they are carried best-effort in the error.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("platform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("platform %s %s failed: %s - %s", req.Method, req.URL.Path, resp.Status, string(respBody))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// mutationAck is the `{success, ...}` envelope returned by write endpoints.
type mutationAck struct {
	Success bool `json:"success"`
}

func (a mutationAck) check(op string) error {
	if !a.Success {
		return fmt.Errorf("platform rejected %s", op)
	}
	return nil
}
