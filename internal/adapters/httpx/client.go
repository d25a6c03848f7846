package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Upper bound on how much of an error body is kept for diagnostics.
const maxErrorBody = 4 << 10

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}

// Client is a thin JSON-over-HTTP client with a bounded per-call timeout
// and a fixed set of headers sent on every request.
// It never retries. It is safe for concurrent use.
type Client struct {
	session *http.Client
	headers map[string]string
}

func NewClient(timeout time.Duration, headers map[string]string) *Client {
	h := make(map[string]string, len(headers)+1)
	h["Accept"] = "application/json"
	for k, v := range headers {
		h[k] = v
	}

	return &Client{
		session: &http.Client{Timeout: timeout},
		headers: h,
	}
}

func (c *Client) NewRequest(
	ctx context.Context,
	method string,
	rawURL string,
	body io.Reader,
) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// Do executes req. Non-2xx responses are drained, closed, and reported as
// *StatusError. Transport errors never carry the query string, which may
// hold credentials.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	resp, err := c.session.Do(req)
	if err != nil {
		var ue *url.Error
		if errors.As(err, &ue) {
			ue.URL = redact(req.URL)
		}
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		resp.Body.Close()
		return nil, &StatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(b)),
		}
	}
	return resp, nil
}

// DoJSON executes req and decodes a successful response body into out.
func (c *Client) DoJSON(req *http.Request, out any) error {
	resp, err := c.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// redact returns u without query, fragment or user info.
func redact(u *url.URL) string {
	return (&url.URL{Scheme: u.Scheme, Host: u.Host, Path: u.Path}).String()
}
