// Package forum is the access-delegation client for the upstream forum API.
// Every exported method maps to exactly one forum operation and issues exactly
// one HTTP request. Methods taking an acting username run it through the
// identity-substitution rule: application administrators never act upstream
// as themselves, the configured system account acts for them. GrantAccess's
// invitee and MarkTopicPostsRead's username are deliberate exceptions.
package forum

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/forumgate-dev/forumgate/internal/errors"
	"github.com/forumgate-dev/forumgate/internal/logger"
)

const (
	contentTypeJSON = "application/json"
	contentTypeForm = "application/x-www-form-urlencoded"
)

type Config struct {
	BaseURL        string
	APIKey         string
	SystemUsername string
}

type Client struct {
	baseURL        string
	apiKey         string
	systemUsername string
	isAdmin        func(username string) bool
	httpClient     *http.Client
}

// New creates a client for the forum API. isAdmin recognizes application
// administrators; nil means nobody is one. The returned client is immutable
// after construction and safe for concurrent use.
func New(cfg Config, isAdmin func(username string) bool) *Client {
	if isAdmin == nil {
		isAdmin = func(string) bool { return false }
	}
	return &Client{
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:         cfg.APIKey,
		systemUsername: cfg.SystemUsername,
		isAdmin:        isAdmin,
		httpClient:     &http.Client{},
	}
}

// actingAs applies the identity-substitution rule. Administrators of the
// calling application must not be conflated with the forum's own admin
// account, so the system identity acts in their place.
func (c *Client) actingAs(username string) string {
	if c.isAdmin(username) {
		return c.systemUsername
	}
	return username
}

// do issues one request for the named operation with api_key and api_username
// injected as query parameters, reads the full response, and logs it: URL and
// status on success, plus the response body on failure. Errors are returned,
// never swallowed; there are no retries.
func (c *Client) do(ctx context.Context, op, method, path, asUser string, query url.Values, contentType string, body io.Reader) (json.RawMessage, error) {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return nil, fmt.Errorf("bad forum url: %w", err)
	}
	q := u.Query()
	for key, values := range query {
		for _, v := range values {
			q.Add(key, v)
		}
	}
	q.Set("api_key", c.apiKey)
	q.Set("api_username", asUser)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create forum request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		observeRequest(op, "transport_error")
		return nil, fmt.Errorf("forum unreachable: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		observeRequest(op, "transport_error")
		return nil, fmt.Errorf("failed to read forum response: %w", err)
	}

	loggedURL := redactKey(u)
	observeRequest(op, fmt.Sprint(resp.StatusCode))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Log.Error("forum request failed",
			"op", op, "method", method, "url", loggedURL, "status", resp.StatusCode, "body", string(payload))
		return nil, &errors.UpstreamError{
			Method:     method,
			URL:        loggedURL,
			StatusCode: resp.StatusCode,
			Body:       string(payload),
		}
	}
	logger.Log.Info("forum request", "op", op, "method", method, "url", loggedURL, "status", resp.StatusCode)

	return payload, nil
}

// redactKey returns the URL with the api_key value masked, for logs and errors.
func redactKey(u *url.URL) string {
	masked := *u
	q := masked.Query()
	if q.Has("api_key") {
		q.Set("api_key", "REDACTED")
	}
	masked.RawQuery = q.Encode()
	return masked.String()
}

// Ping probes the forum status endpoint, used by the readiness handler.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.do(ctx, "ping", http.MethodGet, "/srv/status", c.systemUsername, nil, "", nil)
	return err
}
