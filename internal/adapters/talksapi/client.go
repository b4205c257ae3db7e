package talksapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/javaBin/talks-browser/internal/adapters/auth"
	"github.com/javaBin/talks-browser/internal/config"
	"github.com/javaBin/talks-browser/internal/domain"
)

// Client implements the TalkSource interface for the talks API
type Client struct {
	baseURL    string
	username   string
	password   string
	basicAuth  bool
	httpClient *http.Client
	logger     *slog.Logger
}

// APIError is returned when the talks API answers with a non-2xx status
type APIError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("unexpected status code: %d, body: %s", e.StatusCode, e.Body)
}

// New creates a new talks API Client, retrieving configuration from context.
// If OIDC client credentials are configured, requests carry a bearer token;
// otherwise Basic Auth is used when a username and password are set.
func New(ctx context.Context) (*Client, error) {
	cfg := config.GetConfig(ctx)

	httpClient := &http.Client{
		Timeout: cfg.TalksAPI.Timeout,
	}

	if cfg.OIDC.IsConfigured() {
		var err error
		httpClient, err = auth.NewClientCredentialsClient(ctx, cfg.OIDC, cfg.TalksAPI.Timeout)
		if err != nil {
			return nil, fmt.Errorf("failed to set up talks API authentication: %w", err)
		}
	}

	return newClient(cfg.TalksAPI, httpClient), nil
}

// NewWithHTTPClient creates a new talks API Client with a custom HTTP client.
// This constructor is primarily intended for testing purposes.
func NewWithHTTPClient(baseURL, username, password string, httpClient *http.Client) *Client {
	return newClient(config.TalksAPIConfig{
		URL:      baseURL,
		User:     username,
		Password: password,
	}, httpClient)
}

func newClient(cfg config.TalksAPIConfig, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    cfg.URL,
		username:   cfg.User,
		password:   cfg.Password,
		basicAuth:  cfg.HasCredentials(),
		httpClient: httpClient,
		logger:     slog.Default().With("component", "talksapi"),
	}
}

// doRequest performs a GET request with optional Basic Auth and returns the body of a 2xx response
func (c *Client) doRequest(ctx context.Context, path string, query url.Values, accept string) ([]byte, error) {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Add Basic Auth if credentials are provided
	if c.basicAuth {
		req.SetBasicAuth(c.username, c.password)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", accept)
	req.Header.Set("X-Request-ID", requestID)

	c.logger.DebugContext(ctx, "Making HTTP request",
		"url", reqURL,
		"requestID", requestID,
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.ErrorContext(ctx, "HTTP request failed",
			"status", resp.StatusCode,
			"url", reqURL,
			"requestID", requestID,
			"body", string(body),
		)
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			URL:        reqURL,
			Body:       string(body),
		}
	}

	c.logger.DebugContext(ctx, "HTTP request successful",
		"status", resp.StatusCode,
		"url", reqURL,
		"requestID", requestID,
	)

	return body, nil
}

// GetTalk retrieves a single talk by its slug from the talks API
func (c *Client) GetTalk(ctx context.Context, slug string) (*domain.Talk, error) {
	c.logger.InfoContext(ctx, "Fetching talk from talks API", "slug", slug)

	if err := domain.ValidateSlug(slug); err != nil {
		return nil, err
	}

	body, err := c.doRequest(ctx, "/api/talks/"+url.PathEscape(slug), nil, "application/json")
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("failed to fetch talk %s: %w: %w", slug, domain.ErrTalkNotFound, err)
		}
		return nil, fmt.Errorf("failed to fetch talk %s: %w", slug, err)
	}

	var response TalkResponse
	if err := json.Unmarshal(body, &response); err != nil {
		c.logger.ErrorContext(ctx, "Failed to unmarshal talk response",
			"error", err,
			"slug", slug,
			"body", string(body),
		)
		return nil, fmt.Errorf("failed to unmarshal talk: %w", err)
	}

	talk := MapTalk(response)

	c.logger.InfoContext(ctx, "Successfully fetched talk",
		"slug", slug,
		"talkID", talk.ID,
	)

	return &talk, nil
}

// GetNewestTalks retrieves up to limit of the most recent talks from the talks API
func (c *Client) GetNewestTalks(ctx context.Context, limit int) ([]domain.Talk, error) {
	c.logger.InfoContext(ctx, "Fetching newest talks from talks API", "limit", limit)

	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))

	body, err := c.doRequest(ctx, "/api/talks", query, "application/json")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch newest talks: %w", err)
	}

	var talks []TalkResponse
	if err := json.Unmarshal(body, &talks); err != nil {
		// Try to parse as wrapped object for compatibility with paged responses
		var response TalksAPIResponse
		if err := json.Unmarshal(body, &response); err != nil {
			c.logger.ErrorContext(ctx, "Failed to unmarshal talks response",
				"error", err,
				"body", string(body),
			)
			return nil, fmt.Errorf("failed to unmarshal talks: %w", err)
		}
		talks = response.Talks
	}

	result := MapTalks(talks)

	c.logger.InfoContext(ctx, "Successfully fetched newest talks",
		"count", len(result),
	)

	return result, nil
}

// GetTranscript retrieves the plain text transcript of a talk.
// Each language code becomes one lang query parameter, in the given order.
func (c *Client) GetTranscript(ctx context.Context, talkID int64, format domain.TranscriptFormat, languages []string) (string, error) {
	c.logger.InfoContext(ctx, "Fetching transcript from talks API",
		"talkID", talkID,
		"format", format,
		"languages", languages,
	)

	if err := format.Validate(); err != nil {
		return "", err
	}

	path := fmt.Sprintf("/api/talks/%d/transcripts/%s", talkID, url.PathEscape(format.String()))
	query := url.Values{"lang": languages}

	body, err := c.doRequest(ctx, path, query, "text/plain")
	if err != nil {
		if isNotFound(err) {
			return "", fmt.Errorf("failed to fetch transcript for talk %d: %w: %w", talkID, domain.ErrTranscriptNotFound, err)
		}
		return "", fmt.Errorf("failed to fetch transcript for talk %d: %w", talkID, err)
	}

	c.logger.InfoContext(ctx, "Successfully fetched transcript",
		"talkID", talkID,
		"bytes", len(body),
	)

	return string(body), nil
}

func isNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
