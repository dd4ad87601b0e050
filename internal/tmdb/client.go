package tmdb

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
	"strings"
	"time"

	"github.com/mmcdole/marquee/internal/domain"
)

const (
	defaultUserAgent = "Marquee/1.0"
	opSearchMovie    = "search movie"
)

// Client implements domain.MovieSearcher against the TMDB v3 API
type Client struct {
	baseURL      string
	token        string
	userAgent    string
	language     string
	includeAdult bool
	httpClient   *http.Client
	timeout      time.Duration
	logger       *slog.Logger
}

// NewClient creates a new TMDB API client.
// token is the v4 read access token and is sent as a Bearer credential.
func NewClient(baseURL, token string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("TMDB base URL is required")
	}
	if token == "" {
		return nil, fmt.Errorf("TMDB token is required")
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		userAgent:  defaultUserAgent,
		httpClient: &http.Client{},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	// Applied to a copy so a caller-supplied client is never mutated
	if c.timeout > 0 {
		hc := *c.httpClient
		hc.Timeout = c.timeout
		c.httpClient = &hc
	}
	return c, nil
}

// Search returns the first page of movies matching query, in gateway order.
// Any failure is reported as a *domain.GatewayError.
func (c *Client) Search(ctx context.Context, query string) ([]domain.Movie, error) {
	params := url.Values{}
	params.Set("query", query)
	if c.language != "" {
		params.Set("language", c.language)
	}
	if c.includeAdult {
		params.Set("include_adult", strconv.FormatBool(true))
	}

	body, err := c.doRequest(ctx, opSearchMovie, "/search/movie", params)
	if err != nil {
		return nil, err
	}

	var resp SearchMovieResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		c.logger.Error("JSON parse error", "error", err, "bodyLen", len(body))
		return nil, &domain.GatewayError{Op: opSearchMovie, Err: fmt.Errorf("failed to parse response: %w", err)}
	}

	if resp.Results == nil {
		c.logger.Error("response has no results field", "bodyLen", len(body))
		return nil, &domain.GatewayError{Op: opSearchMovie, Err: errors.New("response has no results")}
	}

	c.logger.Debug("search complete", "query", query, "results", len(*resp.Results), "totalResults", resp.TotalResults)
	return MapMovies(*resp.Results), nil
}

// doRequest performs an authenticated GET and returns the body of a 2xx response
func (c *Client) doRequest(ctx context.Context, op, path string, query url.Values) ([]byte, error) {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &domain.GatewayError{Op: op, Err: fmt.Errorf("failed to create request: %w", err)}
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.Debug("tmdb request", "method", req.Method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("tmdb request failed", "error", err)
		return nil, &domain.GatewayError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.GatewayError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("tmdb request error", "status", resp.StatusCode, "body", string(body))
		return nil, &domain.GatewayError{Op: op, StatusCode: resp.StatusCode, Err: statusError(body)}
	}

	return body, nil
}

// statusError extracts TMDB's status_message when present
func statusError(body []byte) error {
	var apiErr ErrorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.StatusMessage != "" {
		return errors.New(apiErr.StatusMessage)
	}
	return nil
}
