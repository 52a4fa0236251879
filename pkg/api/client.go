package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/goccy/go-json"

	"github.com/otdb/otdb-terminal/pkg/form"
	"github.com/otdb/otdb-terminal/pkg/models"
)

// Searcher fetches options for a query from one collection.
type Searcher interface {
	Search(ctx context.Context, kind models.SearchKind, query string) ([]form.Option, error)
}

// SearchFunc binds a Searcher and a collection into a form.SearchFunc.
func SearchFunc(s Searcher, kind models.SearchKind) form.SearchFunc {
	return func(ctx context.Context, query string) ([]form.Option, error) {
		return s.Search(ctx, kind, query)
	}
}

// Client talks to the otdb HTTP API.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *log.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(client *Client) { client.http = c }
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger *log.Logger) ClientOption {
	return func(client *Client) { client.logger = logger }
}

// NewClient creates a client for the API at baseURL.
func NewClient(baseURL string, timeout time.Duration, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError is a non-2xx answer from the API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with http error %d", e.Status)
	}
	return e.Message
}

type listResponse[T any] struct {
	Data []T `json:"data"`
}

// Search implements Searcher.
func (c *Client) Search(ctx context.Context, kind models.SearchKind, query string) ([]form.Option, error) {
	path := fmt.Sprintf("%s/?q=%s", kind, url.QueryEscape(query))

	switch kind {
	case models.SearchUsers:
		var resp listResponse[models.User]
		if err := c.get(ctx, path, &resp); err != nil {
			return nil, err
		}
		opts := make([]form.Option, 0, len(resp.Data))
		for _, u := range resp.Data {
			opts = append(opts, form.Option{Label: u.Username, Value: u.ID})
		}
		return opts, nil

	case models.SearchMappools:
		var resp listResponse[models.Mappool]
		if err := c.get(ctx, path, &resp); err != nil {
			return nil, err
		}
		opts := make([]form.Option, 0, len(resp.Data))
		for _, mp := range resp.Data {
			opts = append(opts, form.Option{Label: mp.Name, Value: mp.ID})
		}
		return opts, nil

	case models.SearchTournaments:
		var resp listResponse[models.Tournament]
		if err := c.get(ctx, path, &resp); err != nil {
			return nil, err
		}
		opts := make([]form.Option, 0, len(resp.Data))
		for _, tr := range resp.Data {
			opts = append(opts, form.Option{Label: tr.DisplayName(), Value: tr.ID})
		}
		return opts, nil

	default:
		return nil, fmt.Errorf("unknown search collection %q", kind)
	}
}

// get requests /api/<path> and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	endpoint := fmt.Sprintf("%s/api/%s", c.baseURL, path)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("api request", "method", req.Method, "url", endpoint)
	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", endpoint, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		apiErr := &APIError{Status: res.StatusCode}
		var payload struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &payload) == nil {
			apiErr.Message = payload.Error
		}
		return apiErr
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}
