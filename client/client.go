// Package client is a typed HTTP client for the catalog API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"scholar-catalog/filter"
	"scholar-catalog/models"
)

const (
	// DefaultBaseURL targets a locally running API server.
	DefaultBaseURL = "http://localhost:8080/api/v1"

	// DefaultTimeout bounds a single request when the caller's context has
	// no deadline.
	DefaultTimeout = 30 * time.Second
)

// Client calls the article endpoints. It never retries; every failure is
// returned to the caller as is.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a client for the API rooted at baseURL, e.g.
// "http://localhost:8080/api/v1".
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListArticles fetches one page of articles matching f.
func (c *Client) ListArticles(ctx context.Context, f models.Filter) (*models.ArticlePage, error) {
	var page wirePage
	if err := c.do(ctx, http.MethodGet, "/articles", filter.Encode(f), nil, &page); err != nil {
		return nil, err
	}
	return page.normalize(), nil
}

func (c *Client) GetArticle(ctx context.Context, id string) (*models.Article, error) {
	var article wireArticle
	if err := c.do(ctx, http.MethodGet, "/articles/"+url.PathEscape(id), nil, nil, &article); err != nil {
		return nil, err
	}
	return article.normalize(), nil
}

func (c *Client) GetCitations(ctx context.Context, id string) ([]models.Citation, error) {
	var citations []models.Citation
	if err := c.do(ctx, http.MethodGet, "/articles/"+url.PathEscape(id)+"/citations", nil, nil, &citations); err != nil {
		return nil, err
	}
	if citations == nil {
		citations = []models.Citation{}
	}
	return citations, nil
}

func (c *Client) CreateArticle(ctx context.Context, in models.ArticleInput) (*models.Article, error) {
	var article wireArticle
	if err := c.do(ctx, http.MethodPost, "/articles", nil, in, &article); err != nil {
		return nil, err
	}
	return article.normalize(), nil
}

// UpdateArticle sends a partial update; only non-nil fields change.
func (c *Client) UpdateArticle(ctx context.Context, id string, upd models.ArticleUpdate) (*models.Article, error) {
	var article wireArticle
	if err := c.do(ctx, http.MethodPut, "/articles/"+url.PathEscape(id), nil, upd, &article); err != nil {
		return nil, err
	}
	return article.normalize(), nil
}

// AddCitation attaches a citation and returns the updated article.
func (c *Client) AddCitation(ctx context.Context, id string, in models.CitationInput) (*models.Article, error) {
	var article wireArticle
	if err := c.do(ctx, http.MethodPost, "/articles/"+url.PathEscape(id)+"/citations", nil, in, &article); err != nil {
		return nil, err
	}
	return article.normalize(), nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("catalog api call",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start))

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return parseAPIError(resp.StatusCode, data)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return nil
}

// parseAPIError decodes the server's error envelope, falling back to the
// status text when the body is not an envelope.
func parseAPIError(status int, data []byte) error {
	apiErr := &APIError{StatusCode: status, Message: http.StatusText(status)}

	var envelope struct {
		CodeType    string          `json:"code_type"`
		CodeMessage string          `json:"code_message"`
		Data        json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return apiErr
	}
	if envelope.CodeMessage != "" {
		apiErr.Message = envelope.CodeMessage
	}
	apiErr.CodeType = envelope.CodeType

	var fields map[string][]string
	if json.Unmarshal(envelope.Data, &fields) == nil && len(fields) > 0 {
		apiErr.Fields = fields
	}
	return apiErr
}
