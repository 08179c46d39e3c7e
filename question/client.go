package question

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
)

// DefaultEndpoint is the public GraphQL endpoint of the question bank.
const DefaultEndpoint = "https://leetcode.com/graphql"

// Sentinel errors returned by [Client.Fetch].
var (
	ErrFetch         = errors.New("fetch question")
	ErrNotFound      = errors.New("question not found or response malformed")
	ErrInvalidRecord = errors.New("invalid question record")
)

const questionQuery = `
query questionData($titleSlug: String!) {
	question(titleSlug: $titleSlug) {
		questionId
		title
		titleSlug
		content
		codeSnippets {
			langSlug
			code
		}
		metaData
		exampleTestcases
	}
}`

const maxResponseSize = 8 << 20

// Client fetches [Record]s from a GraphQL question bank.
//
// Create instances with [NewClient].
type Client struct {
	httpClient *http.Client
	validate   *validator.Validate
	endpoint   string
}

// ClientOption configures a [Client].
type ClientOption func(*Client)

// WithEndpoint sets the GraphQL endpoint URL.
func WithEndpoint(endpoint string) ClientOption {
	return func(c *Client) {
		if endpoint != "" {
			c.endpoint = endpoint
		}
	}
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewClient creates a [Client] with the given options.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		validate:   validator.New(validator.WithRequiredStructEnabled()),
		endpoint:   DefaultEndpoint,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

type graphQLRequest struct {
	Variables map[string]any `json:"variables"`
	Query     string         `json:"query"`
}

type graphQLResponse struct {
	Data *struct {
		Question *Record `json:"question"`
	} `json:"data"`
}

// Fetch retrieves the problem identified by slug. There is no retry: any
// non-success status, malformed payload or invalid record is returned as an
// error.
func (c *Client) Fetch(ctx context.Context, slug string) (*Record, error) {
	body, err := json.Marshal(graphQLRequest{
		Query:     questionQuery,
		Variables: map[string]any{"titleSlug": slug},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Referer", "https://leetcode.com/problems/"+slug+"/")

	slog.Debug("fetching question",
		slog.String("slug", slug),
		slog.String("endpoint", c.endpoint),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	defer resp.Body.Close() //nolint:errcheck // Read-only body.

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d", ErrFetch, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}

	var out graphQLResponse

	err = json.Unmarshal(data, &out)
	if err != nil || out.Data == nil || out.Data.Question == nil {
		return nil, ErrNotFound
	}

	rec := out.Data.Question

	err = c.validate.Struct(rec)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}

	return rec, nil
}
