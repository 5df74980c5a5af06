package linear

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/custodia-labs/relay-cli/internal/core/domain"
)

// Default configuration values.
const (
	// DefaultEndpoint is the Linear GraphQL endpoint.
	DefaultEndpoint = "https://api.linear.app/graphql"

	// DefaultTimeout is the HTTP request timeout.
	DefaultTimeout = 30 * time.Second
)

// Config holds configuration for the Linear provider.
type Config struct {
	// APIKey is the Linear credential (required): either a personal API
	// key or an OAuth access token, see OAuth.
	APIKey string

	// OAuth marks the credential as an OAuth access token, sent as a
	// bearer token. Personal API keys go in the Authorization header
	// verbatim, per Linear's convention.
	OAuth bool

	// Endpoint is the GraphQL endpoint (default: DefaultEndpoint).
	// Overridable for tests.
	Endpoint string

	// Timeout is the request timeout (default: 30s).
	Timeout time.Duration
}

// client is the minimal GraphQL transport for the Linear API.
type client struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string // empty when the http client injects auth itself
}

// newClient builds the GraphQL transport. OAuth tokens reuse the static
// token source so the Authorization header is injected by the transport;
// personal API keys are set per request.
func newClient(cfg Config) *client {
	c := &client{endpoint: cfg.Endpoint}

	if cfg.OAuth {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.APIKey})
		c.httpClient = oauth2.NewClient(context.Background(), ts)
		c.httpClient.Timeout = cfg.Timeout
		return c
	}

	c.httpClient = &http.Client{Timeout: cfg.Timeout}
	c.apiKey = cfg.APIKey
	return c
}

// graphQLRequest is the GraphQL-over-HTTP request body.
type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// graphQLError is a single entry of the response errors array.
type graphQLError struct {
	Message string `json:"message"`
}

// graphQLResponse is the GraphQL-over-HTTP response envelope.
type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors,omitempty"`
}

// execute posts a GraphQL query and decodes the data payload into out.
// Transport failures, non-2xx statuses, and GraphQL-level errors all map
// to domain.ErrProvider.
func (c *client) execute(ctx context.Context, query string, variables map[string]any, out any) error {
	body, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("%w: linear: marshal request: %v", domain.ErrProvider, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: linear: build request: %v", domain.ErrProvider, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: linear: %v", domain.ErrProvider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		text, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: linear: API error (%d): %s", domain.ErrProvider, resp.StatusCode, strings.TrimSpace(string(text)))
	}

	var envelope graphQLResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("%w: linear: decode response: %v", domain.ErrProvider, err)
	}

	if len(envelope.Errors) > 0 {
		messages := make([]string, len(envelope.Errors))
		for i, e := range envelope.Errors {
			messages[i] = e.Message
		}
		return fmt.Errorf("%w: linear: GraphQL errors: %s", domain.ErrProvider, strings.Join(messages, ", "))
	}

	if envelope.Data == nil {
		return fmt.Errorf("%w: linear: no data in response", domain.ErrProvider)
	}

	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("%w: linear: decode data: %v", domain.ErrProvider, err)
	}
	return nil
}
