package notion

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jomei/notionapi"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/relay-cli/internal/core/domain"
	"github.com/custodia-labs/relay-cli/internal/core/ports/driven"
	"github.com/custodia-labs/relay-cli/internal/logger"
)

// Ensure Provider implements the interface.
var _ driven.ResourceProvider = (*Provider)(nil)

// Default configuration values.
const (
	// DefaultTimeout is the HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// MaxPageSize is Notion's maximum page size per request.
	MaxPageSize = 100

	// requestsPerSecond is Notion's documented average rate limit.
	requestsPerSecond = 3
)

// filterDatabaseID is the required filter key for bulk fetches.
const filterDatabaseID = "database_id"

// Config holds configuration for the Notion provider.
type Config struct {
	// APIKey is the Notion integration token (required).
	APIKey string

	// Timeout is the request timeout (default: 30s).
	Timeout time.Duration
}

// Provider fetches Notion pages as resources.
type Provider struct {
	client  *notionapi.Client
	limiter *rate.Limiter
}

// NewProvider creates a new Notion provider.
func NewProvider(cfg Config) (*Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: notion: API key is required", domain.ErrProvider)
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	client := notionapi.NewClient(
		notionapi.Token(cfg.APIKey),
		notionapi.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
	)

	return &Provider{
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
	}, nil
}

// Name returns the provider identity token.
func (p *Provider) Name() string {
	return "Notion"
}

// FetchResources queries a Notion database for pages. The query must
// carry a "database_id" filter; Notion has no account-wide page listing.
func (p *Provider) FetchResources(ctx context.Context, query *domain.Query) ([]domain.Resource, error) {
	databaseID := query.Filter(filterDatabaseID)
	if databaseID == "" {
		return nil, fmt.Errorf("%w: database_id filter required for Notion queries", domain.ErrInvalidQuery)
	}

	pageSize := query.Limit
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProvider, err)
	}
	resp, err := p.client.Database.Query(ctx, notionapi.DatabaseID(databaseID), &notionapi.DatabaseQueryRequest{
		PageSize: pageSize,
	})
	if err != nil {
		return nil, wrapError(err, "query database")
	}

	resources := make([]domain.Resource, 0, len(resp.Results))
	for i := range resp.Results {
		resource, err := p.pageToResource(ctx, &resp.Results[i], databaseID)
		if err != nil {
			logger.Warn("notion: skipping page %s: %v", resp.Results[i].ID, err)
			continue
		}
		resources = append(resources, *resource)
	}
	return resources, nil
}

// FetchResourceByID resolves a page by its ID, with or without the
// "notion_" prefix.
func (p *Provider) FetchResourceByID(ctx context.Context, id string) (*domain.Resource, error) {
	_, pageID, ok := domain.SplitID(id)
	if !ok {
		pageID = id
	}

	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProvider, err)
	}
	page, err := p.client.Page.Get(ctx, notionapi.PageID(pageID))
	if err != nil {
		return nil, wrapError(err, "get page")
	}

	return p.pageToResource(ctx, page, "")
}

// Search performs workspace search scoped to pages.
func (p *Provider) Search(ctx context.Context, text string) ([]domain.Resource, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProvider, err)
	}
	resp, err := p.client.Search.Do(ctx, &notionapi.SearchRequest{
		Query: text,
		Filter: notionapi.SearchFilter{
			Value:    "page",
			Property: "object",
		},
	})
	if err != nil {
		return nil, wrapError(err, "search")
	}

	var resources []domain.Resource
	for _, obj := range resp.Results {
		page, ok := obj.(*notionapi.Page)
		if !ok {
			continue
		}
		resource, err := p.pageToResource(ctx, page, "")
		if err != nil {
			logger.Warn("notion: skipping search result %s: %v", page.ID, err)
			continue
		}
		resources = append(resources, *resource)
	}
	return resources, nil
}

// wrapError maps a notionapi error onto the domain taxonomy.
func wrapError(err error, op string) error {
	var apiErr *notionapi.Error
	if errors.As(err, &apiErr) {
		if apiErr.Status == http.StatusNotFound {
			return fmt.Errorf("%w: notion: %s: %s", domain.ErrNotFound, op, apiErr.Message)
		}
		return fmt.Errorf("%w: notion: %s: %s", domain.ErrProvider, op, apiErr.Message)
	}
	return fmt.Errorf("%w: notion: %s: %v", domain.ErrProvider, op, err)
}
