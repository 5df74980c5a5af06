package driving

import (
	"context"

	"github.com/custodia-labs/relay-cli/internal/core/domain"
)

// ResourceService is the caller-facing aggregation API. A CLI, MCP server,
// or any other front end consumes providers exclusively through it.
type ResourceService interface {
	// FetchResources bulk-fetches resources for the query's source scope.
	// A specific source propagates that provider's result or error
	// verbatim; SourceAll fans out tolerantly across every registered
	// provider, skipping failures.
	FetchResources(ctx context.Context, query *domain.Query) ([]domain.Resource, error)

	// FetchResourceByID resolves an ID to a single resource, routing by
	// reserved provider prefix when present and probing all providers
	// otherwise.
	FetchResourceByID(ctx context.Context, id string) (*domain.Resource, error)

	// Search performs free-text search across the requested sources.
	// A nil or empty sources list means all registered providers.
	Search(ctx context.Context, text string, sources []domain.QuerySource) ([]domain.Resource, error)

	// ListProviders returns the registered providers' display names.
	ListProviders() []string
}
