package driven

import (
	"context"

	"github.com/custodia-labs/relay-cli/internal/core/domain"
)

// ResourceProvider fetches resources from an external data source.
// Each provider type (Notion, Linear) implements this interface; any type
// satisfying it may be registered with the aggregation service, which has
// no knowledge of HTTP, GraphQL, or credential mechanics.
//
// All methods perform outbound network I/O, mutate no local state, and
// are safe for the caller to retry (idempotent reads).
type ResourceProvider interface {
	// Name returns the stable provider identity token. The aggregation
	// service keys its registry on the lower-cased value.
	Name() string

	// FetchResources bulk-fetches resources honoring the query's filters
	// and limit. A provider may require specific filter keys and fails
	// with domain.ErrInvalidQuery when one is absent; network or remote
	// failures surface as domain.ErrProvider.
	FetchResources(ctx context.Context, query *domain.Query) ([]domain.Resource, error)

	// FetchResourceByID looks up a single resource by its ID, with or
	// without the provider prefix. Fails with domain.ErrNotFound when
	// the remote reports no such item.
	FetchResourceByID(ctx context.Context, id string) (*domain.Resource, error)

	// Search performs free-text search scoped to this provider.
	Search(ctx context.Context, text string) ([]domain.Resource, error)
}
