package driven

import (
	"context"

	"github.com/custodia-labs/relay-cli/internal/core/domain"
)

// ResourceStore persists resources locally. No request-path code depends
// on it today: every resource is fetched live per request. The port exists
// so a cache or offline store can be slotted in without touching core.
type ResourceStore interface {
	// Save stores or replaces a resource by ID.
	Save(ctx context.Context, resource *domain.Resource) error

	// FindByID retrieves a stored resource.
	// Returns domain.ErrNotFound when absent.
	FindByID(ctx context.Context, id string) (*domain.Resource, error)

	// FindAll returns every stored resource.
	FindAll(ctx context.Context) ([]domain.Resource, error)

	// Delete removes a stored resource. Deleting an absent ID is a no-op.
	Delete(ctx context.Context, id string) error
}
