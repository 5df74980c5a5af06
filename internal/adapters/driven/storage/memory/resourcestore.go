// Package memory provides in-memory implementations of driven port
// interfaces. Useful for tests and as reference implementations.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/relay-cli/internal/core/domain"
	"github.com/custodia-labs/relay-cli/internal/core/ports/driven"
)

// Ensure ResourceStore implements the interface.
var _ driven.ResourceStore = (*ResourceStore)(nil)

// ResourceStore is an in-memory implementation of driven.ResourceStore.
type ResourceStore struct {
	mu        sync.RWMutex
	resources map[string]domain.Resource
}

// NewResourceStore creates a new in-memory resource store.
func NewResourceStore() *ResourceStore {
	return &ResourceStore{
		resources: make(map[string]domain.Resource),
	}
}

// Save stores or replaces a resource by ID.
func (s *ResourceStore) Save(_ context.Context, resource *domain.Resource) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resources[resource.ID] = *resource
	return nil
}

// FindByID retrieves a stored resource.
func (s *ResourceStore) FindByID(_ context.Context, id string) (*domain.Resource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	resource, ok := s.resources[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &resource, nil
}

// FindAll returns every stored resource, sorted by ID.
func (s *ResourceStore) FindAll(_ context.Context) ([]domain.Resource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := make([]domain.Resource, 0, len(s.resources))
	for _, resource := range s.resources {
		all = append(all, resource)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all, nil
}

// Delete removes a stored resource. Absent IDs are a no-op.
func (s *ResourceStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.resources, id)
	return nil
}
