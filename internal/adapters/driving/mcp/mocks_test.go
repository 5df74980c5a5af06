package mcp

import (
	"context"

	"github.com/custodia-labs/relay-cli/internal/core/domain"
)

// mockResourceService is a mock implementation of driving.ResourceService.
type mockResourceService struct {
	resources []domain.Resource
	resource  *domain.Resource
	providers []string
	err       error

	lastQuery   *domain.Query
	lastSources []domain.QuerySource
	lastID      string
}

func (m *mockResourceService) FetchResources(_ context.Context, query *domain.Query) ([]domain.Resource, error) {
	m.lastQuery = query
	return m.resources, m.err
}

func (m *mockResourceService) FetchResourceByID(_ context.Context, id string) (*domain.Resource, error) {
	m.lastID = id
	return m.resource, m.err
}

func (m *mockResourceService) Search(_ context.Context, _ string, sources []domain.QuerySource) ([]domain.Resource, error) {
	m.lastSources = sources
	return m.resources, m.err
}

func (m *mockResourceService) ListProviders() []string {
	return m.providers
}
