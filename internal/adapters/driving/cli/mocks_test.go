package cli

import (
	"context"
	"errors"

	"github.com/custodia-labs/relay-cli/internal/core/domain"
	"github.com/custodia-labs/relay-cli/internal/core/ports/driving"
)

// mockResourceService is a configurable driving.ResourceService for CLI tests.
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
	if m.err != nil {
		return nil, m.err
	}
	return m.resource, nil
}

func (m *mockResourceService) Search(_ context.Context, _ string, sources []domain.QuerySource) ([]domain.Resource, error) {
	m.lastSources = sources
	return m.resources, m.err
}

func (m *mockResourceService) ListProviders() []string {
	return m.providers
}

// mockCredentialsService is a configurable driving.CredentialsService.
type mockCredentialsService struct {
	keys     map[string]string
	statuses []driving.CredentialStatus
	err      error

	setProvider string
	setKey      string
}

func (m *mockCredentialsService) APIKey(provider string) string {
	return m.keys[provider]
}

func (m *mockCredentialsService) SetAPIKey(provider, key string) error {
	m.setProvider = provider
	m.setKey = key
	return m.err
}

func (m *mockCredentialsService) Status() []driving.CredentialStatus {
	return m.statuses
}

// mockResourceServiceError always fails.
type mockResourceServiceError struct {
	mockResourceService
}

func (m *mockResourceServiceError) FetchResources(context.Context, *domain.Query) ([]domain.Resource, error) {
	return nil, errors.New("boom")
}

func (m *mockResourceServiceError) Search(context.Context, string, []domain.QuerySource) ([]domain.Resource, error) {
	return nil, errors.New("boom")
}

// setupTestServices installs mock services and returns a cleanup that
// restores the previous services and resets command flag state.
func setupTestServices() func() {
	oldResource := resourceService
	oldCredentials := credentialsService

	page := domain.Resource{
		ID:     "notion_page-1",
		Source: domain.NotionSource("page-1", "db-1"),
		Title:  "Roadmap",
	}
	issue := domain.Resource{
		ID:     "linear_issue-1",
		Source: domain.LinearSource("issue-1", "proj-1"),
		Title:  "Fix login flow",
	}

	resourceService = &mockResourceService{
		resources: []domain.Resource{page, issue},
		resource:  &page,
		providers: []string{"Linear", "Notion"},
	}
	credentialsService = &mockCredentialsService{
		statuses: []driving.CredentialStatus{
			{Provider: "linear", EnvVar: "LINEAR_API_KEY", Configured: true, FromEnv: true},
			{Provider: "notion", EnvVar: "NOTION_API_KEY"},
		},
	}

	return func() {
		resourceService = oldResource
		credentialsService = oldCredentials
		resetFlags()
	}
}

func resetFlags() {
	fetchSource = "all"
	fetchLimit = 0
	fetchFilters = nil
	fetchJSON = false
	searchSources = nil
	searchJSON = false
	getJSON = false
}
