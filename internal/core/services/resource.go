package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/custodia-labs/relay-cli/internal/core/domain"
	"github.com/custodia-labs/relay-cli/internal/core/ports/driven"
	"github.com/custodia-labs/relay-cli/internal/core/ports/driving"
	"github.com/custodia-labs/relay-cli/internal/logger"
)

// Ensure ResourceService implements the interface.
var _ driving.ResourceService = (*ResourceService)(nil)

// ResourceService aggregates resources across registered providers.
// Each call is a stateless request against the current registry snapshot.
//
// Failure policy is deliberately asymmetric: a caller who explicitly names
// one provider wants to know it failed, so specific-source operations
// propagate errors verbatim. A caller who asks for "all" wants best-effort
// aggregation, so fan-out skips failed providers with a logged warning.
type ResourceService struct {
	mu        sync.RWMutex
	providers map[string]driven.ResourceProvider
}

// NewResourceService creates an empty aggregation service.
func NewResourceService() *ResourceService {
	return &ResourceService{
		providers: make(map[string]driven.ResourceProvider),
	}
}

// AddProvider registers a provider under its lower-cased name.
// The last registration for a given name wins silently.
func (s *ResourceService) AddProvider(p driven.ResourceProvider) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.providers[strings.ToLower(p.Name())] = p
}

// provider looks up a single provider by lower-cased name.
func (s *ResourceService) provider(name string) (driven.ResourceProvider, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.providers[name]
	return p, ok
}

// ordered returns registered providers sorted by registry key.
// Map iteration order is unspecified; sorting keeps fan-out concatenation
// and probe order deterministic for a fixed registry.
func (s *ResourceService) ordered() []driven.ResourceProvider {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.providers))
	for name := range s.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	providers := make([]driven.ResourceProvider, len(names))
	for i, name := range names {
		providers[i] = s.providers[name]
	}
	return providers
}

// FetchResources dispatches on the query's source scope.
// A specific provider is looked up strictly and its result propagated
// unmodified. SourceAll fans out over every registered provider,
// concatenating successes and skipping failures; an empty registry
// yields an empty list, not an error.
func (s *ResourceService) FetchResources(ctx context.Context, query *domain.Query) ([]domain.Resource, error) {
	if !query.Source.IsAll() {
		name := string(query.Source)
		p, ok := s.provider(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s provider not configured", domain.ErrProvider, name)
		}
		return p.FetchResources(ctx, query)
	}

	var all []domain.Resource
	for _, p := range s.ordered() {
		resources, err := p.FetchResources(ctx, query)
		if err != nil {
			logger.Warn("provider %s failed: %v", p.Name(), err)
			continue
		}
		all = append(all, resources...)
	}
	return all, nil
}

// FetchResourceByID resolves an ID to a single resource.
//
// An ID carrying a reserved provider prefix routes directly to that
// provider, and its result or error propagates unmodified - including
// "not configured" when the prefix names an unregistered provider.
// Any other ID is probed across all providers in order: ErrNotFound
// continues to the next provider, any other error aborts the probe.
func (s *ResourceService) FetchResourceByID(ctx context.Context, id string) (*domain.Resource, error) {
	if name, _, ok := domain.SplitID(id); ok {
		p, registered := s.provider(name)
		if !registered {
			return nil, fmt.Errorf("%w: %s provider not configured", domain.ErrProvider, name)
		}
		return p.FetchResourceByID(ctx, id)
	}

	for _, p := range s.ordered() {
		resource, err := p.FetchResourceByID(ctx, id)
		switch {
		case err == nil:
			return resource, nil
		case errors.Is(err, domain.ErrNotFound):
			logger.Debug("provider %s: no resource %s, continuing probe", p.Name(), id)
			continue
		default:
			return nil, err
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
}

// Search performs free-text search across the requested sources.
// A nil or empty sources list is equivalent to []{SourceAll}. Successes
// concatenate; a provider that fails is logged and skipped, so search
// never hard-fails due to one provider.
func (s *ResourceService) Search(ctx context.Context, text string, sources []domain.QuerySource) ([]domain.Resource, error) {
	if len(sources) == 0 {
		sources = []domain.QuerySource{domain.SourceAll}
	}

	var all []domain.Resource
	for _, source := range sources {
		for _, p := range s.resolve(source) {
			resources, err := p.Search(ctx, text)
			if err != nil {
				logger.Warn("provider %s search failed: %v", p.Name(), err)
				continue
			}
			all = append(all, resources...)
		}
	}
	return all, nil
}

// resolve expands a source selector into concrete providers. A specific
// selector naming an unregistered provider resolves to nothing; search
// fan-out is tolerant by contract.
func (s *ResourceService) resolve(source domain.QuerySource) []driven.ResourceProvider {
	if source.IsAll() {
		return s.ordered()
	}
	p, ok := s.provider(string(source))
	if !ok {
		logger.Debug("search source %s not registered, skipping", source)
		return nil
	}
	return []driven.ResourceProvider{p}
}

// ListProviders returns the registered providers' display names in
// registry key order.
func (s *ResourceService) ListProviders() []string {
	providers := s.ordered()
	names := make([]string, len(providers))
	for i, p := range providers {
		names[i] = p.Name()
	}
	return names
}
