package linear

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/relay-cli/internal/core/domain"
	"github.com/custodia-labs/relay-cli/internal/core/ports/driven"
)

// Ensure Provider implements the interface.
var _ driven.ResourceProvider = (*Provider)(nil)

const (
	// DefaultLimit is the issue count fetched when the query sets none.
	DefaultLimit = 50

	// MaxLimit is Linear's per-request ceiling.
	MaxLimit = 250
)

// issueFields is the selection set shared by all issue queries.
const issueFields = `
    id
    title
    description
    createdAt
    updatedAt
    state {
        name
    }
    assignee {
        name
        email
    }
    labels {
        nodes {
            name
        }
    }
    project {
        id
        name
    }`

const issuesQuery = `
query GetIssues($first: Int!) {
    issues(first: $first) {
        nodes {` + issueFields + `
        }
    }
}`

const issueQuery = `
query GetIssue($id: String!) {
    issue(id: $id) {` + issueFields + `
    }
}`

const searchQuery = `
query SearchIssues($query: String!) {
    issueSearch(query: $query) {
        nodes {` + issueFields + `
        }
    }
}`

// issue mirrors the GraphQL issue selection.
type issue struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	State       issueState `json:"state"`
	Assignee    *user      `json:"assignee"`
	Labels      labels     `json:"labels"`
	Project     *project   `json:"project"`
}

type issueState struct {
	Name string `json:"name"`
}

type user struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type labels struct {
	Nodes []label `json:"nodes"`
}

type label struct {
	Name string `json:"name"`
}

type project struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type issueConnection struct {
	Nodes []issue `json:"nodes"`
}

// Provider fetches Linear issues as resources.
type Provider struct {
	client *client
}

// NewProvider creates a new Linear provider.
func NewProvider(cfg Config) (*Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: linear: API key is required", domain.ErrProvider)
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Provider{client: newClient(cfg)}, nil
}

// Name returns the provider identity token.
func (p *Provider) Name() string {
	return "Linear"
}

// FetchResources fetches the most recent issues, honoring the query
// limit up to Linear's ceiling. Filters are accepted but unused; Linear
// needs no required filter keys.
func (p *Provider) FetchResources(ctx context.Context, query *domain.Query) ([]domain.Resource, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	var data struct {
		Issues issueConnection `json:"issues"`
	}
	if err := p.client.execute(ctx, issuesQuery, map[string]any{"first": limit}, &data); err != nil {
		return nil, err
	}

	return issuesToResources(data.Issues.Nodes), nil
}

// FetchResourceByID resolves an issue by its ID, with or without the
// "linear_" prefix.
func (p *Provider) FetchResourceByID(ctx context.Context, id string) (*domain.Resource, error) {
	_, issueID, ok := domain.SplitID(id)
	if !ok {
		issueID = id
	}

	var data struct {
		Issue *issue `json:"issue"`
	}
	if err := p.client.execute(ctx, issueQuery, map[string]any{"id": issueID}, &data); err != nil {
		return nil, err
	}

	if data.Issue == nil {
		return nil, fmt.Errorf("%w: linear issue %s", domain.ErrNotFound, issueID)
	}

	resource := issueToResource(*data.Issue)
	return &resource, nil
}

// Search performs Linear's issue search.
func (p *Provider) Search(ctx context.Context, text string) ([]domain.Resource, error) {
	var data struct {
		IssueSearch issueConnection `json:"issueSearch"`
	}
	if err := p.client.execute(ctx, searchQuery, map[string]any{"query": text}, &data); err != nil {
		return nil, err
	}

	return issuesToResources(data.IssueSearch.Nodes), nil
}

func issuesToResources(issues []issue) []domain.Resource {
	resources := make([]domain.Resource, len(issues))
	for i, is := range issues {
		resources[i] = issueToResource(is)
	}
	return resources
}

// issueToResource converts an issue into a domain resource. Structured
// issue fields the domain has no slot for (state, assignee, labels,
// project) go into metadata.
func issueToResource(is issue) domain.Resource {
	metadata := map[string]any{
		"state": is.State.Name,
	}

	if is.Assignee != nil {
		metadata["assignee"] = map[string]any{
			"name":  is.Assignee.Name,
			"email": is.Assignee.Email,
		}
	}

	labelNames := make([]string, len(is.Labels.Nodes))
	for i, l := range is.Labels.Nodes {
		labelNames[i] = l.Name
	}
	metadata["labels"] = labelNames

	projectID := ""
	if is.Project != nil {
		projectID = is.Project.ID
		metadata["project"] = map[string]any{
			"id":   is.Project.ID,
			"name": is.Project.Name,
		}
	}

	return domain.Resource{
		ID:        domain.PrefixID(domain.ProviderLinear, is.ID),
		Source:    domain.LinearSource(is.ID, projectID),
		Title:     is.Title,
		Content:   is.Description,
		Metadata:  metadata,
		CreatedAt: is.CreatedAt.UTC(),
		UpdatedAt: is.UpdatedAt.UTC(),
	}
}
