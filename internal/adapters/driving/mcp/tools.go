package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/relay-cli/internal/core/domain"
)

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query   string   `json:"query" jsonschema:"the free-text query to search for"`
	Sources []string `json:"sources,omitempty" jsonschema:"provider names to search (default: all)"`
}

// FetchInput is the input schema for the fetch_resources tool.
type FetchInput struct {
	Source  string            `json:"source,omitempty" jsonschema:"provider to fetch from: notion, linear, or all (default)"`
	Filters map[string]string `json:"filters,omitempty" jsonschema:"provider filters; Notion requires database_id"`
	Limit   int               `json:"limit,omitempty" jsonschema:"maximum number of resources (0 = provider default)"`
}

// GetInput is the input schema for the get_resource tool.
type GetInput struct {
	ID string `json:"id" jsonschema:"resource ID, with or without the provider prefix"`
}

// ResourceOutput is the wire form of a single resource.
type ResourceOutput struct {
	ID        string         `json:"id"`
	Provider  string         `json:"provider"`
	Title     string         `json:"title"`
	Content   string         `json:"content,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt string         `json:"created_at,omitempty"`
	UpdatedAt string         `json:"updated_at,omitempty"`
}

// ResourcesOutput is the output schema for list-shaped tools.
type ResourcesOutput struct {
	Resources []ResourceOutput `json:"resources"`
	Count     int              `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Search resources across the configured providers",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "fetch_resources",
		Description: "Bulk-fetch resources from a provider or from all providers",
	}, s.handleFetch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_resource",
		Description: "Fetch a single resource by its ID, content included",
	}, s.handleGet)
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, ResourcesOutput, error) {
	sources := domain.ParseQuerySources(input.Sources)

	results, err := s.ports.Resource.Search(ctx, input.Query, sources)
	if err != nil {
		return nil, ResourcesOutput{}, err
	}

	return nil, resourcesOutput(results), nil
}

// handleFetch handles the fetch_resources tool invocation.
func (s *Server) handleFetch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input FetchInput,
) (*mcp.CallToolResult, ResourcesOutput, error) {
	query := &domain.Query{
		Source:  domain.ParseQuerySource(input.Source),
		Filters: input.Filters,
		Limit:   input.Limit,
	}

	results, err := s.ports.Resource.FetchResources(ctx, query)
	if err != nil {
		return nil, ResourcesOutput{}, err
	}

	return nil, resourcesOutput(results), nil
}

// handleGet handles the get_resource tool invocation.
func (s *Server) handleGet(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetInput,
) (*mcp.CallToolResult, ResourceOutput, error) {
	resource, err := s.ports.Resource.FetchResourceByID(ctx, input.ID)
	if err != nil {
		return nil, ResourceOutput{}, err
	}

	return nil, resourceOutput(*resource), nil
}

func resourcesOutput(resources []domain.Resource) ResourcesOutput {
	out := ResourcesOutput{
		Resources: make([]ResourceOutput, len(resources)),
		Count:     len(resources),
	}
	for i := range resources {
		out.Resources[i] = resourceOutput(resources[i])
	}
	return out
}

func resourceOutput(r domain.Resource) ResourceOutput {
	return ResourceOutput{
		ID:        r.ID,
		Provider:  r.Source.Provider,
		Title:     r.Title,
		Content:   r.Content,
		Metadata:  r.Metadata,
		CreatedAt: formatTime(r.CreatedAt),
		UpdatedAt: formatTime(r.UpdatedAt),
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
