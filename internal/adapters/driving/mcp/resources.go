package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for Relay resources.
	uriScheme = "relay://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing providers.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "providers",
		Name:        "providers",
		Description: "List of configured providers",
		MIMEType:    "application/json",
	}, s.handleProvidersResource)

	// Template for resource content.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "resources/{resourceId}",
		Name:        "resource-content",
		Description: "Content of a specific resource",
		MIMEType:    "text/plain",
	}, s.handleResourceContentResource)
}

// handleProvidersResource returns the configured provider names.
func (s *Server) handleProvidersResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	names := s.ports.Resource.ListProviders()

	data, err := json.MarshalIndent(names, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling providers: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleResourceContentResource returns the content of a specific resource.
func (s *Server) handleResourceContentResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract resourceId from URI: relay://resources/{resourceId}
	resourceID := extractResourceID(req.Params.URI)
	if resourceID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	resource, err := s.ports.Resource.FetchResourceByID(ctx, resourceID)
	if err != nil {
		return nil, fmt.Errorf("getting resource: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     resource.Content,
		}},
	}, nil
}

// extractResourceID extracts the resource ID from a URI like relay://resources/{resourceId}.
func extractResourceID(uri string) string {
	const prefix = uriScheme + "resources/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
