package mcp

import (
	"github.com/custodia-labs/relay-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Resource provides aggregation across providers.
	Resource driving.ResourceService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Resource == nil {
		return ErrMissingResourceService
	}
	return nil
}
