// Package mcp provides an MCP (Model Context Protocol) server adapter for
// Relay. It exposes the aggregation service to AI assistants as tools and
// resources.
package mcp

import "errors"

// ErrMissingResourceService is returned when the resource service is not provided.
var ErrMissingResourceService = errors.New("mcp: resource service is required")
