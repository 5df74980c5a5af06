// Package domain defines the core business entities for Relay.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Resource: A normalized unit of content retrieved from a provider
//   - ResourceSource: Provider identity plus provider-native identifiers
//   - Query: A request descriptor selecting provider scope, filters, limit
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
