// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Interfaces
//
//   - ResourceProvider: Fetches resources from an external data source.
//     Implemented by internal/providers/notion and internal/providers/linear.
//   - ResourceStore: Resource persistence. Defined for future use; the only
//     shipped implementation is the in-memory reference store.
//   - ConfigStore: Application configuration.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or provider package
package driven
