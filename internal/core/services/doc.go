// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (providers, stores).
//
// Services are pure Go with no external dependencies beyond the
// internal logger.
package services
