// Package linear implements the ResourceProvider port against the Linear
// GraphQL API.
//
// Issues are the unit of aggregation: bulk fetches page through the
// issues connection, lookups resolve a single issue, and search uses
// Linear's issueSearch. The GraphQL transport is a small hand-rolled
// net/http client; Linear has no official Go SDK.
package linear
