package domain

import "strings"

// SourceAll selects every registered provider.
const SourceAll QuerySource = "all"

// QuerySource selects which provider(s) a query targets: a specific
// provider's lower-cased identity token, or SourceAll.
type QuerySource string

// ParseQuerySource normalises a user-supplied source token.
// Empty input and "all" select every provider; anything else is treated
// as a specific provider name and resolved against the registry at call
// time (an unregistered name fails there with ErrProvider).
func ParseQuerySource(s string) QuerySource {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == string(SourceAll) {
		return SourceAll
	}
	return QuerySource(s)
}

// ParseQuerySources normalises a list of source tokens, defaulting to
// SourceAll when the list is empty.
func ParseQuerySources(tokens []string) []QuerySource {
	if len(tokens) == 0 {
		return []QuerySource{SourceAll}
	}
	sources := make([]QuerySource, len(tokens))
	for i, t := range tokens {
		sources[i] = ParseQuerySource(t)
	}
	return sources
}

// IsAll reports whether the source selects every registered provider.
func (s QuerySource) IsAll() bool {
	return s == SourceAll
}

// Query is a request descriptor for a bulk fetch.
type Query struct {
	// Source selects the provider scope.
	Source QuerySource

	// Filters are provider-interpreted key-value pairs. The aggregator
	// never inspects them; an adapter may reject the query when a
	// required key is absent (Notion requires "database_id").
	Filters map[string]string

	// Limit caps the result count. Zero means provider default.
	// Providers independently cap this (Linear at 250, Notion at 100).
	Limit int
}

// Filter returns the named filter value, or "" when unset.
func (q *Query) Filter(key string) string {
	if q.Filters == nil {
		return ""
	}
	return q.Filters[key]
}
