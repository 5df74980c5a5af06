package domain

import (
	"fmt"
	"strings"
	"time"
)

// Reserved provider identity tokens. Providers register under their
// lower-cased Name(), but only these two participate in ID prefix routing.
const (
	ProviderNotion = "notion"
	ProviderLinear = "linear"
)

// Resource is a normalized unit of content retrieved from a provider.
// Resources are constructed exclusively by provider adapters from remote
// API responses and are immutable thereafter.
type Resource struct {
	// ID is globally unique and carries the provider prefix convention
	// "<provider>_<native-id>", so the ID alone can route a later lookup.
	ID string

	// Source identifies the provider that produced this resource.
	Source ResourceSource

	// Title is the human-readable title.
	Title string

	// Content is best-effort extracted and flattened text.
	Content string

	// Metadata contains provider-specific structured values
	// (labels, assignee, page properties). Opaque to the aggregator.
	Metadata map[string]any

	// CreatedAt is when the provider created the underlying item, UTC.
	CreatedAt time.Time

	// UpdatedAt is when the provider last modified the item, UTC.
	UpdatedAt time.Time
}

// ResourceSource identifies the provider that produced a resource,
// together with the provider-native identifiers.
type ResourceSource struct {
	// Provider is the identity token: "notion", "linear", or an
	// open-ended custom token for other providers.
	Provider string

	// NativeID is the provider-native identifier (page id, issue id).
	NativeID string

	// ParentID is the optional container identifier
	// (database id for Notion, project id for Linear).
	ParentID string
}

// NotionSource builds the source descriptor for a Notion page.
func NotionSource(pageID, databaseID string) ResourceSource {
	return ResourceSource{Provider: ProviderNotion, NativeID: pageID, ParentID: databaseID}
}

// LinearSource builds the source descriptor for a Linear issue.
func LinearSource(issueID, projectID string) ResourceSource {
	return ResourceSource{Provider: ProviderLinear, NativeID: issueID, ParentID: projectID}
}

// CustomSource builds a source descriptor for any other provider.
func CustomSource(provider string) ResourceSource {
	return ResourceSource{Provider: provider}
}

// String renders the source for display, e.g. "notion(page=abc, database=def)".
func (s ResourceSource) String() string {
	switch {
	case s.NativeID == "":
		return s.Provider
	case s.ParentID == "":
		return fmt.Sprintf("%s(%s)", s.Provider, s.NativeID)
	default:
		return fmt.Sprintf("%s(%s, parent=%s)", s.Provider, s.NativeID, s.ParentID)
	}
}

// PrefixID builds the globally unique resource ID for a provider-native id.
func PrefixID(provider, nativeID string) string {
	return provider + "_" + nativeID
}

// SplitID splits a resource ID into its reserved provider prefix and the
// provider-native id. Only the reserved prefixes ("notion_", "linear_")
// are recognised; any other id, prefixed or not, returns ok=false and is
// resolved by probing providers instead.
func SplitID(id string) (provider, nativeID string, ok bool) {
	for _, p := range []string{ProviderNotion, ProviderLinear} {
		if rest, found := strings.CutPrefix(id, p+"_"); found {
			return p, rest, true
		}
	}
	return "", id, false
}
