// Package notion implements the ResourceProvider port against the Notion
// API using the official-style jomei/notionapi client.
//
// Pages are the unit of aggregation: bulk fetches query a database (the
// "database_id" filter is required), lookups resolve a page, and search
// uses the workspace search endpoint scoped to pages. Page content is
// flattened to plain text from the page's block children.
package notion
