package notion

import (
	"context"
	"fmt"
	"strings"

	"github.com/jomei/notionapi"

	"github.com/custodia-labs/relay-cli/internal/core/domain"
)

// pageToResource converts a Notion page into a domain resource, fetching
// and flattening its block children for the content field. databaseID may
// be empty when the page was not reached through a database query; the
// page's own parent is used instead when it is a database.
func (p *Provider) pageToResource(ctx context.Context, page *notionapi.Page, databaseID string) (*domain.Resource, error) {
	pageID := string(page.ID)
	if pageID == "" {
		return nil, fmt.Errorf("%w: notion: page has no ID", domain.ErrProvider)
	}

	if databaseID == "" && page.Parent.Type == "database_id" {
		databaseID = string(page.Parent.DatabaseID)
	}

	content, err := p.pageContent(ctx, pageID)
	if err != nil {
		return nil, err
	}

	metadata := map[string]any{}
	if len(page.Properties) > 0 {
		metadata["properties"] = page.Properties
	}
	if page.URL != "" {
		metadata["url"] = page.URL
	}

	return &domain.Resource{
		ID:        domain.PrefixID(domain.ProviderNotion, pageID),
		Source:    domain.NotionSource(pageID, databaseID),
		Title:     extractTitle(page.Properties),
		Content:   content,
		Metadata:  metadata,
		CreatedAt: page.CreatedTime.UTC(),
		UpdatedAt: page.LastEditedTime.UTC(),
	}, nil
}

// pageContent fetches all block children of a page, following pagination,
// and flattens them to plain text.
func (p *Provider) pageContent(ctx context.Context, pageID string) (string, error) {
	var blocks []notionapi.Block
	var cursor notionapi.Cursor

	for {
		if err := p.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("%w: %v", domain.ErrProvider, err)
		}
		resp, err := p.client.Block.GetChildren(ctx, notionapi.BlockID(pageID), &notionapi.Pagination{
			StartCursor: cursor,
			PageSize:    MaxPageSize,
		})
		if err != nil {
			return "", wrapError(err, "get page blocks")
		}

		blocks = append(blocks, resp.Results...)

		if !resp.HasMore {
			break
		}
		cursor = notionapi.Cursor(resp.NextCursor)
	}

	return flattenBlocks(blocks), nil
}

// flattenBlocks extracts best-effort plain text from paragraph, heading,
// and list item blocks. Other block types are skipped.
func flattenBlocks(blocks []notionapi.Block) string {
	var b strings.Builder

	for _, block := range blocks {
		switch v := block.(type) {
		case *notionapi.ParagraphBlock:
			writeRichText(&b, v.Paragraph.RichText)
		case *notionapi.Heading1Block:
			writeRichText(&b, v.Heading1.RichText)
		case *notionapi.Heading2Block:
			writeRichText(&b, v.Heading2.RichText)
		case *notionapi.Heading3Block:
			writeRichText(&b, v.Heading3.RichText)
		case *notionapi.BulletedListItemBlock:
			writeListItem(&b, v.BulletedListItem.RichText)
		case *notionapi.NumberedListItemBlock:
			writeListItem(&b, v.NumberedListItem.RichText)
		}
	}

	return b.String()
}

// writeRichText appends each rich text fragment on its own line.
func writeRichText(b *strings.Builder, richText []notionapi.RichText) {
	for _, rt := range richText {
		if rt.PlainText == "" {
			continue
		}
		b.WriteString(rt.PlainText)
		b.WriteByte('\n')
	}
}

// writeListItem renders a list item as a single bulleted line.
func writeListItem(b *strings.Builder, richText []notionapi.RichText) {
	b.WriteString("• ")
	for _, rt := range richText {
		b.WriteString(rt.PlainText)
	}
	b.WriteByte('\n')
}

// extractTitle finds the first title property on the page.
// Pages without one render as "Untitled".
func extractTitle(properties notionapi.Properties) string {
	for _, prop := range properties {
		title, ok := prop.(*notionapi.TitleProperty)
		if !ok || len(title.Title) == 0 {
			continue
		}
		if text := title.Title[0].PlainText; text != "" {
			return text
		}
	}
	return "Untitled"
}
