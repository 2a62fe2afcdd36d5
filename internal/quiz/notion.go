package quiz

import (
	"context"
	"fmt"
	"strings"

	"github.com/jomei/notionapi"
)

// Archiver keeps a secondary record of every announced article in a
// Notion database, one page per run. Archiving is optional: without
// NOTION_TOKEN / NOTION_DATABASE_ID the runner never constructs one.
type Archiver struct {
	client *notionapi.Client
	dbID   notionapi.DatabaseID
}

// NewArchiver creates a Notion archiver for an existing database.
func NewArchiver(token, databaseID string) (*Archiver, error) {
	if token == "" {
		return nil, fmt.Errorf("NOTION_TOKEN is required")
	}
	if databaseID == "" {
		return nil, fmt.Errorf("NOTION_DATABASE_ID is required")
	}
	return &Archiver{
		client: notionapi.NewClient(notionapi.Token(token)),
		dbID:   notionapi.DatabaseID(databaseID),
	}, nil
}

// ArchiveRun stores one announced article with its extracted pairs.
func (a *Archiver) ArchiveRun(ctx context.Context, art *Article, pairs []AnswerPair, dateLabel string) error {
	properties := notionapi.Properties{
		"Title": notionapi.TitleProperty{
			Type: notionapi.PropertyTypeTitle,
			Title: []notionapi.RichText{
				{Text: &notionapi.Text{Content: art.Title}},
			},
		},
		"URL": notionapi.URLProperty{
			Type: notionapi.PropertyTypeURL,
			URL:  art.URL,
		},
		"Date": notionapi.RichTextProperty{
			Type: notionapi.PropertyTypeRichText,
			RichText: []notionapi.RichText{
				{Text: &notionapi.Text{Content: dateLabel}},
			},
		},
		"Answers": notionapi.RichTextProperty{
			Type: notionapi.PropertyTypeRichText,
			RichText: []notionapi.RichText{
				{Text: &notionapi.Text{Content: truncateText(formatPairs(pairs), 2000)}}, // Notion limit
			},
		},
	}

	pageRequest := &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:       notionapi.ParentTypeDatabaseID,
			DatabaseID: a.dbID,
		},
		Properties: properties,
	}

	if _, err := a.client.Page.Create(ctx, pageRequest); err != nil {
		return fmt.Errorf("failed to archive article: %w", err)
	}
	return nil
}

func formatPairs(pairs []AnswerPair) string {
	if len(pairs) == 0 {
		return "(no answers found)"
	}
	lines := make([]string, 0, len(pairs))
	for i, p := range pairs {
		lines = append(lines, fmt.Sprintf("%d. %s: %s", i+1, p.Title, p.Answer))
	}
	return strings.Join(lines, "\n")
}

// truncateText truncates text to maxLen characters
func truncateText(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}
	return text[:maxLen-3] + "..."
}
