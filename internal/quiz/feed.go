package quiz

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/mmcdole/gofeed"
)

// FindArticleLinkInFeed is the fallback locator: when the search page
// has no matching anchor, scan the site RSS feed for an item whose
// title carries the subject phrase and date label. Items come newest
// first, so the first match wins here too.
func FindArticleLinkInFeed(subjectPhrase, dateLabel string, cfg Config) (string, error) {
	client := &http.Client{Timeout: cfg.Timeout}
	req, err := http.NewRequest("GET", cfg.FeedURL(), nil)
	if err != nil {
		return "", fmt.Errorf("request creation failed: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	fp := gofeed.NewParser()
	feed, err := fp.Parse(resp.Body)
	if err != nil {
		return "", fmt.Errorf("RSS parse failed: %w", err)
	}

	for _, item := range feed.Items {
		title := normalizeWhitespace(item.Title)
		if !strings.Contains(title, subjectPhrase) || !strings.Contains(title, dateLabel) {
			continue
		}
		abs := resolveURL(cfg.Origin, item.Link)
		if abs == "" {
			continue
		}
		return abs, nil
	}
	return "", nil
}
