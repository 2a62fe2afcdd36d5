package quiz

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// FindArticleLink scans every anchor of a search results page in
// document order and returns the absolute URL of the first one whose
// visible text contains both the subject phrase and the date label.
// The scan stops on the first match. An empty return means no article
// was published for that date (a normal outcome, not an error).
func FindArticleLink(doc *goquery.Document, subjectPhrase, dateLabel string, cfg Config) string {
	found := ""
	doc.Find("a").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		text := normalizeWhitespace(a.Text())
		if !strings.Contains(text, subjectPhrase) || !strings.Contains(text, dateLabel) {
			return true
		}
		href, ok := a.Attr("href")
		if !ok {
			return true
		}
		abs := resolveURL(cfg.Origin, href)
		if abs == "" {
			return true
		}
		found = abs
		return false
	})
	return found
}
