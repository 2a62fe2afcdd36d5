package quiz

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// contentSelectors lists the article body containers this site has
// used, in preference order. When none match, extraction falls back to
// the full document body.
const contentSelectors = "#articleBody, .article-body, .news-article, .article_content"

func fetchDoc(u string, cfg Config) (*goquery.Document, error) {
	client := &http.Client{Timeout: cfg.Timeout}
	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", cfg.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("GET %s: status %s", u, resp.Status)
	}
	return goquery.NewDocumentFromReader(resp.Body)
}

// FetchArticle retrieves an article page and wraps it with its display
// title. The page <title> is preferred; og:title is the fallback.
func FetchArticle(articleURL string, cfg Config) (*Article, error) {
	doc, err := fetchDoc(articleURL, cfg)
	if err != nil {
		return nil, fmt.Errorf("fetch article: %w", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		if og, ok := doc.Find("meta[property='og:title']").Attr("content"); ok {
			title = strings.TrimSpace(og)
		}
	}

	return &Article{URL: articleURL, Title: title, Doc: doc}, nil
}

// contentRoot returns the article body container, or the document body
// when no known container is present.
func contentRoot(doc *goquery.Document) *goquery.Selection {
	if sel := doc.Find(contentSelectors).First(); sel.Length() > 0 {
		return sel
	}
	return doc.Find("body").First()
}

func resolveURL(baseURL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return ""
	}
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return base.ResolveReference(u).String()
}
