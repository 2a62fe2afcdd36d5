// =============================================================================
// config.go - quiz-relay 設定
// =============================================================================
//
// 固定定数（対象サイト・検索パス・User-Agent）と環境変数から読み込む設定を
// まとめて保持します。コンポーネントはグローバル変数を参照せず、
// この Config を受け取って動作します（テスト時に差し替え可能）。
//
// 【必要な環境変数】
//   DISCORD_WEBHOOK_URL - 通知先Discord Webhook（未設定なら通知スキップ）
//   QUIZ_STORE_PATH     - 処理済み記事ストアのパス（省略時: processed_articles.json）
//   NOTION_TOKEN        - Notionアーカイブ用トークン（任意）
//   NOTION_DATABASE_ID  - NotionデータベースID（任意）
//
// =============================================================================
package quiz

import (
	"net/url"
	"os"
	"time"
)

// Config holds everything the pipeline needs. Fixed site constants come
// from DefaultConfig; delivery/storage settings come from the environment.
type Config struct {
	// Origin is the news site base URL; relative article links are
	// resolved against it.
	Origin string

	// SearchPath is the site search endpoint, relative to Origin.
	SearchPath string

	// SubjectPhrase identifies the recurring answer-announcement
	// article within search results.
	SubjectPhrase string

	// FeedPath is the site RSS feed, used as a fallback locator when
	// the search page yields no matching link.
	FeedPath string

	UserAgent string
	Timeout   time.Duration

	// WebhookURL is the Discord webhook; empty means "build the message
	// but do not deliver".
	WebhookURL string

	// StorePath is the processed-article JSON store location.
	StorePath string

	// Notion archive settings (both empty = archiving disabled).
	NotionToken      string
	NotionDatabaseID string
}

const (
	defaultOrigin        = "https://www.bntnews.co.kr"
	defaultSearchPath    = "/bnt/search"
	defaultFeedPath      = "/rss/allArticle.xml"
	defaultSubjectPhrase = "토스 행운퀴즈"
	defaultUserAgent     = "Mozilla/5.0 (compatible; quiz-relay/1.0; +https://example.invalid)"
	defaultStorePath     = "processed_articles.json"
)

// DefaultConfig returns the fixed site constants with environment
// overrides applied for delivery and storage.
func DefaultConfig() Config {
	cfg := Config{
		Origin:           defaultOrigin,
		SearchPath:       defaultSearchPath,
		SubjectPhrase:    defaultSubjectPhrase,
		FeedPath:         defaultFeedPath,
		UserAgent:        defaultUserAgent,
		Timeout:          20 * time.Second,
		WebhookURL:       os.Getenv("DISCORD_WEBHOOK_URL"),
		StorePath:        os.Getenv("QUIZ_STORE_PATH"),
		NotionToken:      os.Getenv("NOTION_TOKEN"),
		NotionDatabaseID: os.Getenv("NOTION_DATABASE_ID"),
	}
	if cfg.StorePath == "" {
		cfg.StorePath = defaultStorePath
	}
	return cfg
}

// SearchURL builds the search request URL for the subject phrase.
func (c Config) SearchURL() string {
	q := url.Values{}
	q.Set("query", c.SubjectPhrase)
	return c.Origin + c.SearchPath + "?" + q.Encode()
}

// FeedURL returns the absolute RSS feed URL.
func (c Config) FeedURL() string {
	return c.Origin + c.FeedPath
}
