// =============================================================================
// types.go - データ構造定義
// =============================================================================
//
// quiz-relay 全体で使用するデータ構造（型）を定義します。
//
// 【このファイルで定義している型】
//   - AnswerPair:      クイズの問題タイトルと正答のペア
//   - Article:         取得した記事（URL・タイトル・本文）
//   - ProcessedRecord: 処理済み記事の記録（重複通知防止用）
//
// =============================================================================
package quiz

import "github.com/PuerkitoBio/goquery"

// AnswerPair is one (question title, answer) unit extracted from an
// answer-announcement article.
type AnswerPair struct {
	Title  string `json:"title"`  // 問題タイトル
	Answer string `json:"answer"` // 正答テキスト
}

// Article is a fetched answer article. URL is always absolute.
type Article struct {
	URL   string
	Title string
	Doc   *goquery.Document // parsed markup, owned by the fetcher
}

// ProcessedRecord marks one announced article in the dedup store.
// Records are never updated after creation and never expire.
type ProcessedRecord struct {
	Date      string `json:"date"`      // 例: "7월 24일"
	Timestamp string `json:"timestamp"` // RFC3339
}
