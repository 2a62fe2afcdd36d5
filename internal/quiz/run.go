// =============================================================================
// run.go - パイプライン実行
// =============================================================================
//
// 1回の実行は直線的なパイプラインです:
//
//	日付解決 → 記事検索 → (見つからない: 終了)
//	→ 処理済みチェック → (処理済み: 終了)
//	→ 取得・抽出 → 通知 → (成功: 記録して終了 / 失敗: 終了)
//
// リトライはどこにもありません。失敗はその実行では常に終端で、
// 次のスケジュール実行が改めて試みます。
//
// =============================================================================
package quiz

import (
	"context"
)

// Outcome classifies how a run ended. Every run ends in exactly one of
// these; none of them is a process-level error.
type Outcome string

const (
	OutcomeNotified         Outcome = "notified"
	OutcomeAlreadyProcessed Outcome = "already-processed"
	OutcomeArticleNotFound  Outcome = "article-not-found"
	OutcomeSearchFailed     Outcome = "search-failed"
	OutcomeFetchFailed      Outcome = "fetch-failed"
	OutcomeNotifyFailed     Outcome = "notify-failed"
)

// Report is what one run produced. The boundary caller logs it and
// exits normally regardless of the outcome.
type Report struct {
	Outcome    Outcome `json:"outcome"`
	DateLabel  string  `json:"dateLabel"`
	ArticleURL string  `json:"articleUrl,omitempty"`
	Pairs      int     `json:"pairs"`
	Reason     string  `json:"reason,omitempty"`
}

// Runner composes the pipeline components for one configuration.
type Runner struct {
	cfg      Config
	store    *Store
	notifier *Notifier
	archiver *Archiver // nil when Notion archiving is not configured
}

func NewRunner(cfg Config) *Runner {
	r := &Runner{
		cfg:      cfg,
		store:    NewStore(cfg.StorePath),
		notifier: NewNotifier(cfg),
	}
	if cfg.NotionToken != "" && cfg.NotionDatabaseID != "" {
		archiver, err := NewArchiver(cfg.NotionToken, cfg.NotionDatabaseID)
		if err != nil {
			warnf("notion archiving disabled: %v", err)
		} else {
			r.archiver = archiver
		}
	}
	return r
}

// Run executes one pipeline pass for the given optional date argument.
// Faults never escape: every failure is folded into the Report.
func (r *Runner) Run(ctx context.Context, dateArg string) Report {
	date := ResolveDate(dateArg)
	label := DateLabel(date)
	report := Report{DateLabel: label}

	// 1) Locate the answer article via the search page, then the feed.
	searchDoc, err := fetchDoc(r.cfg.SearchURL(), r.cfg)
	if err != nil {
		warnf("search page fetch failed: %v", err)
		report.Outcome = OutcomeSearchFailed
		report.Reason = err.Error()
		return report
	}

	link := FindArticleLink(searchDoc, r.cfg.SubjectPhrase, label, r.cfg)
	if link == "" {
		infof("no search hit for %q / %q, trying RSS feed", r.cfg.SubjectPhrase, label)
		link, err = FindArticleLinkInFeed(r.cfg.SubjectPhrase, label, r.cfg)
		if err != nil {
			warnf("feed fallback failed: %v", err)
		}
	}
	if link == "" {
		infof("no answer article found for %s", label)
		report.Outcome = OutcomeArticleNotFound
		return report
	}
	report.ArticleURL = link

	// 2) Dedup check before any fetch or send.
	if r.store.Contains(link) {
		infof("already processed: %s", link)
		report.Outcome = OutcomeAlreadyProcessed
		return report
	}

	// 3) Fetch and extract.
	article, err := FetchArticle(link, r.cfg)
	if err != nil {
		warnf("article fetch failed: %v", err)
		report.Outcome = OutcomeFetchFailed
		report.Reason = err.Error()
		return report
	}

	pairs := ExtractAnswers(article.Doc)
	report.Pairs = len(pairs)
	infof("extracted %d answer pairs from %s", len(pairs), link)

	// 4) Notify, then record. The record is only written after a
	// successful send so a failed send stays retryable next run.
	if !r.notifier.Send(article.Title, pairs, label, link) {
		report.Outcome = OutcomeNotifyFailed
		return report
	}

	if err := r.store.MarkProcessed(link, label); err != nil {
		// The notification already went out; losing the record only
		// risks a duplicate on the next run.
		warnf("recording processed article failed: %v", err)
	}

	if r.archiver != nil {
		if err := r.archiver.ArchiveRun(ctx, article, pairs, label); err != nil {
			warnf("notion archive failed: %v", err)
		}
	}

	report.Outcome = OutcomeNotified
	return report
}
