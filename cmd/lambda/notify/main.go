// =============================================================================
// Lambda: notify-quiz-answers
// =============================================================================
//
// スケジュール実行で当日の행운퀴즈正答記事を処理するLambda関数。
// CLIと同じパイプラインを実行し、結果をResponseで返します。
//
// 環境変数:
//   - DISCORD_WEBHOOK_URL: 通知先Webhook (必須に近いが、未設定でも落ちない)
//   - QUIZ_STORE_PATH:     処理済みストアのパス (例: /tmp またはEFS上)
//   - NOTION_TOKEN:        Notionアーカイブ用トークン (任意)
//   - NOTION_DATABASE_ID:  NotionデータベースID (任意)
//
// =============================================================================
package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/lambda"

	"quiz-relay/internal/quiz"
)

// Event allows an optional explicit date, e.g. {"date": "2025-07-24"}.
type Event struct {
	Date string `json:"date"`
}

// Response はLambdaレスポンス
type Response struct {
	StatusCode int    `json:"statusCode"`
	Outcome    string `json:"outcome"`
	ArticleURL string `json:"articleUrl,omitempty"`
	Pairs      int    `json:"pairs"`
}

// Handler はLambdaのメインハンドラー
func Handler(ctx context.Context, event Event) (Response, error) {
	log.Println("Starting notify-quiz-answers Lambda...")

	cfg := quiz.DefaultConfig()
	runner := quiz.NewRunner(cfg)
	report := runner.Run(ctx, event.Date)

	log.Printf("Run finished: outcome=%s article=%s pairs=%d reason=%s",
		report.Outcome, report.ArticleURL, report.Pairs, report.Reason)

	// Every outcome is a normal completion; failures are already logged
	// and will simply be retried by the next scheduled invocation.
	return Response{
		StatusCode: 200,
		Outcome:    string(report.Outcome),
		ArticleURL: report.ArticleURL,
		Pairs:      report.Pairs,
	}, nil
}

func main() {
	lambda.Start(Handler)
}
