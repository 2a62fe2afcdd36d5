// =============================================================================
// quizrelay - 행운퀴즈 正答通知バッチ
// =============================================================================
//
// bnt뉴스の検索ページから当日の「토스 행운퀴즈」正答記事を探し、
// 正答ペアを抽出してDiscord Webhookへ通知するバッチCLIです。
//
// 使い方:
//
//	./quizrelay              # 今日の記事を処理
//	./quizrelay 2025-07-24   # 指定日の記事を処理
//
// 日付引数が不正でも実行は中断せず、今日の日付で続行します。
// どのステップが失敗してもプロセスは正常終了します（stderrに診断出力、
// stdoutには実行レポートJSONのみ）。
//
// =============================================================================
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"quiz-relay/internal/quiz"
)

func main() {
	if err := godotenv.Load(); err != nil {
		warnf(".env file not loaded: %v (using environment variables only)", err)
	}

	cfg := quiz.DefaultConfig()
	flag.StringVar(&cfg.StorePath, "store", cfg.StorePath, "path to the processed-article store")
	flag.StringVar(&cfg.WebhookURL, "webhook", cfg.WebhookURL, "Discord webhook URL (overrides DISCORD_WEBHOOK_URL)")
	flag.Parse()

	// One optional positional argument: the target date (YYYY-MM-DD).
	dateArg := flag.Arg(0)

	runner := quiz.NewRunner(cfg)
	report := runner.Run(context.Background(), dateArg)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(report)
}

func warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "WARN: "+format+"\n", args...)
}
