package quiz

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

// Notifier delivers one digest message per run to a Discord webhook.
type Notifier struct {
	webhookURL string
	timeout    time.Duration
}

func NewNotifier(cfg Config) *Notifier {
	return &Notifier{webhookURL: cfg.WebhookURL, timeout: cfg.Timeout}
}

// Send builds and delivers the answer digest. It returns false without
// an error when no webhook is configured or delivery fails; a failed
// notification never aborts the run.
func (n *Notifier) Send(articleTitle string, pairs []AnswerPair, dateLabel, articleURL string) bool {
	msg := buildMessage(articleTitle, pairs, dateLabel, articleURL)

	if n.webhookURL == "" {
		warnf("DISCORD_WEBHOOK_URL is not set, skipping notification")
		fmt.Fprintln(os.Stderr, msg)
		return false
	}

	payload, err := json.Marshal(map[string]string{"content": msg})
	if err != nil {
		warnf("encoding webhook payload: %v", err)
		return false
	}

	client := &http.Client{Timeout: n.timeout}
	resp, err := client.Post(n.webhookURL, "application/json", bytes.NewReader(payload))
	if err != nil {
		warnf("webhook delivery failed: %v", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		warnf("webhook delivery failed: status %s", resp.Status)
		return false
	}
	return true
}

// buildMessage renders the plain-text digest: header with the article
// title, the article URL, the date announcement, then one numbered
// block per pair, and a run-time footer.
func buildMessage(articleTitle string, pairs []AnswerPair, dateLabel, articleURL string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("📰 %s\n", articleTitle))
	sb.WriteString(fmt.Sprintf("🔗 %s\n\n", articleURL))
	sb.WriteString(fmt.Sprintf("✅ %s 행운퀴즈 정답\n\n", dateLabel))

	if len(pairs) == 0 {
		sb.WriteString("❌ 정답을 찾지 못했습니다.\n")
	} else {
		for i, p := range pairs {
			sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, p.Title))
			sb.WriteString(fmt.Sprintf("   👉 %s\n", p.Answer))
		}
	}

	sb.WriteString(fmt.Sprintf("\n⏰ 실행 시간: %s\n", time.Now().Format("2006-01-02 15:04:05")))
	return sb.String()
}
