// =============================================================================
// extract.go - 正答抽出ヒューリスティック
// =============================================================================
//
// 記事本文から（問題タイトル, 正答）のペアを抽出します。
//
// 記事側のマークアップにはスキーマがなく、問題タイトルと正答は
// どちらも強調タグ（<b> / <strong>）の行として交互に現れるだけです。
// そのため「直近の未消費タイトル」を1つだけ保持し、正答マーカー
// （"정답 -" / "정답:"）を見つけた時点でペアとして確定します。
//
// ベストエフォートの決定的な抽出であり、網羅は保証しません。
// マーカーに後続されないタイトルは出力されず、先行タイトルのない
// 正答は捨てられます。
//
// =============================================================================
package quiz

import (
	"html"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

var answerMarkers = []string{"정답 -", "정답:"}

// titleExclusions disqualify a fragment from becoming a title even
// when it merely mentions one of them mid-sentence.
var titleExclusions = []string{"정답", "토스", "■", "bnt뉴스"}

var (
	reLineBreak = regexp.MustCompile(`(?i)<br\s*/?>`)
	reTag       = regexp.MustCompile(`<[^>]*>`)
)

// ExtractAnswers walks every emphasis-tag element of the article body
// in document order and pairs each recognized answer line with the most
// recently seen title line.
func ExtractAnswers(doc *goquery.Document) []AnswerPair {
	pairs := []AnswerPair{}
	pendingTitle := ""

	contentRoot(doc).Find("b, strong").Each(func(_ int, sel *goquery.Selection) {
		text := normalizeWhitespace(sel.Text())

		if !containsAnswerMarker(text) {
			if isTitleCandidate(text) {
				pendingTitle = text
			}
			return
		}

		// Answer lines can hold several fragments separated by <br>,
		// so work on the inner markup rather than the flattened text.
		inner, err := sel.Html()
		if err != nil {
			return
		}
		for _, frag := range reLineBreak.Split(inner, -1) {
			clean := strings.TrimSpace(html.UnescapeString(reTag.ReplaceAllString(frag, "")))
			if clean == "" {
				continue
			}
			if answer, ok := splitAnswer(clean); ok {
				if pendingTitle != "" && answer != "" {
					pairs = append(pairs, AnswerPair{Title: pendingTitle, Answer: answer})
					pendingTitle = ""
				}
				continue
			}
			if isTitleCandidate(clean) {
				pendingTitle = clean
			}
		}
	})

	return pairs
}

func containsAnswerMarker(s string) bool {
	for _, m := range answerMarkers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

// splitAnswer strips the answer-marker prefix and returns the answer
// text that follows it.
func splitAnswer(s string) (string, bool) {
	for _, m := range answerMarkers {
		if idx := strings.Index(s, m); idx >= 0 {
			return strings.TrimSpace(s[idx+len(m):]), true
		}
	}
	return "", false
}

// isTitleCandidate reports whether a cleaned fragment can become the
// pending title: more than two runes, none of the exclusion literals.
func isTitleCandidate(s string) bool {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) <= 2 {
		return false
	}
	for _, ex := range titleExclusions {
		if strings.Contains(s, ex) {
			return false
		}
	}
	return true
}
