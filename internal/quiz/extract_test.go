package quiz_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"quiz-relay/internal/quiz"
)

// alternatingHTML is the expected article shape: title and answer lines
// as alternating emphasis elements inside the body container.
const alternatingHTML = `<html><body>
<div id="articleBody">
  <p><b>첫 번째 퀴즈는 무엇일까요</b></p>
  <p><b>정답 - 사과</b></p>
  <p><strong>두 번째 퀴즈는 무엇일까요</strong></p>
  <p><strong>정답: 바나나</strong></p>
</div>
</body></html>`

// brSplitHTML holds a title and its answer inside one emphasis element,
// separated by a line-break tag.
const brSplitHTML = `<html><body>
<div id="articleBody">
  <p><strong>오늘의 퀴즈는 무엇일까요<br>정답 - 포도</strong></p>
</div>
</body></html>`

// orphanAnswerHTML starts with an answer marker before any title.
const orphanAnswerHTML = `<html><body>
<div id="articleBody">
  <p><b>정답 - 버려질 값</b></p>
  <p><b>진짜 퀴즈 문제입니다</b></p>
  <p><b>정답 - 수박</b></p>
  <p><b>답이 없는 마지막 문제</b></p>
</div>
</body></html>`

// excludedTitleHTML has only disqualified title candidates before the
// answer line: brand mentions, the section glyph, short fragments.
const excludedTitleHTML = `<html><body>
<div id="articleBody">
  <p><b>bnt뉴스</b></p>
  <p><b>■ 오늘의 퀴즈</b></p>
  <p><b>토스에서 진행하는 퀴즈입니다</b></p>
  <p><b>네</b></p>
  <p><b>정답 - 고아가 된 답</b></p>
</div>
</body></html>`

// doubleMarkerHTML has two answer markers after a single title; only
// the first can pair because the pending title is consumed by it.
const doubleMarkerHTML = `<html><body>
<div id="articleBody">
  <p><b>하나뿐인 퀴즈 문제</b></p>
  <p><b>정답 - 첫번째<br>정답 - 두번째</b></p>
</div>
</body></html>`

// noContainerHTML has no recognized body container; extraction falls
// back to the document body.
const noContainerHTML = `<html><body>
<p><b>컨테이너 없는 퀴즈 문제</b></p>
<p><b>정답 - 멜론</b></p>
</body></html>`

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parsing fixture: %v", err)
	}
	return doc
}

func assertPair(t *testing.T, got quiz.AnswerPair, title, answer string) {
	t.Helper()
	if got.Title != title || got.Answer != answer {
		t.Errorf("pair: expected {%q, %q}, got {%q, %q}", title, answer, got.Title, got.Answer)
	}
}

func TestExtractAnswers_AlternatingPairs(t *testing.T) {
	t.Parallel()

	pairs := quiz.ExtractAnswers(parseDoc(t, alternatingHTML))
	if len(pairs) != 2 {
		t.Fatalf("expected 2 pairs, got %d: %v", len(pairs), pairs)
	}
	assertPair(t, pairs[0], "첫 번째 퀴즈는 무엇일까요", "사과")
	assertPair(t, pairs[1], "두 번째 퀴즈는 무엇일까요", "바나나")
}

func TestExtractAnswers_LineBreakInsideElement(t *testing.T) {
	t.Parallel()

	pairs := quiz.ExtractAnswers(parseDoc(t, brSplitHTML))
	if len(pairs) != 1 {
		t.Fatalf("expected 1 pair, got %d: %v", len(pairs), pairs)
	}
	assertPair(t, pairs[0], "오늘의 퀴즈는 무엇일까요", "포도")
}

func TestExtractAnswers_OrphanAnswerAndDanglingTitle(t *testing.T) {
	t.Parallel()

	pairs := quiz.ExtractAnswers(parseDoc(t, orphanAnswerHTML))
	if len(pairs) != 1 {
		t.Fatalf("expected 1 pair, got %d: %v", len(pairs), pairs)
	}
	// The leading marker had no title and is dropped; the trailing
	// title has no marker and contributes nothing.
	assertPair(t, pairs[0], "진짜 퀴즈 문제입니다", "수박")
}

func TestExtractAnswers_ExclusionLiteralsNeverBecomeTitles(t *testing.T) {
	t.Parallel()

	pairs := quiz.ExtractAnswers(parseDoc(t, excludedTitleHTML))
	if len(pairs) != 0 {
		t.Fatalf("expected no pairs, got %v", pairs)
	}
}

func TestExtractAnswers_SecondMarkerFindsNoTitle(t *testing.T) {
	t.Parallel()

	pairs := quiz.ExtractAnswers(parseDoc(t, doubleMarkerHTML))
	if len(pairs) != 1 {
		t.Fatalf("expected 1 pair, got %d: %v", len(pairs), pairs)
	}
	assertPair(t, pairs[0], "하나뿐인 퀴즈 문제", "첫번째")
}

func TestExtractAnswers_BodyFallback(t *testing.T) {
	t.Parallel()

	pairs := quiz.ExtractAnswers(parseDoc(t, noContainerHTML))
	if len(pairs) != 1 {
		t.Fatalf("expected 1 pair, got %d: %v", len(pairs), pairs)
	}
	assertPair(t, pairs[0], "컨테이너 없는 퀴즈 문제", "멜론")
}

func TestExtractAnswers_EmptyDocument(t *testing.T) {
	t.Parallel()

	pairs := quiz.ExtractAnswers(parseDoc(t, "<html><body></body></html>"))
	if len(pairs) != 0 {
		t.Fatalf("expected no pairs, got %v", pairs)
	}
}
