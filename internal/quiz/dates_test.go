package quiz_test

import (
	"testing"
	"time"

	"quiz-relay/internal/quiz"
)

func TestResolveDate_ValidArgument(t *testing.T) {
	t.Parallel()

	got := quiz.ResolveDate("2025-07-24")
	if quiz.DateLabel(got) != "7월 24일" {
		t.Errorf("expected label %q, got %q", "7월 24일", quiz.DateLabel(got))
	}
}

func TestResolveDate_FallsBackToNow(t *testing.T) {
	t.Parallel()

	nowLabel := quiz.DateLabel(time.Now())

	for _, arg := range []string{
		"",           // absent
		"today",      // not a date at all
		"2025/07/24", // wrong separator
		"25-07-24",   // wrong shape
		"2025-13-40", // matches the pattern but not a real date
	} {
		got := quiz.DateLabel(quiz.ResolveDate(arg))
		if got != nowLabel {
			t.Errorf("ResolveDate(%q): expected today's label %q, got %q", arg, nowLabel, got)
		}
	}
}

func TestDateLabel_NoZeroPadding(t *testing.T) {
	t.Parallel()

	d := time.Date(2025, time.January, 5, 0, 0, 0, 0, time.Local)
	if got := quiz.DateLabel(d); got != "1월 5일" {
		t.Errorf("expected %q, got %q", "1월 5일", got)
	}
}
