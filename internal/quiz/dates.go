package quiz

import (
	"fmt"
	"regexp"
	"time"
)

var reDateArg = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ResolveDate normalizes an optional date argument. An empty argument
// means "now". Anything that is not a real YYYY-MM-DD calendar date is
// reported and replaced with "now"; the pipeline always proceeds with
// some date.
func ResolveDate(arg string) time.Time {
	if arg == "" {
		return time.Now()
	}
	if !reDateArg.MatchString(arg) {
		warnf("invalid date argument %q (want YYYY-MM-DD), using today", arg)
		return time.Now()
	}
	t, err := time.ParseInLocation("2006-01-02", arg, time.Local)
	if err != nil {
		warnf("invalid date argument %q: %v, using today", arg, err)
		return time.Now()
	}
	return t
}

// DateLabel renders a date the way article titles carry it: "7월 24일",
// no zero padding, no year. Identical month/day of different years
// render the same; the search listing only ever shows recent articles.
func DateLabel(t time.Time) string {
	return fmt.Sprintf("%d월 %d일", int(t.Month()), t.Day())
}
