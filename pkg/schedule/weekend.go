package schedule

import (
	"fmt"
	"time"

	"github.com/samber/lo"
)

const rangeSep = " – "

// WeekendRange formats the span of the given session timestamps in UTC.
func (f *Formatter) WeekendRange(dates ...string) string {
	return f.WeekendRangeIn(time.UTC, dates...)
}

// WeekendRangeIn formats the inclusive span from the earliest to the latest
// parseable session timestamp, evaluated in loc:
//
//	no valid timestamp      "-"
//	one valid timestamp     "14 Mar"
//	same month              "14 – 16 Mar"
//	same day                "14 – 14 Mar"
//	same year               "28 Feb – 1 Mar"
//	different years         "30 Dec 2025 – 2 Jan 2026"
func (f *Formatter) WeekendRangeIn(loc *time.Location, dates ...string) string {
	if loc == nil {
		loc = time.UTC
	}
	instants := lo.FilterMap(dates, func(raw string, _ int) (time.Time, bool) {
		if raw == "" {
			return time.Time{}, false
		}
		t, ok := f.Instant(raw)
		return t.In(loc), ok
	})
	switch len(instants) {
	case 0:
		return Placeholder
	case 1:
		return instants[0].Format("2 Jan")
	}
	first := lo.MinBy(instants, func(a, b time.Time) bool { return a.Before(b) })
	last := lo.MaxBy(instants, func(a, b time.Time) bool { return a.After(b) })
	return formatRange(first, last)
}

func formatRange(first, last time.Time) string {
	fy, fm, fd := first.Date()
	ly, lm, ld := last.Date()
	switch {
	case fy == ly && fm == lm:
		return fmt.Sprintf("%d%s%d %s", fd, rangeSep, ld, last.Format("Jan"))
	case fy == ly:
		return first.Format("2 Jan") + rangeSep + last.Format("2 Jan")
	default:
		return first.Format("2 Jan 2006") + rangeSep + last.Format("2 Jan 2006")
	}
}

// WeekendRange formats dates with a default formatter.
func WeekendRange(dates ...string) string {
	return defaultFormatter.WeekendRange(dates...)
}

var defaultFormatter = NewFormatter()
