package schedule

import (
	"fmt"
	"time"

	"github.com/f1board/f1board/pkg/model"
)

var (
	conventionalSessions = [model.SessionCount]string{
		"PRACTICE 1", "PRACTICE 2", "PRACTICE 3", "QUALIFYING", "RACE",
	}
	sprintSessions = [model.SessionCount]string{
		"PRACTICE 1", "SPRINT QUALIFYING", "SPRINT", "QUALIFYING", "RACE",
	}
)

// SessionNames returns the five session titles for an event format.
func SessionNames(eventFormat string) [model.SessionCount]string {
	if eventFormat == model.EventFormatSprintQualifying {
		return sprintSessions
	}
	return conventionalSessions
}

// SessionLabel returns the race's own label of session slot n (1-based),
// or "SessionN" when the race does not carry one.
func SessionLabel(race *model.Race, n int) string {
	labels := race.SessionLabels()
	if n >= 1 && n <= model.SessionCount && labels[n-1] != "" {
		return labels[n-1]
	}
	return fmt.Sprintf("Session%d", n)
}

// IsPast reports whether the race event date lies strictly before now,
// using a formatter in the host zone.
func IsPast(race *model.Race, now time.Time) bool {
	return defaultFormatter.IsPast(race, now)
}

// IsPast reports whether the race event date lies strictly before now.
// Event dates without offset that only parse leniently are read in the
// formatter's local zone. Races without a parseable event date are never
// past.
func (f *Formatter) IsPast(race *model.Race, now time.Time) bool {
	if race == nil || race.EventDate == "" {
		return false
	}
	t, ok := f.Instant(race.EventDate)
	if !ok {
		return false
	}
	return t.Before(now)
}
