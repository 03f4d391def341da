package calendar

import (
	"fmt"
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/f1board/f1board/log"
	"github.com/f1board/f1board/pkg/display"
	"github.com/f1board/f1board/pkg/lookup"
	"github.com/f1board/f1board/pkg/model"
	"github.com/f1board/f1board/pkg/schedule"
)

const (
	ProductID       = "-//f1board//race schedule//EN"
	RaceDuration    = 2 * time.Hour
	SessionDuration = time.Hour
	raceSlot        = model.SessionCount
)

// uids are name based so that re-exports update instead of duplicate
// calendar entries.
var uidNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://f1board/calendar"))

type Option func(*Exporter)

func WithTables(t *lookup.Tables) Option {
	return func(e *Exporter) {
		e.tables = t
	}
}

func WithClock(now func() time.Time) Option {
	return func(e *Exporter) {
		e.now = now
	}
}

func WithName(name string) Option {
	return func(e *Exporter) {
		e.name = name
	}
}

func WithLogger(l *log.Logger) Option {
	return func(e *Exporter) {
		e.log = l
	}
}

// Exporter renders race weekends as iCalendar documents.
type Exporter struct {
	tables *lookup.Tables
	now    func() time.Time
	name   string
	log    *log.Logger
}

func NewExporter(opts ...Option) *Exporter {
	ret := &Exporter{
		tables: lookup.Default(),
		now:    time.Now,
		log:    log.Default().Named("calendar"),
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// Build creates one VEVENT per session with a parseable timestamp.
// Sessions without a usable timestamp are skipped.
func (e *Exporter) Build(races ...*model.Race) *ics.Calendar {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(ProductID)
	switch {
	case e.name != "":
		cal.SetXWRCalName(e.name)
	case len(races) == 1 && races[0] != nil:
		cal.SetXWRCalName(races[0].Title())
	}
	stamp := e.now().UTC()
	for _, race := range races {
		if race == nil {
			continue
		}
		e.addRace(cal, race, stamp)
	}
	return cal
}

func (e *Exporter) addRace(cal *ics.Calendar, race *model.Race, stamp time.Time) {
	names := schedule.SessionNames(race.EventFormat)
	location := Location(race, e.tables)
	for i, raw := range race.SessionDates() {
		slot := i + 1
		if raw == "" {
			continue
		}
		start, err := schedule.ParseUTC(raw)
		if err != nil {
			e.log.Debug("skipping session",
				log.Int("raceId", race.ID),
				log.Int("slot", slot),
				log.String("input", raw),
				log.ErrorField(err))
			continue
		}
		ev := cal.AddEvent(UID(race, slot))
		ev.SetDtStampTime(stamp)
		ev.SetStartAt(start)
		ev.SetEndAt(start.Add(Duration(slot)))
		ev.SetSummary(Summary(race, names[i]))
		if location != "" {
			ev.SetLocation(location)
		}
		ev.SetDescription(fmt.Sprintf("%s - %s", display.RoundLabel(race), race.Title()))
	}
}

// Write serializes the calendar of races to w.
func (e *Exporter) Write(w io.Writer, races ...*model.Race) error {
	if _, err := io.WriteString(w, e.Build(races...).Serialize()); err != nil {
		return fmt.Errorf("write calendar: %w", err)
	}
	return nil
}

// Duration is the assumed length of a session slot.
func Duration(slot int) time.Duration {
	if slot == raceSlot {
		return RaceDuration
	}
	return SessionDuration
}

// Summary is "<event name> - <session name>".
func Summary(race *model.Race, session string) string {
	name := race.EventName
	if name == "" {
		name = race.Title()
	}
	return name + " - " + session
}

// Location joins circuit name and display country.
func Location(race *model.Race, tables *lookup.Tables) string {
	parts := []string{}
	if c := race.CircuitName(); c != "" {
		parts = append(parts, c)
	}
	if country := display.CountryName(race, tables); country != display.UnknownCountry {
		parts = append(parts, country)
	}
	return strings.Join(parts, ", ")
}

// UID is stable for a (race, session slot) pair.
func UID(race *model.Race, slot int) string {
	key := fmt.Sprintf("race/%d/%d/%s/session/%d",
		race.ID, race.RoundNumber, race.Title(), slot)
	return uuid.NewSHA1(uidNamespace, []byte(key)).String() + "@f1board"
}
