package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/f1board/f1board/pkg/display"
	"github.com/f1board/f1board/pkg/lookup"
	"github.com/f1board/f1board/pkg/model"
)

// Mode selects the zone session times are shown in.
type Mode string

const (
	ModeMy    Mode = "my"    // viewer's local zone
	ModeTrack Mode = "track" // resolved track zone
	ModeUTC   Mode = "utc"
)

var (
	ErrUnknownMode = errors.New("unknown mode")
	ErrUnknownZone = errors.New("unknown timezone")
)

func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case "":
		return ModeMy, nil
	case ModeMy, ModeTrack, ModeUTC:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

type SessionView struct {
	Slot      int    `json:"slot"`
	Name      string `json:"name"`
	Label     string `json:"label"`
	Raw       string `json:"raw,omitempty"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Completed bool   `json:"completed"`
}

// View is the schedule of one race weekend as shown to a viewer.
type View struct {
	RaceID       int           `json:"raceId"`
	Round        string        `json:"round"`
	Title        string        `json:"title"`
	EventName    string        `json:"eventName"`
	LocalName    string        `json:"localName"`
	Country      string        `json:"country"`
	Flag         string        `json:"flag"`
	FlagPath     string        `json:"flagPath,omitempty"`
	FlagCode     string        `json:"flagCode,omitempty"`
	Mode         Mode          `json:"mode"`
	Zone         string        `json:"zone"`
	TrackZone    string        `json:"trackZone"`
	Weekend      string        `json:"weekend"`
	TrackWeekend string        `json:"trackWeekend"`
	Past         bool          `json:"past"`
	Sessions     []SessionView `json:"sessions"`

	Circuit display.CircuitCard `json:"circuit"`
}

type BuilderOption func(*Builder)

func WithResolver(r *Resolver) BuilderOption {
	return func(b *Builder) {
		b.resolver = r
	}
}

func WithFormatter(f *Formatter) BuilderOption {
	return func(b *Builder) {
		b.formatter = f
	}
}

func WithTables(t *lookup.Tables) BuilderOption {
	return func(b *Builder) {
		b.tables = t
	}
}

func WithClock(now func() time.Time) BuilderOption {
	return func(b *Builder) {
		b.now = now
	}
}

// Builder assembles schedule views from race records.
type Builder struct {
	resolver  *Resolver
	formatter *Formatter
	tables    *lookup.Tables
	now       func() time.Time
}

func NewBuilder(opts ...BuilderOption) *Builder {
	ret := &Builder{now: time.Now}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.tables == nil {
		ret.tables = lookup.Default()
	}
	if ret.resolver == nil {
		ret.resolver = NewResolver(WithTable(ret.tables.Timezones))
	}
	if ret.formatter == nil {
		ret.formatter = NewFormatter()
	}
	return ret
}

func (b *Builder) Resolver() *Resolver {
	return b.resolver
}

func (b *Builder) Formatter() *Formatter {
	return b.formatter
}

func (b *Builder) Tables() *lookup.Tables {
	return b.tables
}

// Build renders race in the zone selected by mode. A non-empty zone
// overrides mode and must name a valid IANA zone.
func (b *Builder) Build(ctx context.Context, race *model.Race, mode Mode, zone string) (*View, error) {
	if race == nil {
		return nil, errors.New("no race")
	}
	trackZone := b.resolver.Resolve(ctx, race)
	loc, name, err := b.selectZone(ctx, mode, zone, trackZone)
	if err != nil {
		return nil, err
	}
	trackLoc, err := b.formatter.Zone(ctx, trackZone)
	if err != nil {
		trackLoc = time.UTC
	}

	past := b.formatter.IsPast(race, b.now())
	names := SessionNames(race.EventFormat)
	dates := race.SessionDates()
	sessions := lo.Map(dates[:], func(raw string, i int) SessionView {
		l := b.formatter.ConvertIn(raw, loc)
		return SessionView{
			Slot:      i + 1,
			Name:      names[i],
			Label:     SessionLabel(race, i+1),
			Raw:       raw,
			Date:      l.Date,
			Time:      l.Time,
			Completed: past,
		}
	})

	country := display.CountryName(race, b.tables)
	eventName := race.EventName
	if eventName == "" {
		eventName = race.Title()
	}
	flagPath, _ := display.FlagPath(country)
	flagCode, _ := display.CountryFlagCode(country)

	return &View{
		RaceID:       race.ID,
		Round:        display.RoundLabel(race),
		Title:        race.Title(),
		EventName:    eventName,
		LocalName:    display.RaceName(eventName),
		Country:      country,
		Flag:         display.FlagEmoji(country),
		FlagPath:     flagPath,
		FlagCode:     flagCode,
		Mode:         mode,
		Zone:         name,
		TrackZone:    trackZone,
		Weekend:      b.formatter.WeekendRange(dates[:]...),
		TrackWeekend: b.formatter.WeekendRangeIn(trackLoc, dates[:]...),
		Past:         past,
		Sessions:     sessions,
		Circuit:      display.NewCircuitCard(race),
	}, nil
}

func (b *Builder) selectZone(
	ctx context.Context, mode Mode, zone, trackZone string,
) (loc *time.Location, name string, err error) {
	if zone != "" {
		loc, err = b.formatter.Zone(ctx, zone)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %q", ErrUnknownZone, zone)
		}
		return loc, zone, nil
	}
	switch mode {
	case ModeTrack:
		loc, err = b.formatter.Zone(ctx, trackZone)
		if err != nil {
			return time.UTC, DefaultZone, nil
		}
		return loc, trackZone, nil
	case ModeUTC:
		return time.UTC, DefaultZone, nil
	case ModeMy, "":
		return b.formatter.Local(), b.formatter.LocalName(), nil
	}
	return nil, "", fmt.Errorf("%w: %q", ErrUnknownMode, mode)
}
