package schedule

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	_ "time/tzdata" // zone lookups must not depend on the host zoneinfo

	"github.com/f1board/f1board/log"
	"github.com/f1board/f1board/pkg/utils/cache"
	"github.com/f1board/f1board/pkg/utils/cache/loadercache"
)

// Placeholder is rendered for missing or unusable data.
const Placeholder = "-"

// DateStyle is the time layout of a short month/day label.
type DateStyle string

const (
	MonthDay DateStyle = "Jan 2" // Mar 14
	DayMonth DateStyle = "2 Jan" // 14 Mar
)

const timeLayout = "15:04"

// ParseDateStyle accepts "month-day" or "day-month".
func ParseDateStyle(s string) (DateStyle, error) {
	switch s {
	case "", "month-day":
		return MonthDay, nil
	case "day-month":
		return DayMonth, nil
	}
	return "", fmt.Errorf("unknown date style %q", s)
}

// Labels is a formatted (date, time) pair.
type Labels struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

var PlaceholderLabels = Labels{Date: Placeholder, Time: Placeholder}

// FormatInstant renders t in loc as date and 24h HH:MM labels.
func FormatInstant(t time.Time, loc *time.Location, style DateStyle) Labels {
	lt := t.In(loc)
	return Labels{
		Date: lt.Format(string(style)),
		Time: lt.Format(timeLayout),
	}
}

type FormatterOption func(*Formatter)

// WithLocal sets the zone used by the lenient fallback.
func WithLocal(loc *time.Location) FormatterOption {
	return func(f *Formatter) {
		f.local = loc
	}
}

func WithDateStyle(style DateStyle) FormatterOption {
	return func(f *Formatter) {
		f.style = style
	}
}

func WithFormatterLogger(l *log.Logger) FormatterOption {
	return func(f *Formatter) {
		f.log = l
	}
}

// Formatter turns raw session timestamps into display labels.
// It never fails: every error path degrades to Placeholder.
type Formatter struct {
	local *time.Location
	style DateStyle
	zones cache.Cache[string, time.Location]
	log   *log.Logger
}

func NewFormatter(opts ...FormatterOption) *Formatter {
	ret := &Formatter{
		local: time.Local,
		style: MonthDay,
		log:   log.Default().Named("schedule.format"),
	}
	for _, opt := range opts {
		opt(ret)
	}
	ret.zones = loadercache.New[string, time.Location](
		loadercache.WithExpiration[string, time.Location](0),
		loadercache.WithLoader[string, time.Location](time.LoadLocation),
		loadercache.WithLogger[string, time.Location](ret.log.Named("zones")),
	)
	return ret
}

// Zone loads the named IANA zone.
func (f *Formatter) Zone(ctx context.Context, name string) (*time.Location, error) {
	if name == "" {
		return nil, fmt.Errorf("empty zone name")
	}
	return f.zones.Get(ctx, name)
}

func (f *Formatter) Style() DateStyle {
	return f.style
}

func (f *Formatter) Local() *time.Location {
	return f.local
}

// zoneinfo link of the host zone, consulted when TZ is unset
var localtimeFile = "/etc/localtime"

// LocalName returns the IANA name of the local zone. time.Local reports
// "Local", its name is then taken from TZ or the host zoneinfo link.
func (f *Formatter) LocalName() string {
	name := f.local.String()
	if name != "Local" {
		return name
	}
	if tz, ok := os.LookupEnv("TZ"); ok {
		tz = strings.TrimPrefix(tz, ":")
		if tz == "" {
			return DefaultZone
		}
		return f.zoneName(tz, name)
	}
	if target, err := filepath.EvalSymlinks(localtimeFile); err == nil {
		return f.zoneName(target, name)
	}
	return name
}

// zoneName maps a zone name or zoneinfo file path to a loadable zone name.
func (f *Formatter) zoneName(s, fallback string) string {
	if _, zone, ok := strings.Cut(s, "zoneinfo/"); ok {
		s = zone
	}
	if _, err := f.zones.Get(context.Background(), s); err != nil {
		return fallback
	}
	return s
}

// Convert renders the UTC timestamp raw in zone. Empty input yields the
// placeholder pair. If raw does not parse after normalization or zone is
// unknown, raw is parsed leniently and shown in the local zone.
func (f *Formatter) Convert(ctx context.Context, raw, zone string) Labels {
	if raw == "" {
		return PlaceholderLabels
	}
	loc, err := f.Zone(ctx, zone)
	if err != nil {
		f.log.Debug("unknown zone, falling back to local",
			log.String("zone", zone), log.ErrorField(err))
		return f.lenient(raw, err)
	}
	return f.ConvertIn(raw, loc)
}

// ConvertIn is Convert with an already loaded location.
func (f *Formatter) ConvertIn(raw string, loc *time.Location) Labels {
	if raw == "" {
		return PlaceholderLabels
	}
	if loc == nil {
		loc = f.local
	}
	t, err := ParseUTC(raw)
	if err != nil {
		return f.lenient(raw, err)
	}
	return FormatInstant(t, loc, f.style)
}

func (f *Formatter) lenient(raw string, cause error) Labels {
	f.log.Debug("timezone conversion failed, falling back",
		log.String("input", raw), log.ErrorField(cause))
	lt, err := ParseLenient(raw, f.local)
	if err != nil {
		return PlaceholderLabels
	}
	return FormatInstant(lt, f.local, f.style)
}

// Instant parses raw with the same fallback chain as Convert.
func (f *Formatter) Instant(raw string) (time.Time, bool) {
	if t, err := ParseUTC(raw); err == nil {
		return t, true
	}
	if t, err := ParseLenient(raw, f.local); err == nil {
		return t, true
	}
	return time.Time{}, false
}
