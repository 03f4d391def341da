package schedule

import (
	"context"
	"strings"

	"github.com/samber/lo"

	"github.com/f1board/f1board/log"
	"github.com/f1board/f1board/pkg/lookup"
	"github.com/f1board/f1board/pkg/model"
)

// DefaultZone is returned when no candidate matches the lookup table.
const DefaultZone = "UTC"

// Unresolved describes a race for which no timezone could be determined.
type Unresolved struct {
	RaceID      int      `json:"raceId"`
	RoundNumber int      `json:"roundNumber"`
	Country     string   `json:"country"`
	Location    string   `json:"location"`
	CircuitName string   `json:"circuitName"`
	EventName   string   `json:"eventName"`
	Candidates  []string `json:"candidates"`
}

// Reporter receives unresolved-timezone diagnostics.
// Implementations must not block the caller for long.
type Reporter interface {
	ReportUnresolved(ctx context.Context, u Unresolved)
}

type ReporterFunc func(ctx context.Context, u Unresolved)

func (f ReporterFunc) ReportUnresolved(ctx context.Context, u Unresolved) {
	f(ctx, u)
}

type ResolverOption func(*Resolver)

func WithTable(t *lookup.TimezoneTable) ResolverOption {
	return func(r *Resolver) {
		r.table = t
	}
}

func WithResolverLogger(l *log.Logger) ResolverOption {
	return func(r *Resolver) {
		r.log = l
	}
}

func WithReporter(rep ...Reporter) ResolverOption {
	return func(r *Resolver) {
		r.reporters = append(r.reporters, rep...)
	}
}

// Resolver maps a race to the IANA timezone of its track.
type Resolver struct {
	table     *lookup.TimezoneTable
	log       *log.Logger
	reporters []Reporter
}

func NewResolver(opts ...ResolverOption) *Resolver {
	ret := &Resolver{
		table: lookup.DefaultTimezones(),
		log:   log.Default().Named("schedule.tz"),
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// Candidates returns the non-empty search candidates of race in priority
// order: location, country, circuit name, official event name.
func Candidates(race *model.Race) []string {
	if race == nil {
		return []string{}
	}
	return lo.Compact([]string{
		race.Location,
		race.Country,
		race.CircuitName(),
		race.OfficialEventName,
	})
}

// Resolve returns the track timezone of race. Candidates are first matched
// exactly against the table; if none matches, a second pass accepts the
// first table entry whose key is a case-insensitive substring of a candidate
// or vice versa. Without any match DefaultZone is returned and the race is
// reported as unresolved.
func (r *Resolver) Resolve(ctx context.Context, race *model.Race) string {
	zone, _ := r.resolve(ctx, race)
	return zone
}

// ResolveAll resolves every race and returns the unresolved ones in input
// order.
func (r *Resolver) ResolveAll(ctx context.Context, races []*model.Race) []Unresolved {
	ret := []Unresolved{}
	for _, race := range races {
		if _, u := r.resolve(ctx, race); u != nil {
			ret = append(ret, *u)
		}
	}
	return ret
}

func (r *Resolver) resolve(ctx context.Context, race *model.Race) (string, *Unresolved) {
	candidates := Candidates(race)
	if zone, ok := r.Match(candidates); ok {
		return zone, nil
	}

	u := Unresolved{Candidates: candidates}
	if race != nil {
		u.RaceID = race.ID
		u.RoundNumber = race.RoundNumber
		u.Country = race.Country
		u.Location = race.Location
		u.CircuitName = race.CircuitName()
		u.EventName = race.OfficialEventName
	}
	r.log.Warn("could not determine track timezone, using UTC",
		log.Int("raceId", u.RaceID),
		log.String("country", u.Country),
		log.String("location", u.Location),
		log.String("circuitName", u.CircuitName),
		log.String("eventName", u.EventName),
		log.Strings("candidates", u.Candidates))
	for _, rep := range r.reporters {
		rep.ReportUnresolved(ctx, u)
	}
	return DefaultZone, &u
}

// Match runs both matching passes over candidates.
func (r *Resolver) Match(candidates []string) (string, bool) {
	for _, c := range candidates {
		if c == "" {
			continue
		}
		if zone, ok := r.table.Lookup(c); ok {
			return zone, true
		}
	}
	entries := r.table.Entries()
	for _, c := range candidates {
		if c == "" {
			continue
		}
		lc := strings.ToLower(c)
		for _, e := range entries {
			lk := strings.ToLower(e.Key)
			if strings.Contains(lc, lk) || strings.Contains(lk, lc) {
				return e.Zone, true
			}
		}
	}
	return "", false
}

// Table returns the lookup table used by r.
func (r *Resolver) Table() *lookup.TimezoneTable {
	return r.table
}
