package lookup

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// DefaultLocationRounds lists the rounds of the 2025 calendar whose display
// name is the race location instead of the country
// (pre-season testing, Miami, Emilia-Romagna, Las Vegas).
var DefaultLocationRounds = []int{0, 6, 7, 22}

var ErrInvalidZone = errors.New("invalid timezone")

// Tables bundles the configurable lookup data. Values are built once at
// startup and treated as read-only afterwards.
type Tables struct {
	Timezones      *TimezoneTable
	LocationRounds []int
}

// overrides is the yaml layout of a lookup override file.
//
//	timezones:
//	  - key: Lusail
//	    zone: Asia/Qatar
//	locationRounds: [0, 6, 7, 22]
type overrides struct {
	Timezones      []TimezoneEntry `yaml:"timezones"`
	LocationRounds []int           `yaml:"locationRounds"`
}

func Default() *Tables {
	return &Tables{
		Timezones:      DefaultTimezones(),
		LocationRounds: slices.Clone(DefaultLocationRounds),
	}
}

// IsLocationRound reports whether round uses the location as display name.
func (t *Tables) IsLocationRound(round int) bool {
	return lo.Contains(t.LocationRounds, round)
}

// WithLocationRounds returns a copy of t using rounds.
func (t *Tables) WithLocationRounds(rounds []int) *Tables {
	return &Tables{
		Timezones:      t.Timezones,
		LocationRounds: lo.Uniq(rounds),
	}
}

// LoadOverrides merges the yaml document read from r onto the defaults.
// Timezone entries are appended (or replace an existing key in place);
// locationRounds, if present, replaces the default list.
func LoadOverrides(r io.Reader) (*Tables, error) {
	var o overrides
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&o); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode lookup overrides: %w", err)
	}
	for _, e := range o.Timezones {
		if _, err := time.LoadLocation(e.Zone); err != nil || e.Zone == "" {
			return nil, fmt.Errorf("%w %q for key %q", ErrInvalidZone, e.Zone, e.Key)
		}
	}
	ret := Default()
	ret.Timezones = ret.Timezones.Merge(o.Timezones)
	if o.LocationRounds != nil {
		ret.LocationRounds = lo.Uniq(o.LocationRounds)
	}
	return ret, nil
}

// LoadFile reads overrides from path. An empty path yields the defaults.
func LoadFile(path string) (*Tables, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadOverrides(f)
}
