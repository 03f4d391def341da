//nolint:funlen // ok for tests
package lookup

import (
	"errors"
	"strings"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/google/go-cmp/cmp"
	"gotest.tools/v3/assert"
)

func TestTimezoneTable_Lookup(t *testing.T) {
	tbl := DefaultTimezones()
	tests := []struct {
		name   string
		key    string
		want   string
		wantOk bool
	}{
		{name: "country", key: "Japan", want: "Asia/Tokyo", wantOk: true},
		{name: "city", key: "Imola", want: "Europe/Rome", wantOk: true},
		{name: "non latin", key: "上海", want: "Asia/Shanghai", wantOk: true},
		{name: "case sensitive", key: "japan", wantOk: false},
		{name: "empty", key: "", wantOk: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tbl.Lookup(tt.key)
			assert.Equal(t, ok, tt.wantOk)
			assert.Equal(t, got, tt.want)
		})
	}
}

func TestTimezoneTable_Merge(t *testing.T) {
	base := NewTimezoneTable([]TimezoneEntry{
		{Key: "A", Zone: "UTC"},
		{Key: "B", Zone: "Europe/Rome"},
	})
	merged := base.Merge([]TimezoneEntry{
		{Key: "A", Zone: "Asia/Tokyo"},
		{Key: "C", Zone: "Asia/Qatar"},
		{Key: "", Zone: "Asia/Qatar"},
	})

	want := []TimezoneEntry{
		{Key: "A", Zone: "Asia/Tokyo"},
		{Key: "B", Zone: "Europe/Rome"},
		{Key: "C", Zone: "Asia/Qatar"},
	}
	if diff := cmp.Diff(want, merged.Entries()); diff != "" {
		t.Errorf("Merge() mismatch (-want +got):\n%s", diff)
	}
	// base stays untouched
	zone, _ := base.Lookup("A")
	assert.Equal(t, zone, "UTC")
	assert.Equal(t, base.Len(), 2)
}

func TestTimezoneTable_EntriesIsCopy(t *testing.T) {
	tbl := DefaultTimezones()
	entries := tbl.Entries()
	entries[0].Zone = "Mars/Olympus"
	zone, _ := tbl.Lookup(entries[0].Key)
	assert.Assert(t, zone != "Mars/Olympus")
}

func TestDefaultTimezonesAreLoadable(t *testing.T) {
	for _, e := range DefaultTimezones().Entries() {
		_, err := time.LoadLocation(e.Zone)
		assert.NilError(t, err, "key %s", e.Key)
	}
}

func TestLoadOverrides(t *testing.T) {
	tests := []struct {
		name       string
		doc        string
		wantRounds []int
		wantKey    string
		wantZone   string
		wantErr    error
	}{
		{
			name:       "empty document",
			doc:        "",
			wantRounds: DefaultLocationRounds,
			wantKey:    "Japan",
			wantZone:   "Asia/Tokyo",
		},
		{
			name: "additional zone and rounds",
			doc: `
timezones:
  - key: Lusail
    zone: Asia/Qatar
locationRounds: [0, 5, 5, 21]
`,
			wantRounds: []int{0, 5, 21},
			wantKey:    "Lusail",
			wantZone:   "Asia/Qatar",
		},
		{
			name: "invalid zone",
			doc: `
timezones:
  - key: Nowhere
    zone: Not/AZone
`,
			wantErr: ErrInvalidZone,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadOverrides(strings.NewReader(tt.doc))
			if tt.wantErr != nil {
				assert.Assert(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			assert.NilError(t, err)
			assert.DeepEqual(t, got.LocationRounds, tt.wantRounds)
			zone, ok := got.Timezones.Lookup(tt.wantKey)
			assert.Assert(t, ok)
			assert.Equal(t, zone, tt.wantZone)
		})
	}
}

func TestLoadOverridesUnknownField(t *testing.T) {
	_, err := LoadOverrides(strings.NewReader("zones: []\n"))
	assert.ErrorContains(t, err, "decode lookup overrides")
}

func TestTables_IsLocationRound(t *testing.T) {
	tbl := Default()
	assert.Assert(t, tbl.IsLocationRound(6))
	assert.Assert(t, !tbl.IsLocationRound(5))

	custom := tbl.WithLocationRounds([]int{5})
	assert.Assert(t, custom.IsLocationRound(5))
	assert.Assert(t, tbl.IsLocationRound(6))
}

func TestCountryCodeFor(t *testing.T) {
	tests := []struct {
		country string
		want    string
		wantOk  bool
	}{
		{country: "Japan", want: "JP", wantOk: true},
		{country: "Kingdom", want: "GB", wantOk: true},
		{country: "emirates", want: "AE", wantOk: true},
		{country: "Atlantis", wantOk: false},
		{country: "", wantOk: false},
	}
	for _, tt := range tests {
		t.Run(tt.country, func(t *testing.T) {
			got, ok := CountryCodeFor(tt.country)
			assert.Equal(t, ok, tt.wantOk)
			assert.Equal(t, got, tt.want)
		})
	}
}

func TestTeamLookups(t *testing.T) {
	assert.Equal(t, TeamColor("Ferrari"), "rgb(237, 17, 49)")
	assert.Equal(t, TeamColor(""), DefaultTeamColor)
	assert.Equal(t, TeamColor("brabham"), DefaultTeamColor)
	assert.Equal(t, TeamLogo("RB"), "racing-bulls")
	assert.Equal(t, TeamLogo("Brabham"), "brabham")
	assert.Equal(t, ConstructorCar("lotus"), DefaultConstructorCar)
	assert.Equal(t, DriverNumberTeam("sauber"), "kicksauber")
	assert.Equal(t, DriverNumberTeam("lotus"), "lotus")
	assert.Equal(t, DriverImageNumber("Lando Norris", 1), 4)
	assert.Equal(t, DriverImageNumber("Nobody", 99), 99)
	assert.Assert(t, HasAvatar("Max_Verstappen"))
	assert.Assert(t, !HasAvatar("Max Verstappen"))
}
