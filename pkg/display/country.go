package display

import (
	"strings"

	"github.com/f1board/f1board/pkg/lookup"
	"github.com/f1board/f1board/pkg/model"
)

const (
	UnknownCountry = "Unknown"
	UnknownFlag    = "🏴"
)

// CountryName is the name shown for a race. Rounds listed in the tables'
// location rounds show the race location (e.g. Miami instead of
// United States); all other races use the circuit country, then the race
// country.
func CountryName(race *model.Race, tables *lookup.Tables) string {
	if race == nil {
		return UnknownCountry
	}
	if tables == nil {
		tables = lookup.Default()
	}
	if race.Location != "" && tables.IsLocationRound(race.RoundNumber) {
		return race.Location
	}
	if race.Circuit != nil && race.Circuit.Country != "" {
		return race.Circuit.Country
	}
	if race.Country != "" {
		return race.Country
	}
	return UnknownCountry
}

// CountryCode resolves a country or location name to its alpha-2 code.
func CountryCode(country string) (string, bool) {
	return lookup.CountryCodeFor(country)
}

// FlagEmoji converts the country code of country into regional indicator
// symbols, e.g. "Japan" -> 🇯🇵.
func FlagEmoji(country string) string {
	code, ok := CountryCode(country)
	if !ok || len(code) != 2 {
		return UnknownFlag
	}
	var sb strings.Builder
	for _, c := range strings.ToUpper(code) {
		sb.WriteRune(0x1F1E6 + (c - 'A'))
	}
	return sb.String()
}

// FlagPath returns the path of the local svg flag for a calendar entry.
func FlagPath(country string) (string, bool) {
	code, ok := lookup.CountryCodeFor(country)
	if !ok {
		return "", false
	}
	return "/country_flags/" + strings.ToUpper(code) + ".svg", true
}

// NationalityFlagCode returns the flag code for a driver nationality.
func NationalityFlagCode(nationality string) (string, bool) {
	return lookup.FlagCodeForNationality(nationality)
}

// CountryFlagCode maps a race country to a flag code via its nationality,
// so race flags share the driver flag set.
func CountryFlagCode(country string) (string, bool) {
	nat, ok := lookup.NationalityForCountry(country)
	if !ok {
		return "", false
	}
	return lookup.FlagCodeForNationality(nat)
}

// CountryNationality returns the demonym used for drivers of country.
func CountryNationality(country string) (string, bool) {
	return lookup.NationalityForCountry(country)
}
