package lookup

import (
	"strings"
)

// CountryCode maps a country or location name to an ISO 3166-1 alpha-2 code.
type CountryCode struct {
	Name string `json:"name" yaml:"name"`
	Code string `json:"code" yaml:"code"`
}

// order matters for the fuzzy lookup in CountryCodeFor
var countryCodes = []CountryCode{
	{"Australia", "AU"},
	{"Austria", "AT"},
	{"Azerbaijan", "AZ"},
	{"Bahrain", "BH"},
	{"Belgium", "BE"},
	{"Brazil", "BR"},
	{"Canada", "CA"},
	{"China", "CN"},
	{"France", "FR"},
	{"Germany", "DE"},
	{"Great Britain", "GB"},
	{"Hungary", "HU"},
	{"Italy", "IT"},
	{"Japan", "JP"},
	{"Mexico", "MX"},
	{"Monaco", "MC"},
	{"Netherlands", "NL"},
	{"Portugal", "PT"},
	{"Qatar", "QA"},
	{"Russia", "RU"},
	{"Saudi Arabia", "SA"},
	{"Singapore", "SG"},
	{"South Africa", "ZA"},
	{"Spain", "ES"},
	{"Turkey", "TR"},
	{"UAE", "AE"},
	{"UK", "GB"},
	{"United Arab Emirates", "AE"},
	{"United Kingdom", "GB"},
	{"United States", "US"},
	{"USA", "US"},
	// locations used as display names on special rounds
	{"Abu Dhabi", "AE"},
	{"Austin", "US"},
	{"Barcelona", "ES"},
	{"Emilia-Romagna", "IT"},
	{"Imola", "IT"},
	{"Las Vegas", "US"},
	{"Miami", "US"},
	{"Sakhir", "BH"},
	{"Shanghai", "CN"},
	{"Silverstone", "GB"},
	{"Spa-Francorchamps", "BE"},
	{"Suzuka", "JP"},
}

var countryCodeIndex = func() map[string]string {
	ret := make(map[string]string, len(countryCodes))
	for _, c := range countryCodes {
		ret[c.Name] = c.Code
	}
	return ret
}()

// CountryCodeFor returns the alpha-2 code for country. An exact match wins;
// otherwise the first table name containing the (case-insensitive) input is
// used, e.g. "Kingdom" finds "United Kingdom".
func CountryCodeFor(country string) (string, bool) {
	if country == "" {
		return "", false
	}
	if code, ok := countryCodeIndex[country]; ok {
		return code, true
	}
	lower := strings.ToLower(country)
	for _, c := range countryCodes {
		if strings.Contains(strings.ToLower(c.Name), lower) {
			return c.Code, true
		}
	}
	return "", false
}

// race country field to driver nationality, so flags can be shared
var countryNationalities = map[string]string{
	"USA":                  "American",
	"United States":        "American",
	"Monaco":               "Monegasque",
	"Spain":                "Spanish",
	"UK":                   "British",
	"United Kingdom":       "British",
	"Belgium":              "Belgian",
	"China":                "Chinese",
	"Japan":                "Japanese",
	"Australia":            "Australian",
	"Austria":              "Austrian",
	"Azerbaijan":           "Azerbaijani",
	"Bahrain":              "Bahraini",
	"Brazil":               "Brazilian",
	"Canada":               "Canadian",
	"France":               "French",
	"Germany":              "German",
	"Hungary":              "Hungarian",
	"Italy":                "Italian",
	"Mexico":               "Mexican",
	"Netherlands":          "Dutch",
	"Qatar":                "Qatari",
	"Saudi Arabia":         "Saudi",
	"Singapore":            "Singaporean",
	"United Arab Emirates": "Emirati",

	"Sakhir":            "Bahraini",
	"Imola":             "Italian",
	"Las Vegas":         "American",
	"Miami":             "American",
	"Austin":            "American",
	"Silverstone":       "British",
	"Barcelona":         "Spanish",
	"Spa-Francorchamps": "Belgian",
	"Suzuka":            "Japanese",
	"Shanghai":          "Chinese",
}

var nationalityFlagCodes = map[string]string{
	"American":      "US",
	"Argentine":     "AR",
	"Australian":    "AU",
	"Austrian":      "AT",
	"Azerbaijani":   "AZ",
	"Bahraini":      "BH",
	"Belgian":       "BE",
	"Brazilian":     "BR",
	"British":       "GB",
	"Canadian":      "CA",
	"Chinese":       "CN",
	"Danish":        "DK",
	"Dutch":         "NL",
	"Emirati":       "AE",
	"Finnish":       "FI",
	"French":        "FR",
	"German":        "DE",
	"Hungarian":     "HU",
	"Italian":       "IT",
	"Japanese":      "JP",
	"Mexican":       "MX",
	"Monegasque":    "MC",
	"New Zealander": "NZ",
	"Polish":        "PL",
	"Qatari":        "QA",
	"Russian":       "RU",
	"Saudi":         "SA",
	"Singaporean":   "SG",
	"Spanish":       "ES",
	"Swedish":       "SE",
	"Swiss":         "CH",
	"Thai":          "TH",
}

func NationalityForCountry(country string) (string, bool) {
	n, ok := countryNationalities[country]
	return n, ok
}

func FlagCodeForNationality(nationality string) (string, bool) {
	c, ok := nationalityFlagCodes[nationality]
	return c, ok
}
