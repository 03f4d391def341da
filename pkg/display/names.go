package display

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// SplitDriverName splits at the first space: "Andrea Kimi Antonelli"
// becomes ("Andrea", "Kimi Antonelli").
func SplitDriverName(name string) (first, last string) {
	first, last, _ = strings.Cut(name, " ")
	return first, last
}

// DisplayName splits at the last space: "Andrea Kimi Antonelli" becomes
// ("Andrea Kimi", "Antonelli"). Single word names are returned as last name.
func DisplayName(name string) (first, last string) {
	i := strings.LastIndex(name, " ")
	if i < 0 {
		return "", name
	}
	return name[:i], name[i+1:]
}

func FullName(forename, surname string) string {
	return forename + " " + surname
}

// ImageName strips accents and replaces spaces with underscores,
// "Nico Hülkenberg" -> "Nico_Hulkenberg".
func ImageName(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	stripped, _, err := transform.String(t, name)
	if err != nil {
		stripped = name
	}
	return strings.ReplaceAll(stripped, " ", "_")
}
