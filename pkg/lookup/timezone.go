package lookup

// TimezoneEntry maps a location string (country, city or circuit name)
// to an IANA timezone name.
type TimezoneEntry struct {
	Key  string `json:"key" yaml:"key"`
	Zone string `json:"zone" yaml:"zone"`
}

// TimezoneTable is an ordered, read-only location to timezone mapping.
// Entry order is significant: substring matching returns the first hit.
type TimezoneTable struct {
	entries []TimezoneEntry
	index   map[string]int
}

// NewTimezoneTable builds a table from entries. A repeated key replaces the
// zone of the earlier entry but keeps its position.
func NewTimezoneTable(entries []TimezoneEntry) *TimezoneTable {
	t := &TimezoneTable{
		entries: make([]TimezoneEntry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	t.add(entries)
	return t
}

func (t *TimezoneTable) add(entries []TimezoneEntry) {
	for _, e := range entries {
		if e.Key == "" || e.Zone == "" {
			continue
		}
		if i, ok := t.index[e.Key]; ok {
			t.entries[i].Zone = e.Zone
			continue
		}
		t.index[e.Key] = len(t.entries)
		t.entries = append(t.entries, e)
	}
}

// Merge returns a new table with extra applied on top of t.
func (t *TimezoneTable) Merge(extra []TimezoneEntry) *TimezoneTable {
	ret := NewTimezoneTable(t.entries)
	ret.add(extra)
	return ret
}

// Lookup performs an exact, case-sensitive key match.
func (t *TimezoneTable) Lookup(key string) (string, bool) {
	i, ok := t.index[key]
	if !ok {
		return "", false
	}
	return t.entries[i].Zone, true
}

// Entries returns a copy of the entries in table order.
func (t *TimezoneTable) Entries() []TimezoneEntry {
	ret := make([]TimezoneEntry, len(t.entries))
	copy(ret, t.entries)
	return ret
}

func (t *TimezoneTable) Len() int {
	return len(t.entries)
}

// Countries, cities and circuit names deliberately overlap.
var defaultTimezoneEntries = []TimezoneEntry{
	{"Bahrain", "Asia/Bahrain"},
	{"Saudi Arabia", "Asia/Riyadh"},
	{"Jeddah", "Asia/Riyadh"},
	{"Australia", "Australia/Melbourne"},
	{"Melbourne", "Australia/Melbourne"},
	{"Japan", "Asia/Tokyo"},
	{"Suzuka", "Asia/Tokyo"},
	{"China", "Asia/Shanghai"},
	{"Shanghai", "Asia/Shanghai"},
	{"Chinese Grand Prix", "Asia/Shanghai"},
	{"上海", "Asia/Shanghai"},
	{"Miami", "America/New_York"},
	{"United States", "America/New_York"},
	{"Emilia-Romagna", "Europe/Rome"},
	{"Imola", "Europe/Rome"},
	{"Italy", "Europe/Rome"},
	{"Monaco", "Europe/Monaco"},
	{"Monte-Carlo", "Europe/Monaco"},
	{"Canada", "America/Toronto"},
	{"Montreal", "America/Toronto"},
	{"Spain", "Europe/Madrid"},
	{"Barcelona", "Europe/Madrid"},
	{"Austria", "Europe/Vienna"},
	{"Spielberg", "Europe/Vienna"},
	{"United Kingdom", "Europe/London"},
	{"Great Britain", "Europe/London"},
	{"Silverstone", "Europe/London"},
	{"Hungary", "Europe/Budapest"},
	{"Budapest", "Europe/Budapest"},
	{"Belgium", "Europe/Brussels"},
	{"Spa", "Europe/Brussels"},
	{"Spa-Francorchamps", "Europe/Brussels"},
	{"Netherlands", "Europe/Amsterdam"},
	{"Zandvoort", "Europe/Amsterdam"},
	{"Azerbaijan", "Asia/Baku"},
	{"Baku", "Asia/Baku"},
	{"Singapore", "Asia/Singapore"},
	{"Mexico", "America/Mexico_City"},
	{"Mexico City", "America/Mexico_City"},
	{"Brazil", "America/Sao_Paulo"},
	{"São Paulo", "America/Sao_Paulo"},
	{"Interlagos", "America/Sao_Paulo"},
	{"Las Vegas", "America/Los_Angeles"},
	{"Nevada", "America/Los_Angeles"},
	{"Qatar", "Asia/Qatar"},
	{"Losail", "Asia/Qatar"},
	{"Abu Dhabi", "Asia/Dubai"},
	{"UAE", "Asia/Dubai"},
	{"Yas Marina", "Asia/Dubai"},
	// historic venues
	{"Turkey", "Europe/Istanbul"},
	{"Istanbul", "Europe/Istanbul"},
	{"Russia", "Europe/Moscow"},
	{"Sochi", "Europe/Moscow"},
	{"Portugal", "Europe/Lisbon"},
	{"Portimao", "Europe/Lisbon"},
	{"South Africa", "Africa/Johannesburg"},
}

var defaultTimezones = NewTimezoneTable(defaultTimezoneEntries)

// DefaultTimezones returns the built-in table.
func DefaultTimezones() *TimezoneTable {
	return defaultTimezones
}
