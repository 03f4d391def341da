package calendar

import (
	"bytes"
	"strings"
	"testing"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f1board/f1board/pkg/model"
)

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func sampleRace() *model.Race {
	return &model.Race{
		ID:           1125,
		RoundNumber:  3,
		Country:      "Japan",
		Location:     "Suzuka",
		EventName:    "Japanese Grand Prix",
		EventFormat:  "conventional",
		Circuit:      &model.Circuit{CircuitName: "Suzuka International Circuit", Country: "Japan"},
		Session1Date: "2025-04-04 02:30:00",
		Session2Date: "2025-04-04 06:00:00",
		Session3Date: "tbc",
		Session4Date: "",
		Session5Date: "2025-04-06 05:00:00",
	}
}

func parse(t *testing.T, e *Exporter, races ...*model.Race) *ics.Calendar {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, e.Write(&buf, races...))
	cal, err := ics.ParseCalendar(strings.NewReader(buf.String()))
	require.NoError(t, err)
	return cal
}

func TestExporter_Write(t *testing.T) {
	e := NewExporter(WithClock(func() time.Time { return fixedNow }))
	cal := parse(t, e, sampleRace())

	events := cal.Events()
	require.Len(t, events, 3)

	first := events[0]
	assert.Equal(t, "Japanese Grand Prix - PRACTICE 1",
		first.GetProperty(ics.ComponentPropertySummary).Value)
	assert.Contains(t, first.GetProperty(ics.ComponentPropertyLocation).Value,
		"Suzuka International Circuit")
	start, err := first.GetStartAt()
	require.NoError(t, err)
	assert.True(t, start.Equal(time.Date(2025, 4, 4, 2, 30, 0, 0, time.UTC)))
	end, err := first.GetEndAt()
	require.NoError(t, err)
	assert.Equal(t, SessionDuration, end.Sub(start))

	race := events[2]
	assert.Equal(t, "Japanese Grand Prix - RACE",
		race.GetProperty(ics.ComponentPropertySummary).Value)
	start, err = race.GetStartAt()
	require.NoError(t, err)
	end, err = race.GetEndAt()
	require.NoError(t, err)
	assert.Equal(t, RaceDuration, end.Sub(start))
}

func TestExporter_StableUIDs(t *testing.T) {
	e := NewExporter(WithClock(func() time.Time { return fixedNow }))
	a := parse(t, e, sampleRace()).Events()
	b := parse(t, e, sampleRace()).Events()
	require.Len(t, b, len(a))
	seen := map[string]bool{}
	for i := range a {
		uid := a[i].GetProperty(ics.ComponentPropertyUniqueId).Value
		assert.Equal(t, uid, b[i].GetProperty(ics.ComponentPropertyUniqueId).Value)
		assert.False(t, seen[uid])
		seen[uid] = true
	}
	assert.NotEqual(t, UID(sampleRace(), 1), UID(&model.Race{ID: 1126, RoundNumber: 4}, 1))
}

func TestExporter_Season(t *testing.T) {
	sprint := &model.Race{
		ID: 1126, RoundNumber: 6, Country: "United States", Location: "Miami",
		EventName: "Miami Grand Prix", EventFormat: model.EventFormatSprintQualifying,
		Session2Date: "2025-05-02T20:30:00Z",
		Session3Date: "2025-05-03T16:00:00Z",
	}
	e := NewExporter(WithName("F1 2025"), WithClock(func() time.Time { return fixedNow }))
	cal := parse(t, e, sampleRace(), nil, sprint)

	events := cal.Events()
	require.Len(t, events, 5)
	assert.Equal(t, "Miami Grand Prix - SPRINT QUALIFYING",
		events[3].GetProperty(ics.ComponentPropertySummary).Value)
	assert.Equal(t, "Miami", events[3].GetProperty(ics.ComponentPropertyLocation).Value)
}

func TestExporter_Empty(t *testing.T) {
	e := NewExporter()
	cal := parse(t, e, &model.Race{EventName: "Nowhere"})
	assert.Empty(t, cal.Events())
}

func TestLocation(t *testing.T) {
	assert.Equal(t, "Suzuka International Circuit, Japan", Location(sampleRace(), nil))
	assert.Equal(t, "", Location(&model.Race{RoundNumber: 2}, nil))
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "Official - RACE", Summary(&model.Race{OfficialEventName: "Official"}, "RACE"))
	assert.Equal(t, RaceDuration, Duration(5))
	assert.Equal(t, SessionDuration, Duration(4))
}
