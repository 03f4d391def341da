package schedule

import (
	"testing"
	"time"

	"gotest.tools/v3/assert"

	"github.com/f1board/f1board/pkg/model"
)

func TestSessionNames(t *testing.T) {
	assert.DeepEqual(t, SessionNames(model.EventFormatSprintQualifying),
		[model.SessionCount]string{"PRACTICE 1", "SPRINT QUALIFYING", "SPRINT", "QUALIFYING", "RACE"})
	assert.DeepEqual(t, SessionNames("conventional"),
		[model.SessionCount]string{"PRACTICE 1", "PRACTICE 2", "PRACTICE 3", "QUALIFYING", "RACE"})
	assert.DeepEqual(t, SessionNames(""), SessionNames("conventional"))
}

func TestSessionLabel(t *testing.T) {
	race := &model.Race{Session1: "Practice 1", Session5: "Race"}
	assert.Equal(t, SessionLabel(race, 1), "Practice 1")
	assert.Equal(t, SessionLabel(race, 5), "Race")
	assert.Equal(t, SessionLabel(race, 2), "Session2")
	assert.Equal(t, SessionLabel(race, 9), "Session9")
}

func TestIsPast(t *testing.T) {
	race := &model.Race{EventDate: "2025-03-16"}
	assert.Assert(t, IsPast(race, time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC)))
	assert.Assert(t, !IsPast(race, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)))
	assert.Assert(t, !IsPast(race, time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC)))
	assert.Assert(t, !IsPast(&model.Race{}, time.Now()))
	assert.Assert(t, !IsPast(&model.Race{EventDate: "tbc"}, time.Now()))
	assert.Assert(t, !IsPast(nil, time.Now()))
}

func TestFormatter_IsPast(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	assert.NilError(t, err)
	// ANSIC has no offset and only parses leniently
	race := &model.Race{EventDate: "Sun Apr  6 00:00:00 2025"}
	now := time.Date(2025, 4, 5, 18, 0, 0, 0, time.UTC)

	assert.Assert(t, NewFormatter(WithLocal(tokyo)).IsPast(race, now))
	assert.Assert(t, !NewFormatter(WithLocal(time.UTC)).IsPast(race, now))
	assert.Assert(t, !NewFormatter(WithLocal(tokyo)).IsPast(&model.Race{EventDate: "tbc"}, now))
	assert.Assert(t, !NewFormatter(WithLocal(tokyo)).IsPast(nil, now))
}
