package schedule

import (
	"testing"
	"time"

	"gotest.tools/v3/assert"
)

func TestWeekendRange(t *testing.T) {
	tests := []struct {
		name  string
		dates []string
		want  string
	}{
		{
			name: "same month",
			dates: []string{
				"2025-03-14T01:30:00Z",
				"2025-03-14T05:00:00Z",
				"2025-03-15 01:30:00",
				"2025-03-15 05:00:00",
				"2025-03-16T04:00:00",
			},
			want: "14 – 16 Mar",
		},
		{
			name:  "unordered",
			dates: []string{"2025-03-16T04:00:00Z", "2025-03-14T01:30:00Z", "2025-03-15T01:30:00Z"},
			want:  "14 – 16 Mar",
		},
		{
			name:  "cross month",
			dates: []string{"2025-02-28 10:00:00", "2025-03-01 15:00:00", "", "", ""},
			want:  "28 Feb – 1 Mar",
		},
		{
			name:  "cross year",
			dates: []string{"2025-12-30T10:00:00Z", "2026-01-02T10:00:00Z"},
			want:  "30 Dec 2025 – 2 Jan 2026",
		},
		{
			name:  "single",
			dates: []string{"", "", "2025-03-15T05:00:00Z", "", ""},
			want:  "15 Mar",
		},
		{
			name:  "same day",
			dates: []string{"2025-03-15T01:00:00Z", "2025-03-15T05:00:00Z"},
			want:  "15 – 15 Mar",
		},
		{
			name:  "garbage skipped",
			dates: []string{"tbc", "2025-03-14T01:30:00Z", "2025-03-16T04:00:00Z"},
			want:  "14 – 16 Mar",
		},
		{name: "empty", dates: []string{"", "", "", "", ""}, want: Placeholder},
		{name: "none", dates: nil, want: Placeholder},
		{name: "garbage only", dates: []string{"tbc"}, want: Placeholder},
		{name: "single among garbage", dates: []string{"tbc", "2025-03-15 05:00:00"}, want: "15 Mar"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, WeekendRange(tt.dates...), tt.want)
		})
	}
}

func TestWeekendRangeIn(t *testing.T) {
	f := NewFormatter(WithLocal(time.UTC))
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	assert.NilError(t, err)
	dates := []string{"2025-03-13T20:00:00Z", "2025-03-16T05:00:00Z"}

	assert.Equal(t, f.WeekendRange(dates...), "13 – 16 Mar")
	assert.Equal(t, f.WeekendRangeIn(tokyo, dates...), "14 – 16 Mar")
	assert.Equal(t, f.WeekendRangeIn(nil, dates...), "13 – 16 Mar")
}
