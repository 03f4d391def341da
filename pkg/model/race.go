package model

// SessionCount is the number of session slots a race weekend carries.
const SessionCount = 5

const EventFormatSprintQualifying = "sprint_qualifying"

// Race is the race record as produced by the backend API.
// All string fields are optional; an empty string means absent.
type Race struct {
	ID                int      `json:"id"`
	SeasonID          int      `json:"season_id,omitempty"`
	RoundNumber       int      `json:"round_number"`
	Country           string   `json:"country,omitempty"`
	Location          string   `json:"location,omitempty"`
	OfficialEventName string   `json:"official_event_name,omitempty"`
	EventName         string   `json:"event_name,omitempty"`
	EventDate         string   `json:"event_date,omitempty"`
	EventFormat       string   `json:"event_format,omitempty"`
	CircuitID         int      `json:"circuit_id,omitempty"`
	Circuit           *Circuit `json:"circuit,omitempty"`

	Session1     string `json:"session1,omitempty"`
	Session1Date string `json:"session1_date,omitempty"`
	Session2     string `json:"session2,omitempty"`
	Session2Date string `json:"session2_date,omitempty"`
	Session3     string `json:"session3,omitempty"`
	Session3Date string `json:"session3_date,omitempty"`
	Session4     string `json:"session4,omitempty"`
	Session4Date string `json:"session4_date,omitempty"`
	Session5     string `json:"session5,omitempty"`
	Session5Date string `json:"session5_date,omitempty"`
}

// CircuitName returns the nested circuit display name or "".
func (r *Race) CircuitName() string {
	if r.Circuit == nil {
		return ""
	}
	return r.Circuit.CircuitName
}

// SessionDates returns the five session timestamps in slot order.
func (r *Race) SessionDates() [SessionCount]string {
	return [SessionCount]string{
		r.Session1Date, r.Session2Date, r.Session3Date, r.Session4Date, r.Session5Date,
	}
}

// SessionLabels returns the five session labels in slot order.
func (r *Race) SessionLabels() [SessionCount]string {
	return [SessionCount]string{
		r.Session1, r.Session2, r.Session3, r.Session4, r.Session5,
	}
}

// Title prefers the official event name over the short one.
func (r *Race) Title() string {
	if r.OfficialEventName != "" {
		return r.OfficialEventName
	}
	return r.EventName
}
