package display

import (
	"strings"

	"github.com/samber/lo"

	"github.com/f1board/f1board/pkg/model"
)

// DriverCard is what a driver tile shows.
type DriverCard struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Headline    string `json:"headline"` // "Andrea Kimi ANTONELLI"
	Number      int    `json:"number,omitempty"`
	Code        string `json:"code,omitempty"`
	Nationality string `json:"nationality,omitempty"`
	FlagCode    string `json:"flagCode,omitempty"`
	Photo       string `json:"photo"`
	Avatar      string `json:"avatar"`
	NumberImage string `json:"numberImage"`
	Team        string `json:"team,omitempty"`
	TeamLocal   string `json:"teamLocal,omitempty"`
	TeamColor   string `json:"teamColor"`
	TeamLogo    string `json:"teamLogo,omitempty"`
}

// ConstructorCard is what a constructor tile shows.
type ConstructorCard struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	LocalName   string       `json:"localName"`
	Nationality string       `json:"nationality,omitempty"`
	FlagCode    string       `json:"flagCode,omitempty"`
	Color       string       `json:"color"`
	Logo        string       `json:"logo,omitempty"`
	Car         string       `json:"car"`
	Drivers     []DriverCard `json:"drivers,omitempty"`
}

func NewDriverCard(d *model.Driver) DriverCard {
	first, last := SplitDriverName(d.DriverName)
	given, surname := DisplayName(d.DriverName)
	headline := strings.ToUpper(surname)
	if given != "" {
		headline = FullName(given, headline)
	}
	flag, _ := NationalityFlagCode(d.Nationality)
	logo, _ := TeamLogoPath(d.ConstructorID)
	ret := DriverCard{
		ID:          d.DriverRef,
		Name:        d.DriverName,
		FirstName:   first,
		LastName:    last,
		Headline:    headline,
		Number:      d.Number,
		Code:        d.Code,
		Nationality: d.Nationality,
		FlagCode:    flag,
		Photo:       PhotoPath(d.DriverName),
		Avatar:      AvatarPath(d.DriverName),
		NumberImage: DriverNumberPath(d),
		Team:        d.ConstructorName,
		TeamColor:   TeamColor(d.ConstructorID),
		TeamLogo:    logo,
	}
	if d.ConstructorName != "" {
		ret.TeamLocal = ConstructorName(d.ConstructorName)
	}
	return ret
}

// NewConstructorCard builds the card of c including its drivers. Drivers
// without a constructor id inherit the one of c.
func NewConstructorCard(c *model.Constructor) ConstructorCard {
	flag, _ := NationalityFlagCode(c.Nationality)
	logo, _ := TeamLogoPath(c.ConstructorID)
	return ConstructorCard{
		ID:          c.ConstructorID,
		Name:        c.ConstructorName,
		LocalName:   ConstructorName(c.ConstructorName),
		Nationality: c.Nationality,
		FlagCode:    flag,
		Color:       TeamColor(c.ConstructorID),
		Logo:        logo,
		Car:         ConstructorCarPath(c.ConstructorID),
		Drivers: lo.Map(c.Drivers, func(d model.Driver, _ int) DriverCard {
			if d.ConstructorID == "" {
				d.ConstructorID = c.ConstructorID
			}
			if d.ConstructorName == "" {
				d.ConstructorName = c.ConstructorName
			}
			return NewDriverCard(&d)
		}),
	}
}

// CircuitCard holds the circuit data shown on a race page.
type CircuitCard struct {
	Name   string       `json:"name,omitempty"`
	Image  string       `json:"image,omitempty"`
	Layout string       `json:"layout,omitempty"`
	Stats  CircuitStats `json:"stats"`
}

// NewCircuitCard uses the race's circuit id for the outline image when the
// nested circuit carries none.
func NewCircuitCard(race *model.Race) CircuitCard {
	id := race.CircuitID
	if race.Circuit != nil && race.Circuit.ID != 0 {
		id = race.Circuit.ID
	}
	image, _ := CircuitImagePath(id)
	layout, _ := CircuitLayoutPath(race.Circuit)
	return CircuitCard{
		Name:   race.CircuitName(),
		Image:  image,
		Layout: layout,
		Stats:  Stats(race.Circuit),
	}
}
