package display

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/f1board/f1board/pkg/lookup"
	"github.com/f1board/f1board/pkg/model"
)

func TestCountryName(t *testing.T) {
	tests := []struct {
		name string
		race *model.Race
		want string
	}{
		{
			name: "location round",
			race: &model.Race{RoundNumber: 6, Country: "United States", Location: "Miami"},
			want: "Miami",
		},
		{
			name: "testing round",
			race: &model.Race{RoundNumber: 0, Country: "Bahrain", Location: "Sakhir"},
			want: "Sakhir",
		},
		{
			name: "location round without location",
			race: &model.Race{RoundNumber: 22, Country: "United States"},
			want: "United States",
		},
		{
			name: "circuit country first",
			race: &model.Race{
				RoundNumber: 3, Country: "JPN", Location: "Suzuka",
				Circuit: &model.Circuit{Country: "Japan"},
			},
			want: "Japan",
		},
		{
			name: "race country",
			race: &model.Race{RoundNumber: 3, Country: "Japan"},
			want: "Japan",
		},
		{name: "nothing", race: &model.Race{RoundNumber: 3}, want: UnknownCountry},
		{name: "nil", race: nil, want: UnknownCountry},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountryName(tt.race, nil))
		})
	}
}

func TestCountryNameCustomRounds(t *testing.T) {
	tables := lookup.Default().WithLocationRounds([]int{3})
	race := &model.Race{RoundNumber: 3, Country: "Japan", Location: "Suzuka"}
	assert.Equal(t, "Suzuka", CountryName(race, tables))

	race = &model.Race{RoundNumber: 6, Country: "United States", Location: "Miami"}
	assert.Equal(t, "United States", CountryName(race, tables))
}

func TestFlagEmoji(t *testing.T) {
	assert.Equal(t, "🇯🇵", FlagEmoji("Japan"))
	assert.Equal(t, "🇬🇧", FlagEmoji("Kingdom"))
	assert.Equal(t, "🇺🇸", FlagEmoji("Miami"))
	assert.Equal(t, UnknownFlag, FlagEmoji("Atlantis"))
	assert.Equal(t, UnknownFlag, FlagEmoji(""))
}

func TestFlagPath(t *testing.T) {
	p, ok := FlagPath("Monaco")
	assert.True(t, ok)
	assert.Equal(t, "/country_flags/MC.svg", p)

	_, ok = FlagPath("Atlantis")
	assert.False(t, ok)
}

func TestNationality(t *testing.T) {
	n, ok := CountryNationality("Japan")
	assert.True(t, ok)
	assert.Equal(t, "Japanese", n)

	code, ok := CountryFlagCode("Japan")
	assert.True(t, ok)
	assert.Equal(t, "JP", code)

	code, ok = NationalityFlagCode("British")
	assert.True(t, ok)
	assert.Equal(t, "GB", code)
}

func TestDriverNames(t *testing.T) {
	first, last := SplitDriverName("Andrea Kimi Antonelli")
	assert.Equal(t, "Andrea", first)
	assert.Equal(t, "Kimi Antonelli", last)

	first, last = DisplayName("Andrea Kimi Antonelli")
	assert.Equal(t, "Andrea Kimi", first)
	assert.Equal(t, "Antonelli", last)

	first, last = DisplayName("Zhou")
	assert.Equal(t, "", first)
	assert.Equal(t, "Zhou", last)

	assert.Equal(t, "Nico_Hulkenberg", ImageName("Nico Hülkenberg"))
	assert.Equal(t, "Sergio_Perez", ImageName("Sergio Pérez"))
	assert.Equal(t, "Max Verstappen", FullName("Max", "Verstappen"))
}

func TestAssetPaths(t *testing.T) {
	assert.Equal(t, "/driver_avatar/Lando_Norris.png", AvatarPath("Lando Norris"))
	assert.Equal(t, DefaultAvatarPath, AvatarPath("Unknown Driver"))
	assert.Equal(t, DefaultAvatarPath, AvatarPath(""))

	assert.Equal(t, "/driver_photo_avif/Nico_Hulkenberg.avif", PhotoPath("Nico Hülkenberg"))
	assert.Equal(t, DefaultPhotoPath, PhotoPath(""))

	assert.Equal(t, "/driver_number/2025_mclaren_lando_norris_4.avif",
		DriverNumberPath(&model.Driver{DriverName: "Lando Norris", Number: 4, ConstructorID: "mclaren"}))
	assert.Equal(t, "/driver_number/2025_redbullracing_max_verstappen_1.avif",
		DriverNumberPath(&model.Driver{DriverName: "Max Verstappen", Number: 33, ConstructorID: "red_bull"}))
	assert.Equal(t, "/driver_number/2025_newteam_foo_bar_99.avif",
		DriverNumberPath(&model.Driver{DriverName: "Foo Bär", Number: 99, ConstructorID: "newteam"}))

	assert.Equal(t, "/2025_constructor_car_photo/ferrari.png", ConstructorCarPath("ferrari"))
	assert.Equal(t, "/2025_constructor_car_photo/mercedes.png", ConstructorCarPath("unknown"))

	logo, ok := TeamLogoPath("red_bull")
	assert.True(t, ok)
	assert.Equal(t, "/team_logos/red-bull-racing.svg", logo)
	_, ok = TeamLogoPath("unknown")
	assert.False(t, ok)

	assert.Equal(t, "rgb(237, 17, 49)", TeamColor("Ferrari"))
	assert.Equal(t, lookup.DefaultTeamColor, TeamColor(""))
}

func TestCircuitPaths(t *testing.T) {
	p, ok := CircuitImagePath(14)
	assert.True(t, ok)
	assert.Equal(t, "/circuits_svg/14.svg", p)
	_, ok = CircuitImagePath(0)
	assert.False(t, ok)

	p, ok = CircuitLayoutPath(&model.Circuit{
		CircuitLayoutImagePath: "static/circuit_layouts/suzuka.png",
		CircuitLayoutImageURL:  "https://example.com/suzuka.png",
	})
	assert.True(t, ok)
	assert.Equal(t, "/circuit_layouts/suzuka.png", p)

	p, ok = CircuitLayoutPath(&model.Circuit{CircuitLayoutImageURL: "https://example.com/suzuka.png"})
	assert.True(t, ok)
	assert.Equal(t, "https://example.com/suzuka.png", p)

	_, ok = CircuitLayoutPath(nil)
	assert.False(t, ok)
}

func TestStats(t *testing.T) {
	got := Stats(&model.Circuit{
		Length:          5807,
		FirstGrandPrix:  1987,
		TypicalLapCount: 53,
		LapRecord:       "1:30.983",
		LapRecordDriver: "Lewis Hamilton",
		LapRecordYear:   2019,
		RaceDistance:    307.471,
	})
	assert.Equal(t, CircuitStats{
		Length:         "5.807km",
		FirstGrandPrix: "1987",
		Laps:           "53",
		LapRecord:      "1:30.983",
		LapRecordBy:    "Lewis Hamilton (2019)",
		RaceDistance:   "307.47km",
	}, got)

	empty := Stats(&model.Circuit{})
	assert.Equal(t, "-", empty.Length)
	assert.Equal(t, "-", empty.LapRecord)
	assert.Equal(t, "", empty.LapRecordBy)
	assert.Equal(t, Stats(nil).RaceDistance, "-")
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "3.337km", LengthLabel(3337))
	assert.Equal(t, "260.29km", DistanceLabel(260.286))
	assert.Equal(t, "日本大奖赛", RaceName("日本Grand Prix"))
	assert.Equal(t, "Japanese 大奖赛", RaceName("Japanese Grand Prix"))
	assert.Equal(t, "迈凯伦", ConstructorName("McLaren"))
	assert.Equal(t, "Cadillac", ConstructorName("Cadillac"))
	assert.Equal(t, "TESTING", RoundLabel(&model.Race{RoundNumber: 0}))
	assert.Equal(t, "ROUND 3", RoundLabel(&model.Race{RoundNumber: 3}))
}

func TestDriverCard(t *testing.T) {
	card := NewDriverCard(&model.Driver{
		DriverRef:       "norris",
		DriverName:      "Lando Norris",
		Number:          4,
		Code:            "NOR",
		Nationality:     "British",
		ConstructorID:   "mclaren",
		ConstructorName: "McLaren",
	})
	assert.Equal(t, DriverCard{
		ID:          "norris",
		Name:        "Lando Norris",
		FirstName:   "Lando",
		LastName:    "Norris",
		Headline:    "Lando NORRIS",
		Number:      4,
		Code:        "NOR",
		Nationality: "British",
		FlagCode:    "GB",
		Photo:       "/driver_photo_avif/Lando_Norris.avif",
		Avatar:      "/driver_avatar/Lando_Norris.png",
		NumberImage: "/driver_number/2025_mclaren_lando_norris_4.avif",
		Team:        "McLaren",
		TeamLocal:   "迈凯伦",
		TeamColor:   "rgb(244, 118, 0)",
		TeamLogo:    "/team_logos/mclaren.svg",
	}, card)

	card = NewDriverCard(&model.Driver{DriverName: "Andrea Kimi Antonelli"})
	assert.Equal(t, "Andrea", card.FirstName)
	assert.Equal(t, "Kimi Antonelli", card.LastName)
	assert.Equal(t, "Andrea Kimi ANTONELLI", card.Headline)
	assert.Equal(t, lookup.DefaultTeamColor, card.TeamColor)
	assert.Empty(t, card.TeamLogo)
	assert.Empty(t, card.TeamLocal)

	assert.Equal(t, "ZHOU", NewDriverCard(&model.Driver{DriverName: "Zhou"}).Headline)
}

func TestConstructorCard(t *testing.T) {
	card := NewConstructorCard(&model.Constructor{
		ConstructorID:   "ferrari",
		ConstructorName: "Ferrari",
		Nationality:     "Italian",
		Drivers: []model.Driver{
			{DriverName: "Charles Leclerc", Number: 16},
			{DriverName: "Lewis Hamilton", Number: 44, ConstructorName: "Scuderia Ferrari"},
		},
	})
	assert.Equal(t, "法拉利", card.LocalName)
	assert.Equal(t, "IT", card.FlagCode)
	assert.Equal(t, "rgb(237, 17, 49)", card.Color)
	assert.Equal(t, "/team_logos/ferrari.svg", card.Logo)
	assert.Equal(t, "/2025_constructor_car_photo/ferrari.png", card.Car)
	assert.Len(t, card.Drivers, 2)
	assert.Equal(t, "/driver_number/2025_ferrari_chales_leclerc_16.avif", card.Drivers[0].NumberImage)
	assert.Equal(t, "Ferrari", card.Drivers[0].Team)
	assert.Equal(t, "Scuderia Ferrari", card.Drivers[1].Team)
	assert.Equal(t, "rgb(237, 17, 49)", card.Drivers[1].TeamColor)

	unknown := NewConstructorCard(&model.Constructor{ConstructorID: "cadillac", ConstructorName: "Cadillac"})
	assert.Equal(t, "Cadillac", unknown.LocalName)
	assert.Empty(t, unknown.Logo)
	assert.Equal(t, "/2025_constructor_car_photo/mercedes.png", unknown.Car)
	assert.Empty(t, unknown.Drivers)
}

func TestCircuitCard(t *testing.T) {
	card := NewCircuitCard(&model.Race{
		CircuitID: 22,
		Circuit: &model.Circuit{
			CircuitName:            "Suzuka International Circuit",
			Length:                 5807,
			CircuitLayoutImagePath: "static/circuit_layouts/suzuka.png",
		},
	})
	assert.Equal(t, "Suzuka International Circuit", card.Name)
	assert.Equal(t, "/circuits_svg/22.svg", card.Image)
	assert.Equal(t, "/circuit_layouts/suzuka.png", card.Layout)
	assert.Equal(t, "5.807km", card.Stats.Length)

	card = NewCircuitCard(&model.Race{CircuitID: 22, Circuit: &model.Circuit{ID: 7}})
	assert.Equal(t, "/circuits_svg/7.svg", card.Image)

	card = NewCircuitCard(&model.Race{})
	assert.Empty(t, card.Image)
	assert.Empty(t, card.Layout)
	assert.Equal(t, "-", card.Stats.Length)
}
