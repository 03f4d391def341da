package display

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/f1board/f1board/pkg/model"
)

const notAvailable = "-"

var thousand = decimal.NewFromInt(1000)

// CircuitStats holds the display labels of a circuit.
type CircuitStats struct {
	Length         string `json:"length"`
	FirstGrandPrix string `json:"firstGrandPrix"`
	Laps           string `json:"laps"`
	LapRecord      string `json:"lapRecord"`
	LapRecordBy    string `json:"lapRecordBy,omitempty"`
	RaceDistance   string `json:"raceDistance"`
}

// LengthLabel converts a length in meters to "5.412km".
func LengthLabel(meters float64) string {
	if meters == 0 {
		return notAvailable
	}
	return decimal.NewFromFloat(meters).Div(thousand).StringFixed(3) + "km"
}

// DistanceLabel formats a distance in km with two decimals.
func DistanceLabel(km float64) string {
	if km == 0 {
		return notAvailable
	}
	return decimal.NewFromFloat(km).StringFixed(2) + "km"
}

func intLabel(v int) string {
	if v == 0 {
		return notAvailable
	}
	return strconv.Itoa(v)
}

func Stats(c *model.Circuit) CircuitStats {
	if c == nil {
		return CircuitStats{
			Length: notAvailable, FirstGrandPrix: notAvailable, Laps: notAvailable,
			LapRecord: notAvailable, RaceDistance: notAvailable,
		}
	}
	ret := CircuitStats{
		Length:         LengthLabel(c.Length),
		FirstGrandPrix: intLabel(c.FirstGrandPrix),
		Laps:           intLabel(c.TypicalLapCount),
		LapRecord:      c.LapRecord,
		RaceDistance:   DistanceLabel(c.RaceDistance),
	}
	if ret.LapRecord == "" {
		ret.LapRecord = notAvailable
	}
	if c.LapRecordDriver != "" && c.LapRecordYear != 0 {
		ret.LapRecordBy = fmt.Sprintf("%s (%d)", c.LapRecordDriver, c.LapRecordYear)
	}
	return ret
}
