package display

import (
	"fmt"
	"strings"

	"github.com/f1board/f1board/pkg/lookup"
	"github.com/f1board/f1board/pkg/model"
)

// RaceName localizes "Grand Prix" in a race name.
func RaceName(name string) string {
	return strings.Replace(name, "Grand Prix", "大奖赛", 1)
}

// ConstructorName returns the chinese constructor name or name itself.
func ConstructorName(name string) string {
	if n, ok := lookup.ConstructorNameZH(name); ok {
		return n
	}
	return name
}

// RoundLabel is "TESTING" for pre-season testing (round 0), else "ROUND n".
func RoundLabel(race *model.Race) string {
	if race.RoundNumber == 0 {
		return "TESTING"
	}
	return fmt.Sprintf("ROUND %d", race.RoundNumber)
}
