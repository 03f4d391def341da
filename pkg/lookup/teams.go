package lookup

import "strings"

// DefaultTeamColor is used for constructors without a known color.
const DefaultTeamColor = "rgb(128, 128, 128)"

// keyed by constructor_id
var teamColors = map[string]string{
	"alpine":       "rgb(0, 161, 232)",
	"aston_martin": "rgb(34, 153, 113)",
	"ferrari":      "rgb(237, 17, 49)",
	"haas":         "rgb(156, 159, 162)",
	"mclaren":      "rgb(244, 118, 0)",
	"mercedes":     "rgb(0, 215, 182)",
	"rb":           "rgb(108, 152, 255)",
	"red_bull":     "rgb(71, 129, 215)",
	"sauber":       "rgb(1, 192, 14)",
	"williams":     "rgb(24, 104, 219)",
}

// logo svg basenames, keyed by constructor_id
var teamLogos = map[string]string{
	"alpine":       "alpine",
	"aston_martin": "aston-martin",
	"ferrari":      "ferrari",
	"haas":         "haas-f1-team",
	"sauber":       "kick-sauber",
	"mclaren":      "mclaren",
	"mercedes":     "mercedes",
	"rb":           "racing-bulls",
	"red_bull":     "red-bull-racing",
	"williams":     "williams",
}

// DefaultConstructorCar is shown when no car image exists.
const DefaultConstructorCar = "mercedes.png"

var constructorCars = map[string]string{
	"mercedes":     "mercedes.png",
	"ferrari":      "ferrari.png",
	"red_bull":     "red_bull.png",
	"mclaren":      "mclaren.png",
	"aston_martin": "aston_martin.png",
	"alpine":       "alpine.png",
	"williams":     "williams.png",
	"haas":         "haas.png",
	"rb":           "rb.png",
	"sauber":       "sauber.png",
}

// team part of the driver number image filenames
var driverNumberTeams = map[string]string{
	"aston_martin": "astonmartin",
	"red_bull":     "redbullracing",
	"rb":           "racingbulls",
	"sauber":       "kicksauber",
	"ferrari":      "ferrari",
	"mercedes":     "mercedes",
	"mclaren":      "mclaren",
	"alpine":       "alpine",
	"haas":         "haas",
	"williams":     "williams",
}

// driver part of the driver number image filenames.
// "chales_leclerc" matches the misspelled asset on disk.
var driverImageNames = map[string]string{
	"Charles Leclerc":       "chales_leclerc",
	"Andrea Kimi Antonelli": "kimi_antonelli",
	"Franco Colapinto":      "franco_colapinto",
	"Pierre Gasly":          "pierre_gasly",
	"Fernando Alonso":       "fernando_alonso",
	"Lance Stroll":          "lance_stroll",
	"Lewis Hamilton":        "lewis_hamilton",
	"Esteban Ocon":          "esteban_ocon",
	"Oliver Bearman":        "oliver_bearman",
	"Gabriel Bortoleto":     "gabriel_bortoleto",
	"Nico Hulkenberg":       "nico_hulkenberg",
	"Lando Norris":          "lando_norris",
	"Oscar Piastri":         "oscar_piastri",
	"George Russell":        "george_russell",
	"Isack Hadjar":          "isack_hadjar",
	"Liam Lawson":           "liam_lawson",
	"Max Verstappen":        "max_verstappen",
	"Yuki Tsunoda":          "yuki_tsunoda",
	"Alexander Albon":       "alexander_albon",
	"Carlos Sainz":          "carlos_sainz",
}

// race numbers used in the number image filenames
var driverImageNumbers = map[string]int{
	"Max Verstappen":        1,
	"Lando Norris":          4,
	"Gabriel Bortoleto":     5,
	"Isack Hadjar":          6,
	"Pierre Gasly":          10,
	"Andrea Kimi Antonelli": 12,
	"Fernando Alonso":       14,
	"Charles Leclerc":       16,
	"Lance Stroll":          18,
	"Yuki Tsunoda":          22,
	"Alexander Albon":       23,
	"Nico Hulkenberg":       27,
	"Liam Lawson":           30,
	"Esteban Ocon":          31,
	"Franco Colapinto":      43,
	"Lewis Hamilton":        44,
	"Carlos Sainz":          55,
	"George Russell":        63,
	"Oscar Piastri":         81,
	"Oliver Bearman":        87,
}

var constructorNamesZH = map[string]string{
	"Red Bull Racing": "红牛",
	"Mercedes":        "梅赛德斯",
	"Ferrari":         "法拉利",
	"McLaren":         "迈凯伦",
	"Aston Martin":    "阿斯顿马丁",
	"Alpine":          "阿尔派",
	"Williams":        "威廉姆斯",
	"Haas F1 Team":    "哈斯",
	"Alfa Romeo":      "阿尔法罗密欧",
	"AlphaTauri":      "阿尔法塔里",
}

// TeamColor returns the team color, case-insensitive on the id.
func TeamColor(constructorID string) string {
	if constructorID == "" {
		return DefaultTeamColor
	}
	if c, ok := teamColors[strings.ToLower(constructorID)]; ok {
		return c
	}
	return DefaultTeamColor
}

// TeamLogo returns the logo basename, falling back to the lowercased id.
func TeamLogo(constructorID string) string {
	id := strings.ToLower(constructorID)
	if l, ok := teamLogos[id]; ok {
		return l
	}
	return id
}

// HasTeamLogo reports whether a dedicated logo file exists for the id.
func HasTeamLogo(constructorID string) bool {
	_, ok := teamLogos[constructorID]
	return ok
}

func ConstructorCar(constructorID string) string {
	if c, ok := constructorCars[constructorID]; ok {
		return c
	}
	return DefaultConstructorCar
}

func DriverNumberTeam(constructorID string) string {
	if t, ok := driverNumberTeams[constructorID]; ok {
		return t
	}
	return constructorID
}

func DriverImageName(driverName string) (string, bool) {
	n, ok := driverImageNames[driverName]
	return n, ok
}

// DriverImageNumber returns the number used by the image asset,
// or fallback when the driver has no override.
func DriverImageNumber(driverName string, fallback int) int {
	if n, ok := driverImageNumbers[driverName]; ok {
		return n
	}
	return fallback
}

func ConstructorNameZH(name string) (string, bool) {
	n, ok := constructorNamesZH[name]
	return n, ok
}
