package lookup

// base names (no extension) of the driver avatars shipped with the frontend
var availableAvatars = map[string]struct{}{
	"Alexander_Albon":       {},
	"Andrea_Kimi_Antonelli": {},
	"Carlos_Sainz":          {},
	"Charles_Leclerc":       {},
	"Esteban_Ocon":          {},
	"Fernando_Alonso":       {},
	"Franco_Colapinto":      {},
	"Gabriel_Bortoleto":     {},
	"George_Russell":        {},
	"Isack_Hadjar":          {},
	"Lance_Stroll":          {},
	"Lando_Norris":          {},
	"Lewis_Hamilton":        {},
	"Liam_Lawson":           {},
	"Max_Verstappen":        {},
	"Nico_Hulkenberg":       {},
	"Oliver_Bearman":        {},
	"Oscar_Piastri":         {},
	"Pierre_Gasly":          {},
	"Yuki_Tsunoda":          {},
}

func HasAvatar(name string) bool {
	_, ok := availableAvatars[name]
	return ok
}
