package display

import (
	"fmt"
	"strings"

	"github.com/f1board/f1board/pkg/lookup"
	"github.com/f1board/f1board/pkg/model"
)

const (
	DefaultPhotoPath  = "/driver_photo_avif/default.avif"
	DefaultAvatarPath = "/driver_avatar/default.svg"
	carImageSeason    = 2025
)

// PhotoPath is the driver photo derived from the full name.
func PhotoPath(fullName string) string {
	if fullName == "" {
		return DefaultPhotoPath
	}
	return "/driver_photo_avif/" + ImageName(fullName) + ".avif"
}

// AvatarPath returns the small avatar of a driver, DefaultAvatarPath when
// none is shipped.
func AvatarPath(driverName string) string {
	name := ImageName(driverName)
	if driverName == "" || !lookup.HasAvatar(name) {
		return DefaultAvatarPath
	}
	return "/driver_avatar/" + name + ".png"
}

// DriverNumberPath is the path of the number artwork of a driver, e.g.
// /driver_number/2025_mclaren_lando_norris_4.avif.
func DriverNumberPath(d *model.Driver) string {
	name, ok := lookup.DriverImageName(d.DriverName)
	if !ok {
		name = strings.ToLower(ImageName(d.DriverName))
	}
	return fmt.Sprintf("/driver_number/%d_%s_%s_%d.avif",
		carImageSeason,
		lookup.DriverNumberTeam(d.ConstructorID),
		name,
		lookup.DriverImageNumber(d.DriverName, d.Number))
}

func ConstructorCarPath(constructorID string) string {
	return fmt.Sprintf("/%d_constructor_car_photo/%s",
		carImageSeason, lookup.ConstructorCar(constructorID))
}

// TeamLogoPath returns the logo of a constructor if one is shipped.
func TeamLogoPath(constructorID string) (string, bool) {
	if !lookup.HasTeamLogo(constructorID) {
		return "", false
	}
	return "/team_logos/" + lookup.TeamLogo(constructorID) + ".svg", true
}

func TeamColor(constructorID string) string {
	return lookup.TeamColor(constructorID)
}

func CircuitImagePath(circuitID int) (string, bool) {
	if circuitID == 0 {
		return "", false
	}
	return fmt.Sprintf("/circuits_svg/%d.svg", circuitID), true
}

// CircuitLayoutPath prefers the locally stored layout image over the
// remote url.
func CircuitLayoutPath(c *model.Circuit) (string, bool) {
	switch {
	case c == nil:
		return "", false
	case c.CircuitLayoutImagePath != "":
		return strings.Replace(c.CircuitLayoutImagePath, "static/", "/", 1), true
	case c.CircuitLayoutImageURL != "":
		return c.CircuitLayoutImageURL, true
	}
	return "", false
}
