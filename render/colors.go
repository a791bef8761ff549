package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/maze-chase/component"
)

// RGB color definitions
var (
	RgbBackground    = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbWall          = tcell.NewRGBColor(120, 130, 170) // Intact wall
	RgbWallDissolved = tcell.NewRGBColor(45, 48, 66)    // Wall near the player during a run

	RgbPlayer       = tcell.NewRGBColor(255, 255, 255) // Running
	RgbPlayerSafe   = tcell.NewRGBColor(50, 255, 50)   // Idle, start allowed
	RgbPlayerUnsafe = tcell.NewRGBColor(255, 80, 80)   // Idle, too close to a pursuer

	RgbBuilder     = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbHelperSword = tcell.NewRGBColor(200, 200, 200) // Light gray
	RgbHelperBow   = tcell.NewRGBColor(100, 200, 100) // Green
	RgbHelperStaff = tcell.NewRGBColor(180, 120, 255) // Violet

	RgbBullet = tcell.NewRGBColor(255, 255, 0)   // Yellow
	RgbArrow  = tcell.NewRGBColor(140, 190, 255) // Bright blue
	RgbOrb    = tcell.NewRGBColor(255, 100, 255) // Magenta

	RgbStatusBar = tcell.NewRGBColor(255, 255, 255)
	RgbGameOver  = tcell.NewRGBColor(255, 80, 80)
)

func styleFg(c tcell.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(c).Background(RgbBackground)
}

func helperColor(w component.Weapon) tcell.Color {
	switch w {
	case component.WeaponBow:
		return RgbHelperBow
	case component.WeaponStaff:
		return RgbHelperStaff
	case component.WeaponSword, component.WeaponGun:
		return RgbHelperSword
	default:
		return RgbHelperSword
	}
}

func projectileColor(k component.ProjectileKind) tcell.Color {
	switch k {
	case component.ProjectileArrow:
		return RgbArrow
	case component.ProjectileOrb:
		return RgbOrb
	default:
		return RgbBullet
	}
}
