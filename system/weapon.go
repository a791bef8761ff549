package system

import (
	"math"

	"github.com/lixenwraith/maze-chase/component"
	"github.com/lixenwraith/maze-chase/parameter"
	"github.com/lixenwraith/maze-chase/vmath"
)

// WeaponOrder is what a pursuer's weapon asks of movement this tick
type WeaponOrder struct {
	Speed  float64    // Travel this tick, 0 roots the pursuer
	Chase  bool       // Go straight for Target instead of the player
	Target vmath.Vec2 // Valid when Chase is set
	Fired  bool
	Caught bool
}

// WeaponSystem runs the per-pursuer weapon cycles
// Fired projectiles are appended to the caller's slice
type WeaponSystem struct {
	scale       parameter.Scale
	projectiles *ProjectileSystem
}

func NewWeaponSystem(scale parameter.Scale, projectiles *ProjectileSystem) *WeaponSystem {
	return &WeaponSystem{scale: scale, projectiles: projectiles}
}

func (s *WeaponSystem) Name() string { return "weapon" }

func (s *WeaponSystem) SetScale(scale parameter.Scale) {
	s.scale = scale
}

// LineOfSight is a pure distance test; walls do not block it
func (s *WeaponSystem) LineOfSight(x1, y1, x2, y2 float64) bool {
	return vmath.Distance(x1, y1, x2, y2) < s.scale.Cells(parameter.BowSightCells)
}

// UpdateBuilder fires the builder's gun when the player is inside the firing window
// Returns true when a bullet was fired
func (s *WeaponSystem) UpdateBuilder(b *component.Pursuer, player vmath.Vec2, list *[]component.Projectile) bool {
	d := vmath.Distance(b.X, b.Y, player.X, player.Y)
	if d <= s.scale.Cells(parameter.BuilderFireMinCells) || d >= s.scale.Cells(parameter.BuilderFireMaxCells) {
		return false
	}
	if b.Cooldown > 0 {
		return false
	}

	aim := math.Atan2(player.Y-b.Y, player.X-b.X)
	*list = append(*list, s.projectiles.Fire(b.X, b.Y, aim, component.ProjectileBullet, component.BuilderID))
	b.Cooldown = parameter.BuilderCooldownTicks
	b.WeaponState = component.WeaponStateCooldown
	return true
}

// UpdateHelper advances a helper's weapon cycle and returns its movement order
func (s *WeaponSystem) UpdateHelper(h *component.Pursuer, player vmath.Vec2, list *[]component.Projectile) WeaponOrder {
	order := WeaponOrder{Speed: h.Speed}
	d := vmath.Distance(h.X, h.Y, player.X, player.Y)

	switch h.Weapon {
	case component.WeaponStaff:
		s.updateStaff(h, player, d, list, &order)
	case component.WeaponBow:
		s.updateBow(h, player, d, list, &order)
	case component.WeaponSword, component.WeaponGun:
	}

	return order
}

// updateStaff cycles orb-in-hand → in flight → returning → caught
func (s *WeaponSystem) updateStaff(h *component.Pursuer, player vmath.Vec2, d float64, list *[]component.Projectile, order *WeaponOrder) {
	if h.HasOrb() {
		if d < s.scale.Cells(parameter.StaffRangeCells) && h.Cooldown <= 0 {
			aim := math.Atan2(player.Y-h.Y, player.X-h.X)
			*list = append(*list, s.projectiles.Fire(h.X, h.Y, aim, component.ProjectileOrb, h.ID))
			h.WeaponState = component.WeaponStateOrbInFlight
			h.Cooldown = parameter.StaffThrowCooldownTicks
			order.Fired = true
		}
		return
	}

	orb := FindOrb(*list, h.ID)
	if orb == nil {
		// Orb lost: regain it
		h.WeaponState = component.WeaponStateOrbInHand
		return
	}

	order.Chase = true
	order.Target = vmath.Vec2{X: orb.X, Y: orb.Y}

	if vmath.Distance(orb.X, orb.Y, h.X, h.Y) < parameter.StaffCatchRadius {
		orb.Alive = false
		h.WeaponState = component.WeaponStateOrbInHand
		h.Cooldown = parameter.StaffCatchCooldownTicks
		order.Caught = true
		return
	}

	if vmath.Magnitude(orb.VX, orb.VY) < parameter.StaffOrbRestSpeed {
		h.WeaponState = component.WeaponStateOrbReturning
	}
}

// updateBow fires when in range and in sight, then freezes and throttles during recoil
func (s *WeaponSystem) updateBow(h *component.Pursuer, player vmath.Vec2, d float64, list *[]component.Projectile, order *WeaponOrder) {
	if d < s.scale.Cells(parameter.BowRangeCells) && h.Cooldown <= 0 && s.LineOfSight(h.X, h.Y, player.X, player.Y) {
		aim := math.Atan2(player.Y-h.Y, player.X-h.X)
		*list = append(*list, s.projectiles.Fire(h.X, h.Y, aim, component.ProjectileArrow, h.ID))
		h.Cooldown = parameter.BowCooldownTicks
		h.WeaponState = component.WeaponStateCooldown
		order.Speed = 0
		order.Fired = true
	}
	if h.Cooldown > parameter.BowRecoilTicks {
		order.Speed *= parameter.BowRecoilSpeedFactor
	}
}

// Recover counts down a pursuer's cooldown; a spent gun or bow becomes ready again
func (s *WeaponSystem) Recover(p *component.Pursuer) {
	if p.Cooldown > 0 {
		p.Cooldown--
	}
	if p.Cooldown <= 0 && p.WeaponState == component.WeaponStateCooldown {
		p.WeaponState = component.WeaponStateReady
	}
}
