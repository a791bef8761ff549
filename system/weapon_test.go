package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/maze-chase/component"
	"github.com/lixenwraith/maze-chase/parameter"
	"github.com/lixenwraith/maze-chase/vmath"
)

func newTestWeapons() *WeaponSystem {
	scale := parameter.ScaleForCellSize(60)
	return NewWeaponSystem(scale, NewProjectileSystem(scale, 1200, 1200))
}

func helper(weapon component.Weapon, x, y float64) component.Pursuer {
	return component.Pursuer{
		ID:          4,
		Kind:        component.KindHelper,
		Body:        component.Body{X: x, Y: y},
		Speed:       5,
		Weapon:      weapon,
		WeaponState: component.InitialWeaponState(weapon),
	}
}

func TestBuilderFiringWindow(t *testing.T) {
	ws := newTestWeapons()
	tests := []struct {
		name     string
		dist     float64
		cooldown int
		fire     bool
	}{
		{"too close", 60, 0, false},
		{"in window", 200, 0, true},
		{"too far", 460, 0, false},
		{"cooling", 200, 5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := component.Pursuer{ID: component.BuilderID, Weapon: component.WeaponGun, Cooldown: tt.cooldown}
			var list []component.Projectile
			fired := ws.UpdateBuilder(&b, vmath.Vec2{X: tt.dist}, &list)
			assert.Equal(t, tt.fire, fired)
			if tt.fire {
				require.Len(t, list, 1)
				assert.Equal(t, component.ProjectileBullet, list[0].Kind)
				assert.Equal(t, component.BuilderID, list[0].Owner)
				assert.Equal(t, parameter.BuilderCooldownTicks, b.Cooldown)
				assert.Equal(t, component.WeaponStateCooldown, b.WeaponState)
			} else {
				assert.Empty(t, list)
			}
		})
	}
}

func TestBowFreezeThenThrottle(t *testing.T) {
	ws := newTestWeapons()
	h := helper(component.WeaponBow, 0, 0)
	player := vmath.Vec2{X: 150} // within range and sight

	var list []component.Projectile
	order := ws.UpdateHelper(&h, player, &list)
	assert.True(t, order.Fired)
	assert.Zero(t, order.Speed, "rooted on the firing tick")
	require.Len(t, list, 1)
	assert.Equal(t, component.ProjectileArrow, list[0].Kind)
	assert.Equal(t, h.ID, list[0].Owner)
	assert.Equal(t, component.WeaponStateCooldown, h.WeaponState)

	ws.Recover(&h)
	order = ws.UpdateHelper(&h, player, &list)
	assert.False(t, order.Fired)
	assert.InDelta(t, 5*parameter.BowRecoilSpeedFactor, order.Speed, 1e-12)

	for h.Cooldown > parameter.BowRecoilTicks {
		ws.Recover(&h)
	}
	order = ws.UpdateHelper(&h, player, &list)
	assert.Equal(t, 5.0, order.Speed)

	for h.Cooldown > 0 {
		ws.Recover(&h)
	}
	assert.Equal(t, component.WeaponStateReady, h.WeaponState)
	assert.Len(t, list, 1)
}

func TestBowSightIsDistanceOnly(t *testing.T) {
	ws := newTestWeapons()
	// In range (5.8 cells) but outside the 3.3-cell sight distance
	h := helper(component.WeaponBow, 0, 0)
	var list []component.Projectile
	order := ws.UpdateHelper(&h, vmath.Vec2{X: 4 * 60}, &list)
	assert.False(t, order.Fired)
	assert.Empty(t, list)

	assert.True(t, ws.LineOfSight(0, 0, 197, 0))
	assert.False(t, ws.LineOfSight(0, 0, 198, 0))
}

func TestStaffCycle(t *testing.T) {
	ws := newTestWeapons()
	h := helper(component.WeaponStaff, 0, 0)
	player := vmath.Vec2{X: 200}
	var list []component.Projectile

	// Throw
	order := ws.UpdateHelper(&h, player, &list)
	require.True(t, order.Fired)
	require.Len(t, list, 1)
	assert.Equal(t, component.ProjectileOrb, list[0].Kind)
	assert.Equal(t, component.WeaponStateOrbInFlight, h.WeaponState)
	assert.Equal(t, parameter.StaffThrowCooldownTicks, h.Cooldown)

	// Orb travels away; caster chases it
	for i := 0; i < 3; i++ {
		Advance(&list[0])
	}
	order = ws.UpdateHelper(&h, player, &list)
	assert.True(t, order.Chase)
	assert.Equal(t, vmath.Vec2{X: list[0].X, Y: list[0].Y}, order.Target)
	assert.Equal(t, component.WeaponStateOrbInFlight, h.WeaponState)

	// Spent orb: returning
	list[0].VX, list[0].VY = 0.5, 0
	ws.UpdateHelper(&h, player, &list)
	assert.Equal(t, component.WeaponStateOrbReturning, h.WeaponState)

	// Caster reaches the orb: caught
	h.X, h.Y = list[0].X-5, list[0].Y
	order = ws.UpdateHelper(&h, player, &list)
	assert.True(t, order.Caught)
	assert.False(t, list[0].Alive)
	assert.True(t, h.HasOrb())
	assert.Equal(t, parameter.StaffCatchCooldownTicks, h.Cooldown)
}

func TestStaffRegainsLostOrb(t *testing.T) {
	ws := newTestWeapons()
	h := helper(component.WeaponStaff, 0, 0)
	h.WeaponState = component.WeaponStateOrbInFlight

	var list []component.Projectile
	order := ws.UpdateHelper(&h, vmath.Vec2{X: 1000}, &list)
	assert.False(t, order.Chase)
	assert.True(t, h.HasOrb())
}

func TestStaffOutOfRangeHolds(t *testing.T) {
	ws := newTestWeapons()
	h := helper(component.WeaponStaff, 0, 0)
	var list []component.Projectile
	order := ws.UpdateHelper(&h, vmath.Vec2{X: 5 * 60}, &list)
	assert.False(t, order.Fired)
	assert.Equal(t, 5.0, order.Speed)
	assert.True(t, h.HasOrb())
}

func TestSwordHasNoRangedBehavior(t *testing.T) {
	ws := newTestWeapons()
	h := helper(component.WeaponSword, 0, 0)
	var list []component.Projectile
	order := ws.UpdateHelper(&h, vmath.Vec2{X: 50}, &list)
	assert.Equal(t, WeaponOrder{Speed: 5}, order)
	assert.Empty(t, list)
	assert.Equal(t, component.WeaponStateMelee, h.WeaponState)
}
