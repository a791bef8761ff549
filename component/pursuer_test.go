package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitialWeaponState(t *testing.T) {
	assert.Equal(t, WeaponStateReady, InitialWeaponState(WeaponGun))
	assert.Equal(t, WeaponStateReady, InitialWeaponState(WeaponBow))
	assert.Equal(t, WeaponStateOrbInHand, InitialWeaponState(WeaponStaff))
	assert.Equal(t, WeaponStateMelee, InitialWeaponState(WeaponSword))
}

func TestHasOrb(t *testing.T) {
	p := Pursuer{Weapon: WeaponStaff, WeaponState: WeaponStateOrbInHand}
	assert.True(t, p.HasOrb())

	p.WeaponState = WeaponStateOrbInFlight
	assert.False(t, p.HasOrb())

	p = Pursuer{Weapon: WeaponBow, WeaponState: WeaponStateOrbInHand}
	assert.False(t, p.HasOrb())
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "builder", KindBuilder.String())
	assert.Equal(t, "staff", WeaponStaff.String())
	assert.Equal(t, "orb_returning", WeaponStateOrbReturning.String())
	assert.Equal(t, "arrow", ProjectileArrow.String())
	assert.Equal(t, "unknown", ProjectileKind(9).String())
}
