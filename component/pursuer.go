package component

// Kind distinguishes the primary pursuer from helpers
type Kind uint8

const (
	KindBuilder Kind = iota
	KindHelper
)

// BuilderID is the owner id carried by the builder's projectiles
const BuilderID = -1

func (k Kind) String() string {
	switch k {
	case KindBuilder:
		return "builder"
	case KindHelper:
		return "helper"
	default:
		return "unknown"
	}
}

// Weapon is exclusive per pursuer and fixed at spawn
type Weapon uint8

const (
	WeaponGun   Weapon = iota // Builder only
	WeaponSword               // Melee, no ranged behavior
	WeaponBow                 // Arrows gated by range and sight
	WeaponStaff               // Returning orb
)

// HelperWeapons is the spawn pool for helpers
var HelperWeapons = [...]Weapon{WeaponSword, WeaponBow, WeaponStaff}

func (w Weapon) String() string {
	switch w {
	case WeaponGun:
		return "gun"
	case WeaponSword:
		return "sword"
	case WeaponBow:
		return "bow"
	case WeaponStaff:
		return "staff"
	default:
		return "unknown"
	}
}

// WeaponState is the current step of a pursuer's weapon cycle
type WeaponState uint8

const (
	WeaponStateMelee      WeaponState = iota // Sword: nothing to track
	WeaponStateReady                         // Gun or bow: can fire when cooled down and in range
	WeaponStateCooldown                      // Gun or bow: shot fired, waiting
	WeaponStateOrbInHand                     // Staff: holding orb
	WeaponStateOrbInFlight                   // Staff: orb moving under launch momentum
	WeaponStateOrbReturning                  // Staff: orb spent, caster walking to recover it
)

func (s WeaponState) String() string {
	switch s {
	case WeaponStateMelee:
		return "melee"
	case WeaponStateReady:
		return "ready"
	case WeaponStateCooldown:
		return "cooldown"
	case WeaponStateOrbInHand:
		return "orb_in_hand"
	case WeaponStateOrbInFlight:
		return "orb_in_flight"
	case WeaponStateOrbReturning:
		return "orb_returning"
	default:
		return "unknown"
	}
}

// InitialWeaponState returns the state a freshly spawned pursuer starts in
func InitialWeaponState(w Weapon) WeaponState {
	switch w {
	case WeaponGun, WeaponBow:
		return WeaponStateReady
	case WeaponStaff:
		return WeaponStateOrbInHand
	default:
		return WeaponStateMelee
	}
}

// Pursuer is the builder or a helper
type Pursuer struct {
	ID   int
	Kind Kind
	Body

	Speed    float64 // Travel per tick
	Radius   float64 // Wall collision radius
	Cooldown int     // Ticks until the weapon may fire again

	Weapon      Weapon
	WeaponState WeaponState
}

// HasOrb reports whether a staff caster is holding its orb
func (p *Pursuer) HasOrb() bool {
	return p.Weapon == WeaponStaff && p.WeaponState == WeaponStateOrbInHand
}
