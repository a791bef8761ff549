package engine

import "github.com/lixenwraith/maze-chase/component"

// Phase is the whole-simulation state
type Phase uint8

const (
	// PhaseIdle: maze laid out, player may move the proposed spawn point
	PhaseIdle Phase = iota
	// PhaseRunning: all systems tick
	PhaseRunning
	// PhaseGameOver: frozen until Reset
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Reason is the display tag of a finished run
type Reason string

const (
	ReasonNone        Reason = ""
	ReasonCaptured    Reason = "CAPTURED"    // Builder reached the player
	ReasonSwarmed     Reason = "SWARMED"     // A helper reached the player
	ReasonSkewered    Reason = "SKEWERED"    // Arrow hit
	ReasonObliterated Reason = "OBLITERATED" // Orb hit
	ReasonShotDown    Reason = "SHOT DOWN"   // Bullet hit
)

// ReasonForProjectile maps a projectile hit to its game-over reason
func ReasonForProjectile(kind component.ProjectileKind) Reason {
	switch kind {
	case component.ProjectileBullet:
		return ReasonShotDown
	case component.ProjectileArrow:
		return ReasonSkewered
	case component.ProjectileOrb:
		return ReasonObliterated
	default:
		return ReasonShotDown
	}
}
