package component

// ProjectileKind selects flight, retirement and hit rules
type ProjectileKind uint8

const (
	ProjectileBullet ProjectileKind = iota // Builder's straight shot
	ProjectileArrow                        // Bowman's straight shot toward the player's last position
	ProjectileOrb                          // Staff orb: decelerates, recovered by its caster
)

func (k ProjectileKind) String() string {
	switch k {
	case ProjectileBullet:
		return "bullet"
	case ProjectileArrow:
		return "arrow"
	case ProjectileOrb:
		return "orb"
	default:
		return "unknown"
	}
}

// Projectile is a ranged attack in flight
type Projectile struct {
	Kind   ProjectileKind
	Owner  int // Firing pursuer id, BuilderID for the builder
	X, Y   float64
	VX, VY float64
	Alive  bool // Cleared when an orb is caught; bounds retire shots regardless
}
