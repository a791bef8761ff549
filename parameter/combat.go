package parameter

// Projectiles
const (
	// BulletSpeedBase, ArrowSpeedBase and OrbSpeedBase are launch speeds per tick at reference scale
	BulletSpeedBase = 9.0
	ArrowSpeedBase  = 12.0
	OrbSpeedBase    = 14.0

	// OrbDecay is the per-tick velocity multiplier applied to orbs
	OrbDecay = 0.96

	// ProjectileBoundsMargin is how far (world units) past the viewport a shot survives
	ProjectileBoundsMargin = 50.0

	// OrbHitCells and ShotHitCells are projectile-vs-player hit radii in cells
	OrbHitCells  = 0.25
	ShotHitCells = 0.16
)

// Capture
const (
	// CaptureCells is the builder-vs-player capture radius in cells
	CaptureCells = 0.33

	// SwarmCells is the helper-vs-player capture radius in cells
	SwarmCells = 0.25
)
