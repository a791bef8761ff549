package parameter

// Builder (primary pursuer)
const (
	// BuilderSpeedBase is builder travel per tick at reference scale
	BuilderSpeedBase = 3.2

	// BuilderRadiusBase is builder wall collision radius at reference scale
	BuilderRadiusBase = 12.0

	// BuilderHoldDistance is the distance (world units) inside which the builder stops walking
	BuilderHoldDistance = 10.0

	// BuilderFireMinCells and BuilderFireMaxCells bound the gun's firing window
	BuilderFireMinCells = 1.3
	BuilderFireMaxCells = 7.5

	// BuilderCooldownTicks is ticks between gun shots
	BuilderCooldownTicks = 100

	// BuilderFrameStep is animation phase advance per moving tick
	BuilderFrameStep = 0.2
)

// Helper (secondary pursuers)
const (
	// HelperSpeedBase is helper travel per tick at reference scale
	HelperSpeedBase = 4.8

	// HelperSpeedJitter is the random speed bonus range added on spawn (unscaled)
	HelperSpeedJitter = 1.0

	// HelperRadiusCells is helper wall collision radius in cells
	HelperRadiusCells = 0.16

	// HelperSeparationCells is the distance (cells) under which helpers repel each other
	HelperSeparationCells = 0.4

	// HelperSeparationStep is the per-tick repulsion push (world units)
	HelperSeparationStep = 0.5

	// HelperFrameStep is animation phase advance per tick at full speed
	HelperFrameStep = 0.4
)

// Bow
const (
	// BowRangeCells is the distance (cells) inside which a bowman considers firing
	BowRangeCells = 5.8

	// BowSightCells is the line-of-sight distance (cells). Distance only, no wall test
	BowSightCells = 3.3

	// BowCooldownTicks is ticks between arrows
	BowCooldownTicks = 120

	// BowRecoilTicks is the cooldown value above which the bowman is throttled
	BowRecoilTicks = 80

	// BowRecoilSpeedFactor is the speed multiplier while recoiling
	BowRecoilSpeedFactor = 0.2
)

// Staff
const (
	// StaffRangeCells is the distance (cells) inside which the caster throws its orb
	StaffRangeCells = 5.0

	// StaffThrowCooldownTicks is cooldown after throwing
	StaffThrowCooldownTicks = 20

	// StaffCatchCooldownTicks is cooldown after catching the orb back
	StaffCatchCooldownTicks = 30

	// StaffCatchRadius is the distance (world units) at which the caster recovers its orb
	StaffCatchRadius = 20.0

	// StaffOrbRestSpeed is the orb speed (units/tick) under which it counts as returning
	StaffOrbRestSpeed = 1.0
)
