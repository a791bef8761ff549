package parameter

// Navigation - Flow Field
const (
	// FlowFieldCadence is simulation ticks between flow field recomputations
	FlowFieldCadence = 15

	// SafeRadiusCells is the distance (cells) inside which pursuers beeline to the player
	// and walls dissolve around the player
	SafeRadiusCells = 2.0

	// SteerArrivalEpsilon is the remaining distance (world units) below which an entity holds position
	SteerArrivalEpsilon = 1.0

	// SteerTurnSmoothing is the per-tick fraction of the angular gap closed when turning
	SteerTurnSmoothing = 0.2

	// SteerFrozenTurnSmoothing is the turn fraction for a pursuer rooted in place
	SteerFrozenTurnSmoothing = 0.1
)
