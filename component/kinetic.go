package component

// Body is the movable part of every pursuer
type Body struct {
	X, Y  float64 // World position
	Angle float64 // Smoothed facing, radians
	Frame float64 // Animation phase, advanced while moving
}
