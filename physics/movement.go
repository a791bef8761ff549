package physics

import (
	"math"

	"github.com/lixenwraith/maze-chase/component"
	"github.com/lixenwraith/maze-chase/parameter"
	"github.com/lixenwraith/maze-chase/vmath"
)

// MoveToward advances b by speed along the line to (tx, ty) and eases its facing toward the movement angle
// Holds position once within SteerArrivalEpsilon to avoid jitter; facing still turns
// Returns the raw movement angle
func MoveToward(b *component.Body, tx, ty, speed float64) float64 {
	dx := tx - b.X
	dy := ty - b.Y
	angle := math.Atan2(dy, dx)

	if vmath.Magnitude(dx, dy) > parameter.SteerArrivalEpsilon {
		vx, vy := vmath.FromAngle(angle, speed)
		b.X += vx
		b.Y += vy
	}

	b.Angle = vmath.SmoothAngle(b.Angle, angle, parameter.SteerTurnSmoothing)
	return angle
}

// TurnToward eases facing toward (tx, ty) without moving
func TurnToward(b *component.Body, tx, ty, factor float64) {
	angle := math.Atan2(ty-b.Y, tx-b.X)
	b.Angle = vmath.SmoothAngle(b.Angle, angle, factor)
}
