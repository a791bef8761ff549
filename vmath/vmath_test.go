package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAngleDiffShortestArc(t *testing.T) {
	tests := []struct {
		name     string
		from, to float64
		want     float64
	}{
		{"zero", 0, 0, 0},
		{"quarter", 0, math.Pi / 2, math.Pi / 2},
		{"wrap positive", 3, -3, 2*math.Pi - 6},
		{"wrap negative", -3, 3, 6 - 2*math.Pi},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, AngleDiff(tt.from, tt.to), 1e-9)
		})
	}
}

func TestSmoothAngle(t *testing.T) {
	assert.InDelta(t, 0.2, SmoothAngle(0, 1, 0.2), 1e-12)

	// Crossing the ±π seam turns the short way
	assert.Greater(t, SmoothAngle(3, -3, 0.5), 3.0)
}

func TestNormalize2D(t *testing.T) {
	x, y := Normalize2D(3, 4)
	assert.InDelta(t, 0.6, x, 1e-12)
	assert.InDelta(t, 0.8, y, 1e-12)

	x, y = Normalize2D(0, 0)
	assert.Zero(t, x)
	assert.Zero(t, y)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-1, 0, 10))
	assert.Equal(t, 10.0, Clamp(11, 0, 10))
	assert.Equal(t, 5.0, Clamp(5, 0, 10))
}

func TestFastRandDeterministic(t *testing.T) {
	a := NewFastRand(42)
	b := NewFastRand(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}

	r := NewFastRand(7)
	for i := 0; i < 1000; i++ {
		f := r.Float64()
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 1.0)
	}
	assert.Zero(t, r.Intn(0))
}
