package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/maze-chase/component"
	"github.com/lixenwraith/maze-chase/parameter"
)

func newTestProjectiles() *ProjectileSystem {
	return NewProjectileSystem(parameter.ScaleForCellSize(60), 600, 600)
}

func TestFireVelocityByKind(t *testing.T) {
	ps := newTestProjectiles()
	tests := []struct {
		kind  component.ProjectileKind
		speed float64
	}{
		{component.ProjectileBullet, parameter.BulletSpeedBase},
		{component.ProjectileArrow, parameter.ArrowSpeedBase},
		{component.ProjectileOrb, parameter.OrbSpeedBase},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			p := ps.Fire(100, 200, math.Pi/2, tt.kind, 7)
			assert.Equal(t, tt.kind, p.Kind)
			assert.Equal(t, 7, p.Owner)
			assert.True(t, p.Alive)
			assert.Equal(t, 100.0, p.X)
			assert.InDelta(t, 0, p.VX, 1e-9)
			assert.InDelta(t, tt.speed, p.VY, 1e-9)
		})
	}
}

func TestOrbDecay(t *testing.T) {
	ps := newTestProjectiles()
	p := ps.Fire(0, 0, 0.7, component.ProjectileOrb, 1)
	s := ps.Speed(component.ProjectileOrb)

	for n := 1; n <= 60; n++ {
		Advance(&p)
		want := s * math.Pow(parameter.OrbDecay, float64(n))
		require.InDelta(t, want, math.Hypot(p.VX, p.VY), 1e-9, "tick %d", n)
	}
}

func TestStraightShotsKeepSpeed(t *testing.T) {
	ps := newTestProjectiles()
	for _, kind := range []component.ProjectileKind{component.ProjectileBullet, component.ProjectileArrow} {
		p := ps.Fire(10, 10, 0, kind, 1)
		for i := 0; i < 5; i++ {
			Advance(&p)
		}
		assert.InDelta(t, 10+5*ps.Speed(kind), p.X, 1e-9)
		assert.InDelta(t, ps.Speed(kind), p.VX, 1e-12)
	}
}

func TestRetire(t *testing.T) {
	ps := newTestProjectiles()
	list := []component.Projectile{
		{Kind: component.ProjectileBullet, X: 300, Y: 300, Alive: true},
		{Kind: component.ProjectileBullet, X: -51, Y: 300, Alive: true},
		{Kind: component.ProjectileArrow, X: 640, Y: 300, Alive: true},   // inside margin
		{Kind: component.ProjectileArrow, X: 300, Y: 651, Alive: true},   // past margin
		{Kind: component.ProjectileOrb, X: -5000, Y: -5000, Alive: true}, // orbs ignore bounds
		{Kind: component.ProjectileOrb, X: 300, Y: 300, Alive: false},
		{Kind: component.ProjectileBullet, X: 300, Y: 300, Alive: false}, // shots ignore the flag
	}

	kept := ps.Retire(list)
	require.Len(t, kept, 4)
	assert.Equal(t, 300.0, kept[0].X)
	assert.Equal(t, 640.0, kept[1].X)
	assert.Equal(t, component.ProjectileOrb, kept[2].Kind)
	assert.Equal(t, component.ProjectileBullet, kept[3].Kind)

	// Tail cleared
	for i := len(kept); i < len(list); i++ {
		assert.Equal(t, component.Projectile{}, list[i])
	}
}

func TestHitRadius(t *testing.T) {
	ps := newTestProjectiles()
	assert.InDelta(t, 15, ps.HitRadius(component.ProjectileOrb), 1e-9)
	assert.InDelta(t, 9.6, ps.HitRadius(component.ProjectileArrow), 1e-9)
	assert.InDelta(t, 9.6, ps.HitRadius(component.ProjectileBullet), 1e-9)
}

func TestFindOrb(t *testing.T) {
	list := []component.Projectile{
		{Kind: component.ProjectileArrow, Owner: 3, Alive: true},
		{Kind: component.ProjectileOrb, Owner: 2, Alive: false},
		{Kind: component.ProjectileOrb, Owner: 3, Alive: true, X: 9},
	}
	orb := FindOrb(list, 3)
	require.NotNil(t, orb)
	assert.Equal(t, 9.0, orb.X)
	assert.Same(t, &list[2], orb)

	assert.Nil(t, FindOrb(list, 2))
	assert.Nil(t, FindOrb(nil, 1))
}
