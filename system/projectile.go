package system

import (
	"github.com/lixenwraith/maze-chase/component"
	"github.com/lixenwraith/maze-chase/parameter"
	"github.com/lixenwraith/maze-chase/vmath"
)

// ProjectileSystem manages ranged attack lifecycle
// Bullets and arrows fly straight and retire past the viewport margin
// Orbs decelerate and retire only when their caster clears Alive
type ProjectileSystem struct {
	scale         parameter.Scale
	width, height float64
}

func NewProjectileSystem(scale parameter.Scale, width, height float64) *ProjectileSystem {
	return &ProjectileSystem{scale: scale, width: width, height: height}
}

func (s *ProjectileSystem) Name() string { return "projectile" }

// SetBounds applies a new scale and viewport after resize
func (s *ProjectileSystem) SetBounds(scale parameter.Scale, width, height float64) {
	s.scale = scale
	s.width = width
	s.height = height
}

// Speed returns the launch speed of a projectile kind
func (s *ProjectileSystem) Speed(kind component.ProjectileKind) float64 {
	switch kind {
	case component.ProjectileArrow:
		return s.scale.ArrowSpeed
	case component.ProjectileOrb:
		return s.scale.OrbSpeed
	default:
		return s.scale.BulletSpeed
	}
}

// HitRadius returns the projectile-vs-player hit radius of a kind
func (s *ProjectileSystem) HitRadius(kind component.ProjectileKind) float64 {
	switch kind {
	case component.ProjectileOrb:
		return s.scale.Cells(parameter.OrbHitCells)
	default:
		return s.scale.Cells(parameter.ShotHitCells)
	}
}

// Fire creates a projectile at (x, y) moving along angle at the kind's speed
func (s *ProjectileSystem) Fire(x, y, angle float64, kind component.ProjectileKind, owner int) component.Projectile {
	vx, vy := vmath.FromAngle(angle, s.Speed(kind))
	return component.Projectile{
		Kind:  kind,
		Owner: owner,
		X:     x,
		Y:     y,
		VX:    vx,
		VY:    vy,
		Alive: true,
	}
}

// Advance moves a projectile one tick; orbs then lose speed
func Advance(p *component.Projectile) {
	p.X += p.VX
	p.Y += p.VY

	switch p.Kind {
	case component.ProjectileOrb:
		p.VX *= parameter.OrbDecay
		p.VY *= parameter.OrbDecay
	case component.ProjectileBullet, component.ProjectileArrow:
	}
}

// Retire filters spent projectiles in place and returns the shortened slice
func (s *ProjectileSystem) Retire(list []component.Projectile) []component.Projectile {
	kept := list[:0]
	for _, p := range list {
		if s.spent(&p) {
			continue
		}
		kept = append(kept, p)
	}
	// Clear the tail
	for i := len(kept); i < len(list); i++ {
		list[i] = component.Projectile{}
	}
	return kept
}

func (s *ProjectileSystem) spent(p *component.Projectile) bool {
	switch p.Kind {
	case component.ProjectileOrb:
		return !p.Alive
	default:
		m := parameter.ProjectileBoundsMargin
		return p.X < -m || p.X > s.width+m || p.Y < -m || p.Y > s.height+m
	}
}

// FindOrb returns the orb owned by caster id, nil if none is live
func FindOrb(list []component.Projectile, owner int) *component.Projectile {
	for i := range list {
		p := &list[i]
		if p.Kind == component.ProjectileOrb && p.Owner == owner && p.Alive {
			return p
		}
	}
	return nil
}
