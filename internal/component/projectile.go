// internal/component/projectile.go
package component

import (
	"wizard-td/internal/config"
	"wizard-td/internal/types"
)

// Projectile: огненный шар, летящий за конкретным монстром.
type Projectile struct {
	ID              types.EntityID
	Position        Position
	Target          *Monster
	Damage          float64
	Speed           float64
	SpeedMultiplier float64
	reached         bool
}

func NewProjectile(from Position, target *Monster, damage, speedMul float64) *Projectile {
	return &Projectile{
		Position:        from,
		Target:          target,
		Damage:          damage,
		Speed:           config.ProjectileSpeed,
		SpeedMultiplier: speedMul,
	}
}

// Reached: снаряд долетел или потерял цель и должен быть удалён
func (p *Projectile) Reached() bool { return p.reached }

// Tick двигает снаряд к цели. Убранная из мира цель считается достигнутой,
// урон при этом не наносится.
func (p *Projectile) Tick() {
	if p.reached {
		return
	}
	if p.Target == nil || p.Target.Dead() {
		p.reached = true
		return
	}
	if p.Position.Dist(p.Target.Position) < config.ProjectileHitRadius {
		p.reached = true
		p.Target.RemoveHP(p.Damage)
		return
	}
	p.Position.StepToward(p.Target.Position, p.Speed*p.SpeedMultiplier)
}
