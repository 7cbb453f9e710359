package system

import (
	"github.com/milk9111/dungeon/ecs"
	"github.com/milk9111/dungeon/ecs/component"
)

// MotionFaint is the terminal animation played on death.
const MotionFaint = "faint"

// PlayerHealthSystem advances the damage recovery timer and clears the hit
// tint when the player returns to idle.
type PlayerHealthSystem struct{}

func NewPlayerHealthSystem() *PlayerHealthSystem {
	return &PlayerHealthSystem{}
}

func (s *PlayerHealthSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Delta()
	ecs.ForEach2(w, component.HealthComponent.Kind(), component.PlayerTagComponent.Kind(), func(e ecs.Entity, h *component.Health, _ *component.PlayerTag) {
		if h.Tick(dt) {
			ecs.Remove(w, e, component.HitTintComponent.Kind())
		}
	})
}

// HandlePlayerDamage applies one hit to the player. A surviving player is
// pushed along (knockX, knockY) and tinted; a killed player stops and faints.
// Hits while recovering or dead are rejected without side effects.
func HandlePlayerDamage(w *ecs.World, e ecs.Entity, knockX, knockY float64) component.DamageOutcome {
	h, ok := ecs.Get(w, e, component.HealthComponent.Kind())
	if !ok {
		return component.DamageRejected
	}

	out := h.Damage()
	vel, _ := ecs.Get(w, e, component.VelocityComponent.Kind())
	switch out {
	case component.DamageKilled:
		if vel != nil {
			vel.Zero()
		}
		ecs.Remove(w, e, component.HitTintComponent.Kind())
		if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
			anim.Play(playerPrefix(w, e) + "-" + MotionFaint)
		}
	case component.DamageHurt:
		if vel != nil {
			vel.Set(knockX, knockY)
		}
		_ = ecs.Add(w, e, component.HitTintComponent.Kind(), &component.HitTint{})
	}
	return out
}

func playerPrefix(w *ecs.World, e ecs.Entity) string {
	if p, ok := ecs.Get(w, e, component.PlayerComponent.Kind()); ok && p.AnimPrefix != "" {
		return p.AnimPrefix
	}
	return "player"
}
