package system

import (
	"github.com/milk9111/dungeon/ecs"
	"github.com/milk9111/dungeon/ecs/component"
)

// AcquireProjectile promotes an inactive slot of pool to active and returns
// it. It reports false when every slot is already in flight.
func AcquireProjectile(w *ecs.World, pool ecs.Entity) (ecs.Entity, bool) {
	p, ok := ecs.Get(w, pool, component.ProjectilePoolComponent.Kind())
	if !ok {
		return 0, false
	}
	for _, slot := range p.Slots {
		e := ecs.Entity(slot)
		proj, ok := ecs.Get(w, e, component.ProjectileComponent.Kind())
		if !ok || proj.Active {
			continue
		}
		proj.Active = true
		if body, ok := ecs.Get(w, e, component.BodyComponent.Kind()); ok {
			body.Disabled = false
			body.Teleport = true
		}
		if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
			sprite.Hidden = false
		}
		return e, true
	}
	return 0, false
}

// ReleaseProjectile returns e to its pool: inactive, hidden, stopped and out
// of the physics space. Releasing an inactive projectile does nothing and
// reports false.
func ReleaseProjectile(w *ecs.World, e ecs.Entity) bool {
	proj, ok := ecs.Get(w, e, component.ProjectileComponent.Kind())
	if !ok || !proj.Active {
		return false
	}
	proj.Active = false
	if body, ok := ecs.Get(w, e, component.BodyComponent.Kind()); ok {
		body.Disabled = true
	}
	if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		sprite.Hidden = true
	}
	if vel, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
		vel.Zero()
	}
	return true
}

// ActiveProjectiles counts the in-flight slots of pool.
func ActiveProjectiles(w *ecs.World, pool ecs.Entity) int {
	p, ok := ecs.Get(w, pool, component.ProjectilePoolComponent.Kind())
	if !ok {
		return 0
	}
	n := 0
	for _, slot := range p.Slots {
		if proj, ok := ecs.Get(w, ecs.Entity(slot), component.ProjectileComponent.Kind()); ok && proj.Active {
			n++
		}
	}
	return n
}
