package entity

import (
	"fmt"

	"github.com/milk9111/dungeon/ecs"
	"github.com/milk9111/dungeon/ecs/component"
	"github.com/milk9111/dungeon/prefabs"
)

const projectileLayer = 3

// NewProjectilePool creates the pooled projectiles and attaches the pool to
// owner. Every slot starts inactive, hidden and outside the physics space.
func NewProjectilePool(w *ecs.World, owner ecs.Entity, spec prefabs.ProjectileSpec) ([]ecs.Entity, error) {
	capacity := spec.Capacity
	if capacity <= 0 {
		capacity = component.DefaultProjectileCapacity
	}

	pool := &component.ProjectilePool{Slots: make([]uint64, 0, capacity)}
	slots := make([]ecs.Entity, 0, capacity)
	for i := 0; i < capacity; i++ {
		e := ecs.CreateEntity(w)
		if err := addProjectile(w, e, owner, spec); err != nil {
			return nil, fmt.Errorf("projectile %d: %w", i, err)
		}
		pool.Slots = append(pool.Slots, uint64(e))
		slots = append(slots, e)
	}

	if err := ecs.Add(w, owner, component.ProjectilePoolComponent.Kind(), pool); err != nil {
		return nil, fmt.Errorf("projectile pool: %w", err)
	}
	return slots, nil
}

func addProjectile(w *ecs.World, e, owner ecs.Entity, spec prefabs.ProjectileSpec) error {
	if err := ecs.Add(w, e, component.ProjectileComponent.Kind(), &component.Projectile{Pool: uint64(owner)}); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{}); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{}); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
		Color:  spec.Color.NRGBA,
		Hidden: true,
		Layer:  projectileLayer,
	}); err != nil {
		return err
	}
	return ecs.Add(w, e, component.BodyComponent.Kind(), &component.Body{
		Category: component.CategoryProjectile,
		Width:    spec.Collider.Width,
		Height:   spec.Collider.Height,
		Sensor:   true,
		Disabled: true,
	})
}
