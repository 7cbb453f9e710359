package entity

import (
	"fmt"
	"time"

	"github.com/milk9111/dungeon/ecs"
	"github.com/milk9111/dungeon/ecs/component"
	"github.com/milk9111/dungeon/prefabs"
)

const playerLayer = 2

// NewPlayer spawns the player at (x, y) together with its projectile pool.
func NewPlayer(w *ecs.World, spec prefabs.PlayerSpec, weapon prefabs.ProjectileSpec, x, y float64) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)

	facing, ok := component.ParseDirection(spec.Facing)
	if !ok {
		facing = component.DirectionDown
	}
	prefix := spec.AnimPrefix
	if prefix == "" {
		prefix = spec.Name
	}

	health := component.NewHealth(spec.Health)
	if spec.RecoverMS > 0 {
		health.Recover = time.Duration(spec.RecoverMS) * time.Millisecond
	}

	steps := []struct {
		name string
		add  func() error
	}{
		{"tag", func() error { return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}) }},
		{"player", func() error {
			return ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{
				MoveSpeed:  spec.MoveSpeed,
				ThrowSpeed: spec.ThrowSpeed,
				AnimPrefix: prefix,
				Weapon:     uint64(e),
			})
		}},
		{"transform", func() error { return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}) }},
		{"velocity", func() error { return ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{}) }},
		{"health", func() error { return ecs.Add(w, e, component.HealthComponent.Kind(), health) }},
		{"facing", func() error {
			return ecs.Add(w, e, component.FacingComponent.Kind(), &component.Facing{Dir: facing, FlipX: facing == component.DirectionLeft})
		}},
		{"input", func() error { return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}) }},
		{"animation", func() error {
			return ecs.Add(w, e, component.AnimationComponent.Kind(), &component.Animation{
				Current: component.AnimationKey(prefix, component.MotionIdle, facing.Suffix()),
				Changed: true,
			})
		}},
		{"body", func() error {
			return ecs.Add(w, e, component.BodyComponent.Kind(), &component.Body{
				Category: component.CategoryPlayer,
				Width:    spec.Collider.Width,
				Height:   spec.Collider.Height,
			})
		}},
		{"sprite", func() error {
			return ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Color: spec.Color.NRGBA, Layer: playerLayer})
		}},
	}
	for _, step := range steps {
		if err := step.add(); err != nil {
			return 0, fmt.Errorf("player: add %s: %w", step.name, err)
		}
	}

	if _, err := NewProjectilePool(w, e, weapon); err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	return e, nil
}
