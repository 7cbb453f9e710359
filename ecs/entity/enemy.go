package entity

import (
	"fmt"

	"github.com/milk9111/dungeon/ecs"
	"github.com/milk9111/dungeon/ecs/component"
	"github.com/milk9111/dungeon/prefabs"
)

const enemyLayer = 1

// NewLizard spawns a wandering enemy at (x, y).
func NewLizard(w *ecs.World, spec prefabs.EnemySpec, x, y float64) (ecs.Entity, error) {
	dir := component.DirectionRight
	if spec.Direction != "" {
		d, ok := component.ParseDirection(spec.Direction)
		if !ok {
			return 0, fmt.Errorf("enemy: unknown direction %q", spec.Direction)
		}
		dir = d
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.EnemyTagComponent.Kind(), &component.EnemyTag{}); err != nil {
		return 0, fmt.Errorf("enemy: add tag: %w", err)
	}
	if err := ecs.Add(w, e, component.WanderComponent.Kind(), &component.Wander{
		Direction: dir,
		Speed:     spec.Speed,
		Script:    spec.Script,
	}); err != nil {
		return 0, fmt.Errorf("enemy: add wander: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		return 0, fmt.Errorf("enemy: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{}); err != nil {
		return 0, fmt.Errorf("enemy: add velocity: %w", err)
	}
	if err := ecs.Add(w, e, component.AnimationComponent.Kind(), &component.Animation{Current: spec.Name + "-" + component.MotionIdle}); err != nil {
		return 0, fmt.Errorf("enemy: add animation: %w", err)
	}
	if err := ecs.Add(w, e, component.BodyComponent.Kind(), &component.Body{
		Category: component.CategoryEnemy,
		Width:    spec.Collider.Width,
		Height:   spec.Collider.Height,
	}); err != nil {
		return 0, fmt.Errorf("enemy: add body: %w", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Color: spec.Color.NRGBA, Layer: enemyLayer}); err != nil {
		return 0, fmt.Errorf("enemy: add sprite: %w", err)
	}
	return e, nil
}
