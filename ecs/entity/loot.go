package entity

import (
	"fmt"

	"github.com/milk9111/dungeon/ecs"
	"github.com/milk9111/dungeon/ecs/component"
	"github.com/milk9111/dungeon/prefabs"
)

// NewChest spawns a closed loot container. coins <= 0 uses the prefab value.
func NewChest(w *ecs.World, spec prefabs.LootSpec, x, y float64, coins int) (ecs.Entity, error) {
	if coins <= 0 {
		coins = spec.Coins
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.LootComponent.Kind(), &component.Loot{Coins: coins}); err != nil {
		return 0, fmt.Errorf("chest: add loot: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		return 0, fmt.Errorf("chest: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.AnimationComponent.Kind(), &component.Animation{Current: component.LootClosedAnimation}); err != nil {
		return 0, fmt.Errorf("chest: add animation: %w", err)
	}
	if err := ecs.Add(w, e, component.BodyComponent.Kind(), &component.Body{
		Category: component.CategoryLoot,
		Width:    spec.Collider.Width,
		Height:   spec.Collider.Height,
		Static:   true,
	}); err != nil {
		return 0, fmt.Errorf("chest: add body: %w", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Color: spec.Color.NRGBA}); err != nil {
		return 0, fmt.Errorf("chest: add sprite: %w", err)
	}
	return e, nil
}
