package entity

import (
	"image/color"

	"golang.org/x/image/colornames"

	"github.com/milk9111/dungeon/ecs"
	"github.com/milk9111/dungeon/ecs/component"
	"github.com/milk9111/dungeon/levels"
)

var wallColor = color.NRGBA{R: colornames.Darkslategray.R, G: colornames.Darkslategray.G, B: colornames.Darkslategray.B, A: 255}

// NewWall spawns a static wall covering r.
func NewWall(w *ecs.World, r levels.Rect) (ecs.Entity, error) {
	x, y := r.Center()
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.BodyComponent.Kind(), &component.Body{
		Category: component.CategoryWall,
		Width:    r.W,
		Height:   r.H,
		Static:   true,
	}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Color: wallColor}); err != nil {
		return 0, err
	}
	return e, nil
}
