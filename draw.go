package main

import (
	"fmt"
	"image/color"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/dungeon/ecs"
	"github.com/milk9111/dungeon/ecs/component"
)

var (
	floorColor = color.NRGBA{R: 0x1c, G: 0x18, B: 0x20, A: 0xff}
	hitColor   = color.NRGBA{R: 0xff, G: 0x40, B: 0x40, A: 0xff}
)

type drawable struct {
	e      ecs.Entity
	sprite *component.Sprite
	t      *component.Transform
	body   *component.Body
}

// drawWorld fills every visible collider with its sprite color, lowest layer
// first. The player is tinted while HitTint is present.
func drawWorld(screen *ebiten.Image, w *ecs.World, debug bool) {
	screen.Fill(floorColor)

	var items []drawable
	ecs.ForEach3(w, component.SpriteComponent.Kind(), component.TransformComponent.Kind(), component.BodyComponent.Kind(),
		func(e ecs.Entity, s *component.Sprite, t *component.Transform, b *component.Body) {
			if s.Hidden {
				return
			}
			items = append(items, drawable{e: e, sprite: s, t: t, body: b})
		})
	slices.SortStableFunc(items, func(a, b drawable) int { return a.sprite.Layer - b.sprite.Layer })

	for _, it := range items {
		x := float32(it.t.X - it.body.Width/2)
		y := float32(it.t.Y - it.body.Height/2)
		c := it.sprite.Color
		if ecs.Has(w, it.e, component.HitTintComponent.Kind()) {
			c = hitColor
		}
		vector.FillRect(screen, x, y, float32(it.body.Width), float32(it.body.Height), c, false)
		if debug {
			vector.StrokeRect(screen, x, y, float32(it.body.Width), float32(it.body.Height), 1, colornames.Yellow, false)
		}
	}

	if debug {
		drawDebug(screen, w)
	}
}

func drawDebug(screen *ebiten.Image, w *ecs.World) {
	player, ok := ecs.First(w, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	text := fmt.Sprintf("frame %d", w.Frame())
	if h, ok := ecs.Get(w, player, component.HealthComponent.Kind()); ok {
		text += fmt.Sprintf("  state %s  hp %d", h.State, h.Current)
	}
	anim, _ := ecs.Get(w, player, component.AnimationComponent.Kind())
	if anim != nil {
		text += "  anim " + anim.Current
	}
	ebitenutil.DebugPrintAt(screen, text, 4, screen.Bounds().Dy()-16)
}

func drawBanner(screen *ebiten.Image, msg string) {
	b := screen.Bounds()
	vector.FillRect(screen, 0, float32(b.Dy()/2-12), float32(b.Dx()), 24, color.NRGBA{A: 180}, false)
	ebitenutil.DebugPrintAt(screen, msg, 8, b.Dy()/2-8)
}
