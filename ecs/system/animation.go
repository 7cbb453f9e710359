package system

import (
	"github.com/milk9111/dungeon/ecs"
	"github.com/milk9111/dungeon/ecs/component"
)

// AnimationSystem selects keys for entities whose presentation follows their
// state rather than their input. Player keys are chosen by the controller.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.LootComponent.Kind(), component.AnimationComponent.Kind(), func(_ ecs.Entity, loot *component.Loot, anim *component.Animation) {
		if loot.Opened {
			anim.Play(component.LootOpenedAnimation)
			return
		}
		anim.Play(component.LootClosedAnimation)
	})
}
