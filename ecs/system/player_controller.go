package system

import (
	"math"

	"go.uber.org/zap"

	"github.com/milk9111/dungeon/ecs"
	"github.com/milk9111/dungeon/ecs/component"
	"github.com/milk9111/dungeon/event"
)

const (
	DefaultMoveSpeed  = 100.0
	DefaultThrowSpeed = 300.0
)

// PlayerControllerSystem turns the input snapshot into movement, loot
// interaction and throws. Nothing is processed while the player is
// recovering from a hit or dead.
type PlayerControllerSystem struct {
	events *event.Channel
	log    *zap.Logger
}

func NewPlayerControllerSystem(events *event.Channel, log *zap.Logger) *PlayerControllerSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &PlayerControllerSystem{events: events, log: log}
}

func (s *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach4(w,
		component.PlayerComponent.Kind(),
		component.InputComponent.Kind(),
		component.HealthComponent.Kind(),
		component.VelocityComponent.Kind(),
		func(e ecs.Entity, p *component.Player, in *component.Input, h *component.Health, vel *component.Velocity) {
			if !h.CanAct() {
				return
			}
			facing, _ := ecs.Get(w, e, component.FacingComponent.Kind())
			anim, _ := ecs.Get(w, e, component.AnimationComponent.Kind())

			s.move(p, in, vel, facing, anim)
			if in.Confirm {
				s.interact(w, e, p, facing)
			}
		})
}

func (s *PlayerControllerSystem) move(p *component.Player, in *component.Input, vel *component.Velocity, facing *component.Facing, anim *component.Animation) {
	prefix := p.AnimPrefix
	if prefix == "" {
		prefix = "player"
	}

	rule, moving := component.ResolveMove(in)
	if !moving {
		vel.Zero()
		suffix := ""
		if anim != nil {
			suffix = component.FacingSuffix(anim.Current)
		}
		if suffix == "" {
			suffix = component.DirectionDown.Suffix()
			if facing != nil {
				suffix = facing.Dir.Suffix()
			}
		}
		anim.Play(component.AnimationKey(prefix, component.MotionIdle, suffix))
		return
	}

	speed := p.MoveSpeed
	if speed <= 0 {
		speed = DefaultMoveSpeed
	}
	ux, uy := rule.Dir.Unit()
	vel.Set(ux*speed, uy*speed)

	if facing != nil {
		facing.Dir = rule.Dir
		if rule.Dir == component.DirectionLeft || rule.Dir == component.DirectionRight {
			facing.FlipX = rule.FlipX
		}
	}
	anim.Play(component.AnimationKey(prefix, component.MotionRun, rule.Dir.Suffix()))

	// walking away from a chest cancels the pending interaction
	p.ActiveLoot = 0
}

// interact opens the overlapped loot container if there is one, otherwise
// throws. A single press never does both.
func (s *PlayerControllerSystem) interact(w *ecs.World, e ecs.Entity, p *component.Player, facing *component.Facing) {
	if p.ActiveLoot != 0 {
		target := ecs.Entity(p.ActiveLoot)
		p.ActiveLoot = 0
		if loot, ok := ecs.Get(w, target, component.LootComponent.Kind()); ok {
			coins := loot.Open()
			if coins > 0 {
				p.Coins += coins
				s.log.Debug("player: opened loot", zap.Stringer("loot", target), zap.Int("coins", p.Coins))
				if s.events != nil {
					s.events.Emit(event.CoinsChanged, p.Coins)
				}
			}
			return
		}
	}
	s.throw(w, e, p, facing)
}

func (s *PlayerControllerSystem) throw(w *ecs.World, e ecs.Entity, p *component.Player, facing *component.Facing) {
	dir := component.DirectionDown
	if facing != nil {
		dir = facing.Dir
	}

	proj, ok := AcquireProjectile(w, ecs.Entity(p.Weapon))
	if !ok {
		return
	}

	dx, dy := dir.Unit()
	speed := p.ThrowSpeed
	if speed <= 0 {
		speed = DefaultThrowSpeed
	}

	if t, ok := ecs.Get(w, proj, component.TransformComponent.Kind()); ok {
		if from, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			t.X = from.X
			t.Y = from.Y
		}
		t.Rotation = math.Atan2(dy, dx)
	}
	if vel, ok := ecs.Get(w, proj, component.VelocityComponent.Kind()); ok {
		vel.Set(dx*speed, dy*speed)
	}
}
