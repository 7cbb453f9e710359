package system

import (
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/milk9111/dungeon/ecs"
	"github.com/milk9111/dungeon/ecs/component"
)

// DirectionChooser picks the direction an enemy takes after hitting an
// obstacle.
type DirectionChooser interface {
	Choose(current component.Direction) component.Direction
}

// RandomDirections picks uniformly over all four directions, the current one
// included.
type RandomDirections struct {
	rng *rand.Rand
}

// NewRandomDirections returns a chooser seeded with seed. Seed 0 uses the
// process-wide source.
func NewRandomDirections(seed uint64) *RandomDirections {
	if seed == 0 {
		return &RandomDirections{}
	}
	return &RandomDirections{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (r *RandomDirections) Choose(component.Direction) component.Direction {
	n := len(component.Directions)
	if r == nil || r.rng == nil {
		return component.Directions[rand.IntN(n)]
	}
	return component.Directions[r.rng.IntN(n)]
}

// EnemyWanderSystem rerolls the direction of blocked enemies and drives every
// wandering enemy at its speed along its direction.
type EnemyWanderSystem struct {
	random  DirectionChooser
	scripts *WanderScripts
	log     *zap.Logger
}

func NewEnemyWanderSystem(random DirectionChooser, scripts *WanderScripts, log *zap.Logger) *EnemyWanderSystem {
	if random == nil {
		random = NewRandomDirections(0)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &EnemyWanderSystem{random: random, scripts: scripts, log: log}
}

func (s *EnemyWanderSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach2(w, component.WanderComponent.Kind(), component.VelocityComponent.Kind(), func(e ecs.Entity, wander *component.Wander, vel *component.Velocity) {
		if wander.Blocked {
			wander.Direction = s.next(e, wander)
			wander.Blocked = false
		}
		vel.Set(wander.Velocity())
	})
}

func (s *EnemyWanderSystem) next(e ecs.Entity, wander *component.Wander) component.Direction {
	if wander.Script != "" && s.scripts != nil {
		d, err := s.scripts.Choose(wander.Script, wander.Direction)
		if err == nil {
			return d
		}
		s.log.Warn("wander: script failed, using random direction",
			zap.Stringer("entity", e),
			zap.String("script", wander.Script),
			zap.Error(err))
	}
	return s.random.Choose(wander.Direction)
}
