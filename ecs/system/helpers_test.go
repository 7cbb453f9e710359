package system

import (
	"testing"

	"github.com/milk9111/dungeon/ecs"
	"github.com/milk9111/dungeon/ecs/component"
)

func mustAdd[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T], v *T) {
	t.Helper()
	if err := ecs.Add(w, e, kind, v); err != nil {
		t.Fatalf("add component: %v", err)
	}
}

func newTestPlayer(t *testing.T, w *ecs.World, x, y float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
	mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y})
	mustAdd(t, w, e, component.VelocityComponent.Kind(), &component.Velocity{})
	mustAdd(t, w, e, component.HealthComponent.Kind(), component.NewHealth(3))
	mustAdd(t, w, e, component.FacingComponent.Kind(), &component.Facing{Dir: component.DirectionDown})
	mustAdd(t, w, e, component.InputComponent.Kind(), &component.Input{})
	mustAdd(t, w, e, component.AnimationComponent.Kind(), &component.Animation{Current: "faune-idle-down"})
	mustAdd(t, w, e, component.BodyComponent.Kind(), &component.Body{Category: component.CategoryPlayer, Width: 16, Height: 22})
	mustAdd(t, w, e, component.PlayerComponent.Kind(), &component.Player{
		MoveSpeed:  DefaultMoveSpeed,
		ThrowSpeed: DefaultThrowSpeed,
		AnimPrefix: "faune",
	})
	return e
}

// newTestPool creates n pooled projectiles and attaches the pool to owner.
func newTestPool(t *testing.T, w *ecs.World, owner ecs.Entity, n int) []ecs.Entity {
	t.Helper()
	pool := &component.ProjectilePool{}
	slots := make([]ecs.Entity, 0, n)
	for i := 0; i < n; i++ {
		e := ecs.CreateEntity(w)
		mustAdd(t, w, e, component.ProjectileComponent.Kind(), &component.Projectile{Pool: uint64(owner)})
		mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{})
		mustAdd(t, w, e, component.VelocityComponent.Kind(), &component.Velocity{})
		mustAdd(t, w, e, component.SpriteComponent.Kind(), &component.Sprite{Hidden: true})
		mustAdd(t, w, e, component.BodyComponent.Kind(), &component.Body{
			Category: component.CategoryProjectile, Width: 6, Height: 6, Sensor: true, Disabled: true,
		})
		pool.Slots = append(pool.Slots, uint64(e))
		slots = append(slots, e)
	}
	mustAdd(t, w, owner, component.ProjectilePoolComponent.Kind(), pool)
	if p, ok := ecs.Get(w, owner, component.PlayerComponent.Kind()); ok {
		p.Weapon = uint64(owner)
	}
	return slots
}

func newTestEnemy(t *testing.T, w *ecs.World, x, y float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.EnemyTagComponent.Kind(), &component.EnemyTag{})
	mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y})
	mustAdd(t, w, e, component.VelocityComponent.Kind(), &component.Velocity{})
	mustAdd(t, w, e, component.WanderComponent.Kind(), &component.Wander{Direction: component.DirectionRight, Speed: 50})
	mustAdd(t, w, e, component.BodyComponent.Kind(), &component.Body{Category: component.CategoryEnemy, Width: 16, Height: 16})
	return e
}

func newTestWall(t *testing.T, w *ecs.World, x, y, width, height float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y})
	mustAdd(t, w, e, component.BodyComponent.Kind(), &component.Body{
		Category: component.CategoryWall, Width: width, Height: height, Static: true,
	})
	return e
}

func newTestLoot(t *testing.T, w *ecs.World, x, y float64, coins int) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y})
	mustAdd(t, w, e, component.LootComponent.Kind(), &component.Loot{Coins: coins})
	mustAdd(t, w, e, component.AnimationComponent.Kind(), &component.Animation{})
	mustAdd(t, w, e, component.BodyComponent.Kind(), &component.Body{
		Category: component.CategoryLoot, Width: 16, Height: 16, Static: true,
	})
	return e
}

// recorder collects payloads emitted on one topic.
type recorder struct {
	got []int
}

func (r *recorder) handle(v int) {
	r.got = append(r.got, v)
}

type fakeDisabler struct {
	pairs [][2]component.Category
}

func (f *fakeDisabler) DisablePair(a, b component.Category) {
	f.pairs = append(f.pairs, [2]component.Category{a, b})
}
