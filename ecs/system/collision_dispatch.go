package system

import (
	"math"

	"go.uber.org/zap"

	"github.com/milk9111/dungeon/ecs"
	"github.com/milk9111/dungeon/ecs/component"
	"github.com/milk9111/dungeon/event"
)

// KnockbackSpeed is how hard an enemy contact pushes the player away.
const KnockbackSpeed = 200.0

// CollisionHandler receives a routed pair with first and second in the
// category order the route was registered with.
type CollisionHandler func(w *ecs.World, first, second ecs.Entity)

// PairDisabler stops the physics collaborator from resolving contacts between
// two categories.
type PairDisabler interface {
	DisablePair(a, b component.Category)
}

type routeKey struct {
	lo component.Category
	hi component.Category
}

func routeKeyOf(a, b component.Category) routeKey {
	if a > b {
		a, b = b, a
	}
	return routeKey{lo: a, hi: b}
}

type route struct {
	first  component.Category
	handle CollisionHandler
}

// CollisionDispatcher drains the world's collision queue and routes each pair
// by the categories of its two bodies.
type CollisionDispatcher struct {
	routes  map[routeKey]route
	events  *event.Channel
	physics PairDisabler
	log     *zap.Logger
}

// NewCollisionDispatcher builds a dispatcher with the gameplay routes
// installed. physics may be nil.
func NewCollisionDispatcher(events *event.Channel, physics PairDisabler, log *zap.Logger) *CollisionDispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	d := &CollisionDispatcher{
		routes:  make(map[routeKey]route),
		events:  events,
		physics: physics,
		log:     log,
	}

	// physics already keeps the player out of walls
	d.Route(component.CategoryPlayer, component.CategoryWall, nil)
	d.Route(component.CategoryPlayer, component.CategoryEnemy, d.playerEnemy)
	d.Route(component.CategoryPlayer, component.CategoryLoot, d.playerLoot)
	d.Route(component.CategoryProjectile, component.CategoryWall, d.projectileWall)
	d.Route(component.CategoryProjectile, component.CategoryEnemy, d.projectileEnemy)
	d.Route(component.CategoryEnemy, component.CategoryWall, d.enemyObstacle)
	d.Route(component.CategoryEnemy, component.CategoryLoot, d.enemyObstacle)
	return d
}

// Route installs handle for pairs of categories a and b, replacing any
// previous route. A nil handle routes the pair to nothing.
func (d *CollisionDispatcher) Route(a, b component.Category, handle CollisionHandler) {
	d.routes[routeKeyOf(a, b)] = route{first: a, handle: handle}
}

// Unroute removes the route for a and b and reports whether one existed.
func (d *CollisionDispatcher) Unroute(a, b component.Category) bool {
	k := routeKeyOf(a, b)
	if _, ok := d.routes[k]; !ok {
		return false
	}
	delete(d.routes, k)
	return true
}

// Routed reports whether pairs of a and b currently reach a route.
func (d *CollisionDispatcher) Routed(a, b component.Category) bool {
	_, ok := d.routes[routeKeyOf(a, b)]
	return ok
}

func (d *CollisionDispatcher) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, evt := range w.Collisions().Drain() {
		d.Dispatch(w, evt.A, evt.B)
	}
}

// Dispatch routes one pair. Pairs with a dead entity, an untagged body or no
// route are dropped.
func (d *CollisionDispatcher) Dispatch(w *ecs.World, a, b ecs.Entity) {
	ba, okA := ecs.Get(w, a, component.BodyComponent.Kind())
	bb, okB := ecs.Get(w, b, component.BodyComponent.Kind())
	if !okA || !okB {
		return
	}
	r, ok := d.routes[routeKeyOf(ba.Category, bb.Category)]
	if !ok || r.handle == nil {
		return
	}
	if ba.Category != r.first {
		a, b = b, a
	}
	r.handle(w, a, b)
}

func (d *CollisionDispatcher) playerEnemy(w *ecs.World, player, enemy ecs.Entity) {
	kx, ky := knockback(w, player, enemy)
	switch HandlePlayerDamage(w, player, kx, ky) {
	case component.DamageRejected:
		return
	case component.DamageKilled:
		d.Unroute(component.CategoryPlayer, component.CategoryEnemy)
		if d.physics != nil {
			d.physics.DisablePair(component.CategoryPlayer, component.CategoryEnemy)
		}
		d.log.Info("player: died", zap.Stringer("player", player), zap.Stringer("enemy", enemy))
	}

	if h, ok := ecs.Get(w, player, component.HealthComponent.Kind()); ok && d.events != nil {
		d.events.Emit(event.HealthChanged, h.Current)
	}
}

// knockback points from the enemy to the player, scaled to KnockbackSpeed.
func knockback(w *ecs.World, player, enemy ecs.Entity) (float64, float64) {
	pt, okP := ecs.Get(w, player, component.TransformComponent.Kind())
	et, okE := ecs.Get(w, enemy, component.TransformComponent.Kind())
	if !okP || !okE {
		return 0, 0
	}
	dx := pt.X - et.X
	dy := pt.Y - et.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return 0, 0
	}
	return dx / l * KnockbackSpeed, dy / l * KnockbackSpeed
}

func (d *CollisionDispatcher) playerLoot(w *ecs.World, player, loot ecs.Entity) {
	if p, ok := ecs.Get(w, player, component.PlayerComponent.Kind()); ok {
		p.ActiveLoot = uint64(loot)
	}
}

func (d *CollisionDispatcher) projectileWall(w *ecs.World, projectile, _ ecs.Entity) {
	ReleaseProjectile(w, projectile)
}

func (d *CollisionDispatcher) projectileEnemy(w *ecs.World, projectile, enemy ecs.Entity) {
	if !ReleaseProjectile(w, projectile) {
		return
	}
	ecs.DestroyEntity(w, enemy)
	d.log.Debug("enemy: destroyed by projectile", zap.Stringer("enemy", enemy))
}

func (d *CollisionDispatcher) enemyObstacle(w *ecs.World, enemy, _ ecs.Entity) {
	if wander, ok := ecs.Get(w, enemy, component.WanderComponent.Kind()); ok {
		wander.Blocked = true
	}
}
