package system

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/dungeon/ecs"
	"github.com/milk9111/dungeon/ecs/component"
)

// contactPairs lists the category pairs whose contacts are reported to the
// collision queue.
var contactPairs = [][2]component.Category{
	{component.CategoryPlayer, component.CategoryWall},
	{component.CategoryPlayer, component.CategoryEnemy},
	{component.CategoryPlayer, component.CategoryLoot},
	{component.CategoryProjectile, component.CategoryWall},
	{component.CategoryProjectile, component.CategoryEnemy},
	{component.CategoryEnemy, component.CategoryWall},
	{component.CategoryEnemy, component.CategoryLoot},
}

// PhysicsSystem is the Chipmunk2D collaborator: it mirrors Body components
// into a cp space, integrates Velocity into Transform and pushes every
// touching tagged pair onto the world collision queue. Gravity is zero and
// bodies never rotate. Solid dynamic bodies never end a step inside a solid
// static one.
type PhysicsSystem struct {
	space         *cp.Space
	handlersReady bool

	bodies   map[ecs.Entity]*bodyInfo
	shapes   map[*cp.Shape]shapeOwner
	disabled map[routeKey]struct{}

	queue *ecs.CollisionQueue
}

type shapeOwner struct {
	entity   ecs.Entity
	category component.Category
}

type bodyInfo struct {
	body     *cp.Body
	shape    *cp.Shape
	static   bool
	sensor   bool
	category component.Category
	halfW    float64
	halfH    float64
	// bb is the world box of a static body.
	bb cp.BB
}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{
		space:    newSpace(),
		bodies:   make(map[ecs.Entity]*bodyInfo),
		shapes:   make(map[*cp.Shape]shapeOwner),
		disabled: make(map[routeKey]struct{}),
	}
}

func newSpace() *cp.Space {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{})
	return space
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

// DisablePair stops contacts between a and b from being resolved or
// reported. It cannot be undone.
func (ps *PhysicsSystem) DisablePair(a, b component.Category) {
	if ps == nil {
		return
	}
	ps.disabled[routeKeyOf(a, b)] = struct{}{}
}

// Reset drops every body so the next update rebuilds the space from the
// world, e.g. after a level change.
func (ps *PhysicsSystem) Reset() {
	if ps == nil {
		return
	}
	ps.space = newSpace()
	ps.handlersReady = false
	clear(ps.bodies)
	clear(ps.shapes)
	clear(ps.disabled)
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	ps.ensureHandlers()
	ps.syncEntities(w)
	ps.syncVelocities(w)

	dt := w.Delta().Seconds()
	if dt <= 0 {
		return
	}
	ps.queue = w.Collisions()
	ps.space.Step(dt)
	ps.queue = nil

	ps.separateFromStatic()
	ps.syncTransforms(w)
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady {
		return
	}
	for _, pair := range contactPairs {
		h := ps.space.NewCollisionHandler(cp.CollisionType(pair[0]), cp.CollisionType(pair[1]))
		h.UserData = ps
		h.PreSolveFunc = reportContact
	}
	ps.handlersReady = true
}

func reportContact(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
	ps, ok := userData.(*PhysicsSystem)
	if !ok || ps == nil {
		return true
	}
	shapeA, shapeB := arb.Shapes()
	a, okA := ps.shapes[shapeA]
	b, okB := ps.shapes[shapeB]
	if !okA || !okB {
		return true
	}
	if _, off := ps.disabled[routeKeyOf(a.category, b.category)]; off {
		return false
	}
	if ps.queue != nil {
		ps.queue.Push(ecs.CollisionEvent{A: a.entity, B: b.entity})
	}
	return true
}

// syncEntities adds bodies for new or re-enabled entities and removes those
// that died, lost their Body or were disabled.
func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	for e, info := range ps.bodies {
		body, ok := ecs.Get(w, e, component.BodyComponent.Kind())
		if ok && !body.Disabled {
			continue
		}
		ps.removeBody(e, info)
	}

	ecs.ForEach2(w, component.BodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, body *component.Body, t *component.Transform) {
		if body.Disabled {
			return
		}
		if info, ok := ps.bodies[e]; ok {
			if body.Teleport {
				ps.teleport(info, t)
				body.Teleport = false
			}
			return
		}
		info := ps.createBody(body, t)
		ps.bodies[e] = info
		ps.shapes[info.shape] = shapeOwner{entity: e, category: body.Category}
		body.Teleport = false
	})
}

func (ps *PhysicsSystem) createBody(body *component.Body, t *component.Transform) *bodyInfo {
	width, height := body.Width, body.Height
	if width <= 0 || height <= 0 {
		width, height = 16, 16
	}

	info := &bodyInfo{
		static:   body.Static,
		sensor:   body.Sensor,
		category: body.Category,
		halfW:    width / 2,
		halfH:    height / 2,
	}
	if body.Static {
		info.bb = cp.BB{L: t.X - width/2, B: t.Y - height/2, R: t.X + width/2, T: t.Y + height/2}
		info.body = ps.space.StaticBody
		info.shape = cp.NewBox2(ps.space.StaticBody, info.bb, 0)
	} else {
		b := cp.NewBody(1, math.Inf(1))
		b.SetPosition(cp.Vector{X: t.X, Y: t.Y})
		b.SetAngle(t.Rotation)
		ps.space.AddBody(b)
		info.body = b
		info.shape = cp.NewBox(b, width, height, 0)
	}

	info.shape.SetFriction(0)
	info.shape.SetElasticity(0)
	info.shape.SetCollisionType(cp.CollisionType(body.Category))
	info.shape.SetSensor(body.Sensor)
	ps.space.AddShape(info.shape)
	return info
}

func (ps *PhysicsSystem) teleport(info *bodyInfo, t *component.Transform) {
	if info.static {
		return
	}
	info.body.SetPosition(cp.Vector{X: t.X, Y: t.Y})
	info.body.SetAngle(t.Rotation)
	info.body.SetVelocity(0, 0)
}

// separateFromStatic pushes every solid dynamic body out of the solid static
// boxes it overlaps, along the axis of least penetration, and drops the
// velocity component that drove it in.
func (ps *PhysicsSystem) separateFromStatic() {
	for _, info := range ps.bodies {
		if info.static || info.sensor {
			continue
		}
		pos := info.body.Position()
		moved := false
		for _, wall := range ps.bodies {
			if !wall.static || wall.sensor {
				continue
			}
			if _, off := ps.disabled[routeKeyOf(info.category, wall.category)]; off {
				continue
			}
			push, ok := separation(pos, info.halfW, info.halfH, wall.bb)
			if !ok {
				continue
			}
			pos = pos.Add(push)
			moved = true

			vel := info.body.Velocity()
			if push.X != 0 && vel.X*push.X < 0 {
				vel.X = 0
			}
			if push.Y != 0 && vel.Y*push.Y < 0 {
				vel.Y = 0
			}
			info.body.SetVelocityVector(vel)
		}
		if moved {
			info.body.SetPosition(pos)
		}
	}
}

// separation returns the smallest axis-aligned move that takes the box
// centered at pos out of bb, and false when they do not overlap.
func separation(pos cp.Vector, halfW, halfH float64, bb cp.BB) (cp.Vector, bool) {
	toLeft := pos.X + halfW - bb.L
	toRight := bb.R - (pos.X - halfW)
	toBottom := pos.Y + halfH - bb.B
	toTop := bb.T - (pos.Y - halfH)
	if toLeft <= 0 || toRight <= 0 || toBottom <= 0 || toTop <= 0 {
		return cp.Vector{}, false
	}

	dx := -toLeft
	if toRight < toLeft {
		dx = toRight
	}
	dy := -toBottom
	if toTop < toBottom {
		dy = toTop
	}
	if math.Abs(dx) <= math.Abs(dy) {
		return cp.Vector{X: dx}, true
	}
	return cp.Vector{Y: dy}, true
}

func (ps *PhysicsSystem) removeBody(e ecs.Entity, info *bodyInfo) {
	if info.shape != nil {
		ps.space.RemoveShape(info.shape)
		delete(ps.shapes, info.shape)
	}
	if info.body != nil && !info.static {
		ps.space.RemoveBody(info.body)
	}
	delete(ps.bodies, e)
}

func (ps *PhysicsSystem) syncVelocities(w *ecs.World) {
	ecs.ForEach(w, component.VelocityComponent.Kind(), func(e ecs.Entity, vel *component.Velocity) {
		info, ok := ps.bodies[e]
		if !ok || info.static {
			return
		}
		info.body.SetVelocity(vel.X, vel.Y)
	})
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	for e, info := range ps.bodies {
		if info.static {
			continue
		}
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		pos := info.body.Position()
		t.X = pos.X
		t.Y = pos.Y
	}
}
