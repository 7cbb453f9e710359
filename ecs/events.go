package ecs

// CollisionEvent reports that two tagged entities touched during the last
// physics step. A and B carry no ordering meaning.
type CollisionEvent struct {
	A Entity
	B Entity
}

type collisionKey struct {
	lo Entity
	hi Entity
}

func keyOf(a, b Entity) collisionKey {
	if a > b {
		a, b = b, a
	}
	return collisionKey{lo: a, hi: b}
}

// CollisionQueue is a per-frame FIFO of collision pairs. A pair is queued at
// most once per frame regardless of how many contacts report it.
type CollisionQueue struct {
	items []CollisionEvent
	seen  map[collisionKey]struct{}
}

// Push adds a pair unless it is already queued this frame.
func (q *CollisionQueue) Push(evt CollisionEvent) {
	if q == nil || evt.A == evt.B {
		return
	}
	if q.seen == nil {
		q.seen = make(map[collisionKey]struct{})
	}
	k := keyOf(evt.A, evt.B)
	if _, dup := q.seen[k]; dup {
		return
	}
	q.seen[k] = struct{}{}
	q.items = append(q.items, evt)
}

// Drain returns all queued pairs and clears the queue.
func (q *CollisionQueue) Drain() []CollisionEvent {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	clear(q.seen)
	return out
}

// Len returns the number of queued pairs.
func (q *CollisionQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *CollisionQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
	clear(q.seen)
}
