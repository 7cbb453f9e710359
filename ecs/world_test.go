package ecs

import (
	"errors"
	"testing"
	"time"

	"github.com/milk9111/dungeon/ecs/component"
)

func intPtr(i int) *int {
	return &i
}

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex < 0 {
				return
			}
			if !DestroyEntity(w, ents[c.destroyIndex]) {
				t.Fatalf("DestroyEntity should return true for alive entity")
			}
			if IsAlive(w, ents[c.destroyIndex]) {
				t.Fatalf("entity should not be alive after destruction")
			}
			if DestroyEntity(w, ents[c.destroyIndex]) {
				t.Fatalf("second DestroyEntity should return false")
			}
			if len(Entities(w)) != c.create-1 {
				t.Fatalf("expected %d entities after destroy, got %d", c.create-1, len(Entities(w)))
			}
		})
	}
}

func TestRecycledSlotGetsNewGeneration(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[int]()

	old := CreateEntity(w)
	if err := Add(w, old, kind, intPtr(7)); err != nil {
		t.Fatal(err)
	}
	DestroyEntity(w, old)

	fresh := CreateEntity(w)
	if fresh.id() != old.id() {
		t.Fatalf("expected slot reuse, got id %d want %d", fresh.id(), old.id())
	}
	if fresh == old {
		t.Fatalf("recycled handle must differ from the stale one")
	}
	if _, ok := Get(w, fresh, kind); ok {
		t.Fatalf("recycled entity must not inherit components")
	}
	if err := Add(w, old, kind, intPtr(1)); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive for stale handle, got %v", err)
	}
}

func TestComponentCRUD(t *testing.T) {
	w := NewWorld()
	ints := component.NewComponent[int]()
	strs := component.NewComponent[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name:  "add_int_to_e1",
			setup: func() error { return Add(w, e1, ints.Kind(), intPtr(10)) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, ints.Kind())
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
			},
			teardown: func() bool { return Remove(w, e1, ints.Kind()) },
		},
		{
			name: "add_str_to_both",
			setup: func() error {
				a, b := "a", "b"
				if err := Add(w, e1, strs.Kind(), &a); err != nil {
					return err
				}
				return Add(w, e2, strs.Kind(), &b)
			},
			check: func(t *testing.T) {
				if !Has(w, e1, strs.Kind()) || !Has(w, e2, strs.Kind()) {
					t.Fatalf("expected both entities to have string component")
				}
				if Count(w, strs.Kind()) != 2 {
					t.Fatalf("expected count 2, got %d", Count(w, strs.Kind()))
				}
			},
			teardown: func() bool { return Remove(w, e1, strs.Kind()) },
		},
		{
			name:  "write_through_pointer",
			setup: func() error { return Add(w, e2, ints.Kind(), intPtr(1)) },
			check: func(t *testing.T) {
				v, _ := Get(w, e2, ints.Kind())
				*v = 42
				again, _ := Get(w, e2, ints.Kind())
				if *again != 42 {
					t.Fatalf("expected write-through, got %d", *again)
				}
			},
			teardown: func() bool { return Remove(w, e2, ints.Kind()) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
			if !tc.teardown() {
				t.Fatalf("teardown failed for %s", tc.name)
			}
		})
	}
}

func TestAddRejectsBadInput(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)

	if err := Add(w, e, component.NewComponentKind[int](), nil); !errors.Is(err, component.ErrNilComponent) {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
	var zero component.ComponentKind[int]
	if err := Add(w, e, zero, intPtr(1)); !errors.Is(err, component.ErrInvalidComponentKind) {
		t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
	}
}

func TestForEachVariants(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "for_each_skips_missing",
			run: func(t *testing.T) {
				w := NewWorld()
				k := component.NewComponentKind[int]()
				e1 := CreateEntity(w)
				CreateEntity(w)
				e3 := CreateEntity(w)
				_ = Add(w, e1, k, intPtr(1))
				_ = Add(w, e3, k, intPtr(3))

				sum := 0
				ForEach(w, k, func(_ Entity, v *int) { sum += *v })
				if sum != 4 {
					t.Fatalf("expected sum 4, got %d", sum)
				}
			},
		},
		{
			name: "for_each3_intersection",
			run: func(t *testing.T) {
				w := NewWorld()
				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				kc := component.NewComponentKind[int]()
				e1 := CreateEntity(w)
				e2 := CreateEntity(w)
				_ = Add(w, e1, ka, intPtr(1))
				_ = Add(w, e2, ka, intPtr(2))
				_ = Add(w, e2, kb, intPtr(3))
				_ = Add(w, e2, kc, intPtr(5))

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _, _, _ *int) { res = append(res, e) })
				if len(res) != 1 || res[0] != e2 {
					t.Fatalf("expected only e2, got %v", res)
				}
			},
		},
		{
			name: "for_each4_missing_store",
			run: func(t *testing.T) {
				w := NewWorld()
				ka := component.NewComponentKind[int]()
				e := CreateEntity(w)
				_ = Add(w, e, ka, intPtr(1))

				called := false
				ForEach4(w, ka, component.NewComponentKind[int](), component.NewComponentKind[int](), component.NewComponentKind[int](),
					func(Entity, *int, *int, *int, *int) { called = true })
				if called {
					t.Fatalf("expected no calls when other stores are missing")
				}
			},
		},
		{
			name: "destroy_during_iteration",
			run: func(t *testing.T) {
				w := NewWorld()
				k := component.NewComponentKind[int]()
				a := CreateEntity(w)
				b := CreateEntity(w)
				_ = Add(w, a, k, intPtr(1))
				_ = Add(w, b, k, intPtr(2))

				visited := 0
				ForEach(w, k, func(e Entity, _ *int) {
					visited++
					DestroyEntity(w, a)
					DestroyEntity(w, b)
				})
				if visited != 1 {
					t.Fatalf("expected destroyed entities to be skipped, visited %d", visited)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

type recordSystem struct {
	name  string
	log   *[]string
	delta *time.Duration
}

func (s recordSystem) Update(w *World) {
	*s.log = append(*s.log, s.name)
	*s.delta = w.Delta()
}

func TestUpdateRunsSystemsInOrderAndFlushesCollisions(t *testing.T) {
	w := NewWorld()
	var order []string
	var seen time.Duration
	w.AddSystem(recordSystem{name: "physics", log: &order, delta: &seen})
	w.AddSystem(recordSystem{name: "dispatch", log: &order, delta: &seen})

	w.Collisions().Push(CollisionEvent{A: 1, B: 2})
	w.Update(16 * time.Millisecond)

	if len(order) != 2 || order[0] != "physics" || order[1] != "dispatch" {
		t.Fatalf("unexpected order %v", order)
	}
	if seen != 16*time.Millisecond {
		t.Fatalf("expected delta 16ms, got %v", seen)
	}
	if w.Collisions().Len() != 0 {
		t.Fatalf("collision queue should be flushed after Update")
	}
	if w.Frame() != 1 {
		t.Fatalf("expected frame 1, got %d", w.Frame())
	}
}

func TestCollisionQueueDedupesPairs(t *testing.T) {
	var q CollisionQueue
	q.Push(CollisionEvent{A: 3, B: 4})
	q.Push(CollisionEvent{A: 4, B: 3})
	q.Push(CollisionEvent{A: 3, B: 3})
	q.Push(CollisionEvent{A: 3, B: 5})

	got := q.Drain()
	if len(got) != 2 {
		t.Fatalf("expected 2 unique pairs, got %v", got)
	}

	q.Push(CollisionEvent{A: 3, B: 4})
	if q.Len() != 1 {
		t.Fatalf("pair should be accepted again after Drain")
	}
}
