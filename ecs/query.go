package ecs

import "github.com/milk9111/dungeon/ecs/component"

// ForEach calls fn for every live entity carrying a. Entities destroyed by fn
// during iteration are skipped.
func ForEach[A any](w *World, a component.ComponentKind[A], fn func(Entity, *A)) {
	sa := storeFor(w, a, false)
	if sa == nil || fn == nil {
		return
	}
	for _, id := range sa.ids() {
		e, ok := w.entities.current(id)
		if !ok {
			continue
		}
		va, ok := sa.get(id)
		if !ok {
			continue
		}
		fn(e, va)
	}
}

func ForEach2[A, B any](w *World, a component.ComponentKind[A], b component.ComponentKind[B], fn func(Entity, *A, *B)) {
	sa := storeFor(w, a, false)
	sb := storeFor(w, b, false)
	if sa == nil || sb == nil || fn == nil {
		return
	}
	// iterate smaller set
	ids := sa.ids()
	if sb.len() < sa.len() {
		ids = sb.ids()
	}
	for _, id := range ids {
		e, ok := w.entities.current(id)
		if !ok {
			continue
		}
		va, okA := sa.get(id)
		vb, okB := sb.get(id)
		if !okA || !okB {
			continue
		}
		fn(e, va, vb)
	}
}

func ForEach3[A, B, C any](w *World, a component.ComponentKind[A], b component.ComponentKind[B], c component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	sc := storeFor(w, c, false)
	if sc == nil || fn == nil {
		return
	}
	ForEach2(w, a, b, func(e Entity, va *A, vb *B) {
		vc, ok := sc.get(e.id())
		if !ok {
			return
		}
		fn(e, va, vb, vc)
	})
}

func ForEach4[A, B, C, D any](w *World, a component.ComponentKind[A], b component.ComponentKind[B], c component.ComponentKind[C], d component.ComponentKind[D], fn func(Entity, *A, *B, *C, *D)) {
	sd := storeFor(w, d, false)
	if sd == nil || fn == nil {
		return
	}
	ForEach3(w, a, b, c, func(e Entity, va *A, vb *B, vc *C) {
		vd, ok := sd.get(e.id())
		if !ok {
			return
		}
		fn(e, va, vb, vc, vd)
	})
}
