package ecs

import (
	"fmt"

	"github.com/milk9111/mazeportal/ecs/component"
)

// Add attaches value to e, replacing any existing component of that kind.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return fmt.Errorf("%w: %s", component.ErrNilComponent, kind)
	}
	if !IsAlive(w, e) {
		return fmt.Errorf("%w: %s", component.ErrEntityNotAlive, e)
	}
	storeFor(w, kind, true).set(e.id(), value)
	return nil
}

func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if !IsAlive(w, e) {
		return nil, false
	}
	s := storeFor(w, kind, false)
	if s == nil {
		return nil, false
	}
	return s.get(e.id())
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	_, ok := Get(w, e, kind)
	return ok
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !IsAlive(w, e) {
		return false
	}
	s := storeFor(w, kind, false)
	return s != nil && s.remove(e.id())
}

// ForEach visits every entity with a component of kind. fn must not add or
// remove components of that kind.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	s := storeFor(w, kind, false)
	if s == nil {
		return
	}
	for i := 0; i < len(s.dense); i++ {
		fn(w.entities.entity(s.dense[i]), s.values[i])
	}
}

// ForEach2 visits entities that have both kinds, iterating the smaller store.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	sa, sb := storeFor(w, ka, false), storeFor(w, kb, false)
	if sa == nil || sb == nil {
		return
	}
	if sa.len() <= sb.len() {
		for i := 0; i < len(sa.dense); i++ {
			if b, ok := sb.get(sa.dense[i]); ok {
				fn(w.entities.entity(sa.dense[i]), sa.values[i], b)
			}
		}
		return
	}
	for i := 0; i < len(sb.dense); i++ {
		if a, ok := sa.get(sb.dense[i]); ok {
			fn(w.entities.entity(sb.dense[i]), a, sb.values[i])
		}
	}
}

// First returns the first entity with a component of kind.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, *T, bool) {
	s := storeFor(w, kind, false)
	if s == nil || s.len() == 0 {
		return 0, nil, false
	}
	return w.entities.entity(s.dense[0]), s.values[0], true
}
