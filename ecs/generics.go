package ecs

// Add attaches a component value to an entity.
func Add[T any](w *World, e Entity, k ComponentKind[T], v *T) error {
	if w == nil || !k.Valid() {
		return ErrInvalidKind
	}
	if v == nil {
		return ErrNilComponent
	}
	if !w.entities.isAlive(e) {
		return ErrEntityNotAlive
	}
	w.storeFor(k.ID()).set(e.id(), v)
	return nil
}

// Get returns the component value for an entity, if present.
func Get[T any](w *World, e Entity, k ComponentKind[T]) (*T, bool) {
	if w == nil || !k.Valid() || !w.entities.isAlive(e) {
		return nil, false
	}
	v := w.storeIfExists(k.ID()).get(e.id())
	if v == nil {
		return nil, false
	}
	cast, ok := v.(*T)
	return cast, ok
}

// Has reports whether an entity carries the component.
func Has[T any](w *World, e Entity, k ComponentKind[T]) bool {
	_, ok := Get(w, e, k)
	return ok
}

// Remove detaches the component from an entity. Returns false if absent.
func Remove[T any](w *World, e Entity, k ComponentKind[T]) bool {
	if w == nil || !k.Valid() || !w.entities.isAlive(e) {
		return false
	}
	s := w.storeIfExists(k.ID())
	if s == nil {
		return false
	}
	return s.remove(e.id())
}

// First returns any single live entity carrying the component.
func First[T any](w *World, k ComponentKind[T]) (Entity, bool) {
	if w == nil || !k.Valid() {
		return 0, false
	}
	s := w.storeIfExists(k.ID())
	if s == nil {
		return 0, false
	}
	for _, id := range s.dense {
		if e, ok := w.entities.aliveID(id); ok {
			return e, true
		}
	}
	return 0, false
}

// ForEach visits every live entity carrying the component. The callback may
// add or remove components and destroy entities.
func ForEach[T any](w *World, k ComponentKind[T], fn func(Entity, *T)) {
	if w == nil || !k.Valid() || fn == nil {
		return
	}
	s := w.storeIfExists(k.ID())
	for _, id := range s.ids() {
		e, ok := w.entities.aliveID(id)
		if !ok {
			continue
		}
		if v, ok := s.get(id).(*T); ok && v != nil {
			fn(e, v)
		}
	}
}

// ForEach2 visits live entities carrying both components.
func ForEach2[A, B any](w *World, ka ComponentKind[A], kb ComponentKind[B], fn func(Entity, *A, *B)) {
	ForEach(w, ka, func(e Entity, a *A) {
		if b, ok := Get(w, e, kb); ok {
			fn(e, a, b)
		}
	})
}

// ForEach3 visits live entities carrying all three components.
func ForEach3[A, B, C any](w *World, ka ComponentKind[A], kb ComponentKind[B], kc ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	ForEach(w, ka, func(e Entity, a *A) {
		b, ok := Get(w, e, kb)
		if !ok {
			return
		}
		c, ok := Get(w, e, kc)
		if !ok {
			return
		}
		fn(e, a, b, c)
	})
}

// ForEach4 visits live entities carrying all four components.
func ForEach4[A, B, C, D any](w *World, ka ComponentKind[A], kb ComponentKind[B], kc ComponentKind[C], kd ComponentKind[D], fn func(Entity, *A, *B, *C, *D)) {
	ForEach(w, ka, func(e Entity, a *A) {
		b, ok := Get(w, e, kb)
		if !ok {
			return
		}
		c, ok := Get(w, e, kc)
		if !ok {
			return
		}
		d, ok := Get(w, e, kd)
		if !ok {
			return
		}
		fn(e, a, b, c, d)
	})
}
