package engine

import "reflect"

// TypeOf returns the reflect key for a component type
func TypeOf[T Component]() reflect.Type {
	var zero T
	return reflect.TypeOf(zero)
}

// Get retrieves a typed copy of an entity's component
func Get[T Component](w *World, entity Entity) (T, bool) {
	var zero T
	comp, ok := w.GetComponent(entity, reflect.TypeOf(zero))
	if !ok {
		return zero, false
	}
	return comp.(T), true
}

// Has reports whether an entity carries a component of type T
func Has[T Component](w *World, entity Entity) bool {
	return w.HasComponent(entity, TypeOf[T]())
}

// Remove detaches the component of type T from an entity and returns
// the removed value, or false if the entity did not carry one
func Remove[T Component](w *World, entity Entity) (T, bool) {
	comp, ok := w.RemoveComponent(entity, TypeOf[T]())
	if !ok {
		var zero T
		return zero, false
	}
	return comp.(T), true
}

// Query returns the entities carrying a component of type T
func Query[T Component](w *World) []Entity {
	return w.EntitiesWith(TypeOf[T]())
}

// QueryWith returns the entities carrying both T and U
func QueryWith[T, U Component](w *World) []Entity {
	return w.EntitiesWith(TypeOf[T](), TypeOf[U]())
}

// QueryWith3 returns the entities carrying T, U, and V
func QueryWith3[T, U, V Component](w *World) []Entity {
	return w.EntitiesWith(TypeOf[T](), TypeOf[U](), TypeOf[V]())
}

// Each visits every entity carrying T with a mutable copy of the
// component, writing the copy back after the callback returns. The
// entity list is snapshotted up front, so the callback may spawn or
// despawn entities and attach or detach components freely. Entities
// despawned mid-iteration are skipped when their turn comes, and a
// component the callback detached from the visited entity stays
// detached.
func Each[T Component](w *World, fn func(e Entity, c *T)) {
	for _, e := range Query[T](w) {
		c, ok := Get[T](w, e)
		if !ok {
			continue
		}
		fn(e, &c)
		if w.Alive(e) && Has[T](w, e) {
			w.SetComponent(e, c)
		}
	}
}

// Each2 visits every entity carrying T and U with mutable copies of
// both components, with the same snapshot semantics as Each
func Each2[T, U Component](w *World, fn func(e Entity, a *T, b *U)) {
	for _, e := range QueryWith[T, U](w) {
		a, ok := Get[T](w, e)
		if !ok {
			continue
		}
		b, ok := Get[U](w, e)
		if !ok {
			continue
		}
		fn(e, &a, &b)
		if !w.Alive(e) {
			continue
		}
		if Has[T](w, e) {
			w.SetComponent(e, a)
		}
		if Has[U](w, e) {
			w.SetComponent(e, b)
		}
	}
}

// Each3 visits every entity carrying T, U, and V with mutable copies
// of all three components
func Each3[T, U, V Component](w *World, fn func(e Entity, a *T, b *U, c *V)) {
	for _, e := range QueryWith3[T, U, V](w) {
		a, ok := Get[T](w, e)
		if !ok {
			continue
		}
		b, ok := Get[U](w, e)
		if !ok {
			continue
		}
		c, ok := Get[V](w, e)
		if !ok {
			continue
		}
		fn(e, &a, &b, &c)
		if !w.Alive(e) {
			continue
		}
		if Has[T](w, e) {
			w.SetComponent(e, a)
		}
		if Has[U](w, e) {
			w.SetComponent(e, b)
		}
		if Has[V](w, e) {
			w.SetComponent(e, c)
		}
	}
}

// First returns the lowest-ID entity carrying T, or false if none do
func First[T Component](w *World) (Entity, bool) {
	entities := Query[T](w)
	if len(entities) == 0 {
		return 0, false
	}
	return entities[0], true
}
