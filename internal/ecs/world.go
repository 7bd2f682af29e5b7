package ecs

type slot[T any] struct {
	gen   uint32
	alive bool
	val   T
}

// World is a fixed-capacity arena of values addressed by generation-checked
// handles. Freed slots are reused lowest index first.
type World[T any] struct {
	slots    []slot[T]
	capacity int
	count    int
}

// NewWorld creates an empty World holding at most capacity entities.
// A capacity <= 0 means unbounded.
func NewWorld[T any](capacity int) *World[T] {
	return &World[T]{capacity: capacity}
}

// CreateEntity stores val in a free slot and returns its handle.
// ok is false when the world is full.
func (w *World[T]) CreateEntity(val T) (id EntityID, ok bool) {
	for i := range w.slots {
		if !w.slots[i].alive {
			s := &w.slots[i]
			s.alive = true
			s.val = val
			w.count++
			return makeID(i, s.gen), true
		}
	}
	if w.capacity > 0 && len(w.slots) >= w.capacity {
		return NilEntity, false
	}
	w.slots = append(w.slots, slot[T]{gen: 1, alive: true, val: val})
	w.count++
	return makeID(len(w.slots)-1, 1), true
}

// DestroyEntity frees the entity's slot. Stale or nil handles are ignored.
func (w *World[T]) DestroyEntity(id EntityID) {
	s := w.lookup(id)
	if s == nil {
		return
	}
	var zero T
	s.val = zero
	s.alive = false
	s.gen++
	if s.gen == 0 {
		s.gen = 1
	}
	w.count--
}

// Alive reports whether the entity is alive.
func (w *World[T]) Alive(id EntityID) bool {
	return w.lookup(id) != nil
}

// Get returns the value stored for id. ok is false for stale handles.
func (w *World[T]) Get(id EntityID) (val T, ok bool) {
	s := w.lookup(id)
	if s == nil {
		return val, false
	}
	return s.val, true
}

// Len returns the number of alive entities.
func (w *World[T]) Len() int { return w.count }

// Full reports whether no further entity can be created.
func (w *World[T]) Full() bool {
	return w.capacity > 0 && w.count >= w.capacity
}

// Each calls fn for every alive entity in slot order.
func (w *World[T]) Each(fn func(id EntityID, val T)) {
	for i := range w.slots {
		s := &w.slots[i]
		if s.alive {
			fn(makeID(i, s.gen), s.val)
		}
	}
}

// Query returns the handles of all alive entities accepted by keep, in slot
// order. A nil keep selects every entity.
func (w *World[T]) Query(keep func(T) bool) []EntityID {
	var result []EntityID
	w.Each(func(id EntityID, val T) {
		if keep == nil || keep(val) {
			result = append(result, id)
		}
	})
	return result
}

func (w *World[T]) lookup(id EntityID) *slot[T] {
	i := id.Index()
	if i < 0 || i >= len(w.slots) {
		return nil
	}
	s := &w.slots[i]
	if !s.alive || s.gen != id.Generation() {
		return nil
	}
	return s
}
