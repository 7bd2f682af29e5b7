package ecs

// EntityID uniquely identifies an entity in the world. The low 32 bits hold
// the slot index plus one and the high 32 bits hold the slot generation, so a
// handle to a destroyed entity never resolves to a later occupant of the slot.
type EntityID uint64

// NilEntity is the zero value; no valid entity has this ID.
const NilEntity EntityID = 0

func makeID(index int, gen uint32) EntityID {
	return EntityID(uint64(gen)<<32 | uint64(index+1))
}

// Index returns the slot index encoded in the handle, or -1 for NilEntity.
func (id EntityID) Index() int {
	return int(uint32(id)) - 1
}

// Generation returns the slot generation encoded in the handle.
func (id EntityID) Generation() uint32 {
	return uint32(id >> 32)
}
