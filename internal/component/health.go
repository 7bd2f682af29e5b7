package component

// Health tracks hit points. Current never drops below zero.
type Health struct {
	Current, Max int
}

// Apply subtracts dmg, clamping at zero, and returns the new value.
func (h *Health) Apply(dmg int) int {
	h.Current -= dmg
	if h.Current < 0 {
		h.Current = 0
	}
	return h.Current
}

// Dead reports whether no hit points remain.
func (h Health) Dead() bool { return h.Current <= 0 }
