package actor

// Machine is an action-function state machine: a state tag plus a table of
// per-state functions. A transition recorded with Set takes effect on the next
// tick, and only the first transition of a tick is kept.
type Machine[S comparable] struct {
	states  map[S]func(*Frame)
	current S
	pending bool
	ticks   int
}

// NewMachine returns a machine in state initial.
func NewMachine[S comparable](initial S, states map[S]func(*Frame)) Machine[S] {
	return Machine[S]{states: states, current: initial}
}

// State returns the current state.
func (m *Machine[S]) State() S { return m.current }

// Is reports whether s is the current state.
func (m *Machine[S]) Is(s S) bool { return m.current == s }

// Ticks returns how many times the current state function has run.
func (m *Machine[S]) Ticks() int { return m.ticks }

// Set records a transition to s. A second call in the same tick is ignored.
func (m *Machine[S]) Set(s S) {
	if m.pending {
		return
	}
	m.current = s
	m.pending = true
	m.ticks = 0
}

// Interrupt runs check ahead of the state function and reports whether it
// recorded a transition. If it did, Update skips the state function.
func (m *Machine[S]) Interrupt(check func()) bool {
	check()
	return m.pending
}

// Settle drops the transition guard without running anything. Init calls it
// after its setup so the first Update runs the initial state.
func (m *Machine[S]) Settle() { m.pending = false }

// Update runs the current state function once, unless a transition was
// already recorded this tick, and then closes the tick.
func (m *Machine[S]) Update(f *Frame) {
	if !m.pending {
		if fn := m.states[m.current]; fn != nil {
			m.ticks++
			fn(f)
		}
	}
	m.pending = false
}
