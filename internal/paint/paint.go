// Package paint implements the drag-paint interaction state machine.
//
// Pointer events arrive as discrete press / enter / release
// transitions, independent of any particular input toolkit:
//
//	Idle --press--> Pressed --enter(other cell)--> Dragging
//
// The press toggles the pressed cell. Once dragging, every cell-enter
// toggles the entered cell, one toggle per visit. A drag that re-enters
// an already-visited cell therefore flips it back; that replays the
// observed editor behavior and is kept deliberately rather than being
// turned into a fixed-value paint mode.
package paint

import "github.com/san-kum/spritelab/internal/anim"

// State of the gesture machine.
type State int

const (
	Idle State = iota
	Pressed
	Dragging
)

func (s State) String() string {
	switch s {
	case Pressed:
		return "pressed"
	case Dragging:
		return "dragging"
	default:
		return "idle"
	}
}

// Machine tracks one pointer gesture over a store's current frame.
type Machine struct {
	store              *anim.Store
	state              State
	startRow, startCol int
}

// NewMachine returns an idle gesture machine bound to store.
func NewMachine(store *anim.Store) *Machine {
	return &Machine{store: store}
}

// State returns the current gesture state.
func (m *Machine) State() State { return m.state }

// Press begins a gesture at (row, col), toggling that cell. Presses
// outside the grid, while playing, or during an active gesture are
// ignored.
func (m *Machine) Press(row, col int) {
	if m.state != Idle || m.store.Playing() {
		return
	}
	if !m.store.Current().In(row, col) {
		return
	}
	m.state = Pressed
	m.startRow, m.startCol = row, col
	m.store.ToggleCell(row, col)
}

// Enter reports the pointer moving onto (row, col) with the button
// held. The first enter of a cell other than the start promotes the
// gesture to dragging; while dragging, each enter toggles the entered
// cell, revisits included.
func (m *Machine) Enter(row, col int) {
	if m.state == Idle || m.store.Playing() {
		return
	}
	if !m.store.Current().In(row, col) {
		return
	}
	if m.state == Pressed && (row != m.startRow || col != m.startCol) {
		m.state = Dragging
	}
	if m.state == Dragging {
		m.store.ToggleCell(row, col)
	}
}

// Release ends the gesture. The transient state resets unconditionally,
// even when the pointer is released outside the grid.
func (m *Machine) Release() {
	m.state = Idle
	m.startRow, m.startCol = 0, 0
}
