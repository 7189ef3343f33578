// Package ui models the page's interactive view state as small explicit
// values. Every operation returns the next state; nothing is stored on the
// server between requests.
package ui

// Selection tracks at most one active item in a list.
type Selection[K comparable] struct {
	active K
	set    bool
	exists func(K) bool
}

// NewSelection returns an empty selection. exists guards Activate and Toggle
// against ids that are not in the list; nil accepts any id.
func NewSelection[K comparable](exists func(K) bool) Selection[K] {
	return Selection[K]{exists: exists}
}

func (s Selection[K]) known(id K) bool {
	return s.exists == nil || s.exists(id)
}

// Activate makes id the active item.
func (s Selection[K]) Activate(id K) Selection[K] {
	if !s.known(id) {
		return s
	}
	s.active = id
	s.set = true
	return s
}

// Clear removes the active item.
func (s Selection[K]) Clear() Selection[K] {
	var zero K
	s.active = zero
	s.set = false
	return s
}

// Toggle activates id, or clears the selection if id is already active.
func (s Selection[K]) Toggle(id K) Selection[K] {
	if !s.known(id) {
		return s
	}
	if s.set && s.active == id {
		return s.Clear()
	}
	return s.Activate(id)
}

// Active returns the active item, if any.
func (s Selection[K]) Active() (K, bool) {
	return s.active, s.set
}

// IsActive reports whether id is the active item.
func (s Selection[K]) IsActive(id K) bool {
	return s.set && s.active == id
}

// SelectionOp names a selection operation as it travels in a request.
type SelectionOp string

const (
	OpActivate SelectionOp = "activate"
	OpClear    SelectionOp = "clear"
	OpToggle   SelectionOp = "toggle"
)

// ApplySelection runs op against s. Unknown ops leave s unchanged.
func ApplySelection[K comparable](s Selection[K], op SelectionOp, id K) Selection[K] {
	switch op {
	case OpActivate:
		return s.Activate(id)
	case OpClear:
		return s.Clear()
	case OpToggle:
		return s.Toggle(id)
	default:
		return s
	}
}
