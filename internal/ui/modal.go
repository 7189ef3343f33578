package ui

// Modal is a detail overlay that is either closed or open with one payload.
type Modal[T any] struct {
	payload T
	open    bool
}

// Open shows payload. An already open modal has its payload replaced.
func (m Modal[T]) Open(payload T) Modal[T] {
	m.payload = payload
	m.open = true
	return m
}

// Close hides the modal and drops its payload.
func (m Modal[T]) Close() Modal[T] {
	return Modal[T]{}
}

// IsOpen reports whether the modal is showing.
func (m Modal[T]) IsOpen() bool {
	return m.open
}

// Payload returns the displayed payload while open.
func (m Modal[T]) Payload() (T, bool) {
	return m.payload, m.open
}
