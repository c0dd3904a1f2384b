package game

// Event is the value of one event channel at one beat.
type Event struct {
	Value int
	// Set when the value was propagated from the last explicit event on the
	// channel rather than authored at this beat.
	IsCarried bool
}

// Explicit reports whether e holds an authored value.
func (e *Event) Explicit() bool {
	return e != nil && !e.IsCarried
}
