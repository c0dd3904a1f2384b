// Package history keeps a bounded undo/redo trail of snapshots.
package history

const DefaultCapacity = 40

// Buffer holds snapshots oldest first. The top of past is always the current
// state, so undo needs at least two entries. Values are stored as given,
// callers that need isolation must push copies.
type Buffer[T any] struct {
	past     []T
	future   []T
	capacity int
}

func New[T any](capacity int) *Buffer[T] {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Buffer[T]{
		past:     make([]T, 0, capacity),
		capacity: capacity,
	}
}

// Push records value as the current state and drops any redo history.
func (b *Buffer[T]) Push(value T) {
	b.past = append(b.past, value)
	if len(b.past) > b.capacity {
		var zero T
		b.past[0] = zero
		b.past = b.past[1:]
	}
	b.future = b.future[:0]
}

// Undo moves the current state onto the redo stack and returns the state
// beneath it.
func (b *Buffer[T]) Undo() (T, bool) {
	var zero T
	if len(b.past) < 2 {
		return zero, false
	}
	top := b.past[len(b.past)-1]
	b.past[len(b.past)-1] = zero
	b.past = b.past[:len(b.past)-1]
	b.future = append(b.future, top)
	return b.past[len(b.past)-1], true
}

// Redo restores the most recently undone state.
func (b *Buffer[T]) Redo() (T, bool) {
	var zero T
	if len(b.future) == 0 {
		return zero, false
	}
	value := b.future[len(b.future)-1]
	b.future[len(b.future)-1] = zero
	b.future = b.future[:len(b.future)-1]
	b.past = append(b.past, value)
	return value, true
}

// Current returns the top snapshot.
func (b *Buffer[T]) Current() (T, bool) {
	if len(b.past) == 0 {
		var zero T
		return zero, false
	}
	return b.past[len(b.past)-1], true
}

func (b *Buffer[T]) Clear() {
	b.past = b.past[:0]
	b.future = b.future[:0]
}

func (b *Buffer[T]) CanUndo() bool { return len(b.past) > 1 }
func (b *Buffer[T]) CanRedo() bool { return len(b.future) > 0 }
func (b *Buffer[T]) Len() int      { return len(b.past) }
func (b *Buffer[T]) Capacity() int { return b.capacity }
