package game

// Beat is one row of the editing grid. A nil pointer means the slot is empty.
// Cells are never mutated in place once stored, writers replace the pointer.
type Beat struct {
	Notes     [LayerCount][NoteLanes]*Note
	Obstacles [ObstacleLanes]*Obstacle
	Events    [EventChannels]*Event
}

// Clone returns a deep copy that shares no cells with b.
func (b *Beat) Clone() Beat {
	var c Beat
	for layer := range b.Notes {
		for lane, n := range b.Notes[layer] {
			if n != nil {
				nn := *n
				c.Notes[layer][lane] = &nn
			}
		}
	}
	for lane, o := range b.Obstacles {
		if o != nil {
			oo := *o
			c.Obstacles[lane] = &oo
		}
	}
	for ch, e := range b.Events {
		if e != nil {
			ee := *e
			c.Events[ch] = &ee
		}
	}
	return c
}

// HasAuthoredContent reports whether the beat holds a note, an obstacle or an
// explicit event. Carried events do not count.
func (b *Beat) HasAuthoredContent() bool {
	for layer := range b.Notes {
		for _, n := range b.Notes[layer] {
			if n != nil {
				return true
			}
		}
	}
	for _, o := range b.Obstacles {
		if o != nil {
			return true
		}
	}
	for _, e := range b.Events {
		if e.Explicit() {
			return true
		}
	}
	return false
}
