package game

// Chart is one difficulty of a song as read from disk.
type Chart struct {
	Difficulty     Difficulty
	BeatsPerMinute float64
	Data           *SaveData
}

// NoteCount counts playable notes, bombs excluded.
func (c *Chart) NoteCount() int {
	if c.Data == nil {
		return 0
	}
	count := 0
	for _, n := range c.Data.Notes {
		if n.Type != NoteBomb {
			count++
		}
	}
	return count
}

func (c *Chart) BombCount() int {
	if c.Data == nil {
		return 0
	}
	return len(c.Data.Notes) - c.NoteCount()
}
