package grid

import (
	"git.lost.host/meutraa/beatedit/internal/game"
)

const DefaultBeatsPerBar = 4

// Grid is the quantized editing form of a chart. Beats holds one row per
// subdivision, BeatsPerBar rows make up one 4 beat bar.
type Grid struct {
	Beats       []game.Beat
	BeatsPerBar int
}

func New(length, beatsPerBar int) *Grid {
	if beatsPerBar <= 0 {
		beatsPerBar = DefaultBeatsPerBar
	}
	return &Grid{
		Beats:       make([]game.Beat, length),
		BeatsPerBar: beatsPerBar,
	}
}

func (g *Grid) Len() int {
	return len(g.Beats)
}

// TimeInBeats converts a row index to musical time in quarter note beats.
func (g *Grid) TimeInBeats(index int) float64 {
	return float64(index) * 4 / float64(g.BeatsPerBar)
}

// Clone returns a deep copy sharing no cells with g.
func (g *Grid) Clone() *Grid {
	c := &Grid{
		Beats:       make([]game.Beat, len(g.Beats)),
		BeatsPerBar: g.BeatsPerBar,
	}
	for i := range g.Beats {
		c.Beats[i] = g.Beats[i].Clone()
	}
	return c
}

// Resize grows or truncates the grid. Carried event values are extended into
// any newly created rows.
func (g *Grid) Resize(length int) {
	old := len(g.Beats)
	if length <= old {
		g.Beats = g.Beats[:length:length]
		return
	}
	beats := make([]game.Beat, length)
	copy(beats, g.Beats)
	g.Beats = beats
	for ch := 0; ch < game.EventChannels; ch++ {
		g.FillForward(old, ch, false)
	}
}

// Clear empties every row, keeping the length and resolution.
func (g *Grid) Clear() {
	for i := range g.Beats {
		g.Beats[i] = game.Beat{}
	}
}

// FillForward rewrites the carried values of channel from start onwards. The
// carry value is the nearest explicit event before start. Explicit events
// found on the way either end the walk (untilNextExplicit) or become the new
// carry value.
func (g *Grid) FillForward(start, channel int, untilNextExplicit bool) {
	if start < 0 {
		start = 0
	}
	var carry *int
	for i := start - 1; i >= 0 && i < len(g.Beats); i-- {
		if e := g.Beats[i].Events[channel]; e.Explicit() {
			v := e.Value
			carry = &v
			break
		}
	}

	for i := start; i < len(g.Beats); i++ {
		slot := &g.Beats[i].Events[channel]
		if (*slot).Explicit() {
			if untilNextExplicit {
				return
			}
			v := (*slot).Value
			carry = &v
			continue
		}
		if carry == nil {
			*slot = nil
		} else {
			*slot = &game.Event{Value: *carry, IsCarried: true}
		}
	}
}

func (g *Grid) fillAllForward() {
	for ch := 0; ch < game.EventChannels; ch++ {
		g.FillForward(0, ch, false)
	}
}

// CanSquish2x reports whether Squish2x would keep every authored cell. When it
// would not, problem is the first odd row holding a note, an obstacle or an
// explicit event.
func (g *Grid) CanSquish2x() (problem int, ok bool) {
	for i := 1; i < len(g.Beats); i += 2 {
		if g.Beats[i].HasAuthoredContent() {
			return i, false
		}
	}
	return -1, true
}

// SetNote places n at the given row, layer and lane. A nil n removes the note.
func (g *Grid) SetNote(beat int, layer game.Layer, lane int, n *game.Note) {
	if n != nil {
		nn := *n
		n = &nn
	}
	g.Beats[beat].Notes[layer][lane] = n
}

// SetObstacle places o at the given row and lane. A nil o removes it.
func (g *Grid) SetObstacle(beat, lane int, o *game.Obstacle) {
	if o != nil {
		oo := *o
		o = &oo
	}
	g.Beats[beat].Obstacles[lane] = o
}

// SetEvent authors an explicit value and carries it to the next explicit
// event on the channel.
func (g *Grid) SetEvent(beat, channel, value int) {
	g.Beats[beat].Events[channel] = &game.Event{Value: value}
	g.FillForward(beat+1, channel, true)
}

// ClearEvent removes an explicit value, the previous value is carried over
// the gap instead.
func (g *Grid) ClearEvent(beat, channel int) {
	g.Beats[beat].Events[channel] = nil
	g.FillForward(beat, channel, true)
}
