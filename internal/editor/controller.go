// Package editor owns the live grid being edited. Every committed change
// pushes a deep copy into the undo history and notifies subscribers.
package editor

import (
	"math"

	"git.lost.host/meutraa/beatedit/internal/game"
	"git.lost.host/meutraa/beatedit/internal/grid"
	"git.lost.host/meutraa/beatedit/internal/history"
	"git.lost.host/meutraa/beatedit/internal/timeline"
)

type Controller struct {
	grid        *grid.Grid
	history     *history.Buffer[*grid.Grid]
	version     uint64
	subscribers []chan struct{}
}

func NewController(undoLevels int) *Controller {
	return &Controller{
		grid:    grid.New(0, grid.DefaultBeatsPerBar),
		history: history.New[*grid.Grid](undoLevels),
	}
}

// InitWithEmptyData starts a fresh chart and makes it the undo baseline.
func (c *Controller) InitWithEmptyData(lengthInBeats, beatsPerBar int) {
	c.reset(grid.New(lengthInBeats, beatsPerBar))
}

// Load replaces the grid with the converted save data, grown to cover at
// least songBeats quarter note beats. A nil sd loads an empty chart.
func (c *Controller) Load(sd *game.SaveData, songBeats float64) {
	g := timeline.ToEditorGrid(sd)
	if g == nil {
		g = grid.New(0, grid.DefaultBeatsPerBar)
	}
	rows := int(math.Ceil(songBeats*float64(g.BeatsPerBar)/4 - 1e-9))
	if g.Len() < rows {
		g.Resize(rows)
	}
	c.reset(g)
}

func (c *Controller) reset(g *grid.Grid) {
	c.grid = g
	c.history.Clear()
	c.commit()
}

// Grid exposes the live grid for reading. Callers must not modify it or hold
// on to it across edits, use Snapshot for that.
func (c *Controller) Grid() *grid.Grid {
	return c.grid
}

// Snapshot returns a deep copy safe to hand to background work.
func (c *Controller) Snapshot() *grid.Grid {
	return c.grid.Clone()
}

// SaveData converts a snapshot of the live grid.
func (c *Controller) SaveData(beatsPerMinute float64, clip bool, maxSeconds float64) *game.SaveData {
	return timeline.ToSaveData(c.Snapshot(), beatsPerMinute, clip, maxSeconds)
}

// Version increases with every commit, undo and redo.
func (c *Controller) Version() uint64 {
	return c.version
}

// Subscribe returns a channel that receives a signal after the grid changes.
// Signals are coalesced, a receiver should re-read the whole grid.
func (c *Controller) Subscribe() <-chan struct{} {
	ch := make(chan struct{}, 1)
	c.subscribers = append(c.subscribers, ch)
	return ch
}

func (c *Controller) notify() {
	c.version++
	for _, ch := range c.subscribers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func (c *Controller) commit() {
	c.history.Push(c.grid.Clone())
	c.notify()
}

func (c *Controller) SetNote(beat int, layer game.Layer, lane int, n *game.Note) {
	c.grid.SetNote(beat, layer, lane, n)
	c.commit()
}

func (c *Controller) SetObstacle(beat, lane int, o *game.Obstacle) {
	c.grid.SetObstacle(beat, lane, o)
	c.commit()
}

func (c *Controller) SetEvent(beat, channel, value int) {
	c.grid.SetEvent(beat, channel, value)
	c.commit()
}

func (c *Controller) ClearEvent(beat, channel int) {
	c.grid.ClearEvent(beat, channel)
	c.commit()
}

func (c *Controller) Resize(length int) {
	c.grid.Resize(length)
	c.commit()
}

func (c *Controller) Clear() {
	c.grid.Clear()
	c.commit()
}

func (c *Controller) Stretch2x() {
	c.grid.Stretch2x()
	c.commit()
}

// Squish2x halves the resolution. Unless force is set a squish that would
// drop authored content is refused with a *grid.SquishError and nothing is
// committed.
func (c *Controller) Squish2x(force bool) error {
	if err := c.grid.SafeSquish2x(force); err != nil {
		return err
	}
	c.commit()
	return nil
}

// Undo replaces the live grid with the previous snapshot. It reports false
// when there is nothing to undo.
func (c *Controller) Undo() bool {
	g, ok := c.history.Undo()
	if !ok {
		return false
	}
	c.grid = g.Clone()
	c.notify()
	return true
}

func (c *Controller) Redo() bool {
	g, ok := c.history.Redo()
	if !ok {
		return false
	}
	c.grid = g.Clone()
	c.notify()
	return true
}

func (c *Controller) CanUndo() bool { return c.history.CanUndo() }
func (c *Controller) CanRedo() bool { return c.history.CanRedo() }
