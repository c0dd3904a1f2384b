package grid

import (
	"reflect"
	"testing"

	"git.lost.host/meutraa/beatedit/internal/game"
)

func eventAt(g *Grid, beat, channel int) *game.Event {
	return g.Beats[beat].Events[channel]
}

func TestNew(t *testing.T) {
	g := New(12, 0)
	if g.Len() != 12 || g.BeatsPerBar != DefaultBeatsPerBar {
		t.Fatalf("unexpected grid %d/%d", g.Len(), g.BeatsPerBar)
	}
	if g.TimeInBeats(6) != 6 {
		t.Fatalf("expected row 6 at beat 6, got %v", g.TimeInBeats(6))
	}
	g.BeatsPerBar = 8
	if g.TimeInBeats(3) != 1.5 {
		t.Fatalf("expected row 3 at beat 1.5, got %v", g.TimeInBeats(3))
	}
}

func TestFillForwardCarriesExplicitValue(t *testing.T) {
	g := New(10, 4)
	g.SetEvent(0, 2, 5)

	for i := 1; i < g.Len(); i++ {
		e := eventAt(g, i, 2)
		if e == nil || e.Value != 5 || !e.IsCarried {
			t.Fatalf("beat %d: expected carried 5, got %+v", i, e)
		}
	}
	for ch := 0; ch < game.EventChannels; ch++ {
		if ch != 2 && eventAt(g, 5, ch) != nil {
			t.Fatalf("channel %d touched", ch)
		}
	}
}

func TestFillForwardStopsAtNextExplicit(t *testing.T) {
	g := New(10, 4)
	g.SetEvent(6, 0, 9)
	g.SetEvent(2, 0, 1)

	expected := []int{-1, -1, 1, 1, 1, 1, 9, 9, 9, 9}
	for i, v := range expected {
		e := eventAt(g, i, 0)
		if v < 0 {
			if e != nil {
				t.Fatalf("beat %d: expected empty, got %+v", i, e)
			}
			continue
		}
		if e == nil || e.Value != v {
			t.Fatalf("beat %d: expected %d, got %+v", i, v, e)
		}
	}
	if !eventAt(g, 6, 0).Explicit() || !eventAt(g, 2, 0).Explicit() {
		t.Fatal("explicit events lost")
	}
}

func TestClearEventCarriesPrevious(t *testing.T) {
	g := New(8, 4)
	g.SetEvent(1, 3, 4)
	g.SetEvent(4, 3, 7)
	g.ClearEvent(4, 3)

	for i := 2; i < g.Len(); i++ {
		e := eventAt(g, i, 3)
		if e == nil || e.Value != 4 || !e.IsCarried {
			t.Fatalf("beat %d: expected carried 4, got %+v", i, e)
		}
	}

	g.ClearEvent(1, 3)
	for i := 0; i < g.Len(); i++ {
		if e := eventAt(g, i, 3); e != nil {
			t.Fatalf("beat %d: expected empty, got %+v", i, e)
		}
	}
}

func TestResizeExtendsCarriedValues(t *testing.T) {
	g := New(4, 4)
	g.SetEvent(1, 5, 2)
	g.Resize(8)
	if g.Len() != 8 {
		t.Fatalf("expected 8 beats, got %d", g.Len())
	}
	for i := 2; i < 8; i++ {
		e := eventAt(g, i, 5)
		if e == nil || e.Value != 2 || !e.IsCarried {
			t.Fatalf("beat %d: expected carried 2, got %+v", i, e)
		}
	}

	g.Resize(3)
	if g.Len() != 3 {
		t.Fatalf("expected 3 beats, got %d", g.Len())
	}
	g.Resize(5)
	if e := eventAt(g, 4, 5); e == nil || e.Value != 2 {
		t.Fatalf("expected carried value after regrowth, got %+v", e)
	}
}

func TestClear(t *testing.T) {
	g := New(4, 8)
	g.SetNote(0, game.LayerBase, 0, &game.Note{Type: game.NoteA})
	g.SetEvent(0, 0, 1)
	g.Clear()
	if g.Len() != 4 || g.BeatsPerBar != 8 {
		t.Fatalf("clear changed shape to %d/%d", g.Len(), g.BeatsPerBar)
	}
	if !reflect.DeepEqual(g, New(4, 8)) {
		t.Fatal("clear left content behind")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := New(4, 4)
	n := &game.Note{Type: game.NoteA, CutDirection: game.CutUp}
	g.SetNote(1, game.LayerTop, 3, n)
	n.Type = game.NoteBomb
	if g.Beats[1].Notes[game.LayerTop][3].Type != game.NoteA {
		t.Fatal("grid aliases the caller's note")
	}

	c := g.Clone()
	if !reflect.DeepEqual(g, c) {
		t.Fatal("clone differs")
	}
	c.SetObstacle(2, 0, &game.Obstacle{Type: game.ObstacleTop})
	c.SetEvent(0, 0, 3)
	c.Beats[1].Notes[game.LayerTop][3].CutDirection = game.CutAny
	if g.Beats[2].Obstacles[0] != nil || g.Beats[0].Events[0] != nil {
		t.Fatal("edit to clone leaked into original")
	}
	if g.Beats[1].Notes[game.LayerTop][3].CutDirection != game.CutUp {
		t.Fatal("clone shares notes with original")
	}
}

func TestCanSquish2x(t *testing.T) {
	type squishTest struct {
		setup   func(g *Grid)
		problem int
		ok      bool
	}
	tests := []squishTest{
		{func(g *Grid) {}, -1, true},
		{func(g *Grid) { g.SetNote(2, game.LayerBase, 0, &game.Note{}) }, -1, true},
		{func(g *Grid) { g.SetEvent(0, 1, 3) }, -1, true},
		{func(g *Grid) { g.SetNote(5, game.LayerUpper, 1, &game.Note{}) }, 5, false},
		{func(g *Grid) { g.SetObstacle(3, 2, &game.Obstacle{}) }, 3, false},
		{func(g *Grid) {
			g.SetEvent(7, 0, 1)
			g.SetObstacle(5, 0, &game.Obstacle{})
		}, 5, false},
	}
	for i, test := range tests {
		g := New(8, 4)
		test.setup(g)
		problem, ok := g.CanSquish2x()
		if problem != test.problem || ok != test.ok {
			t.Logf("case %d: got (%d, %v), expected (%d, %v)", i, problem, ok, test.problem, test.ok)
			t.Fail()
		}
	}
}
