package grid

import (
	"errors"
	"reflect"
	"testing"

	"git.lost.host/meutraa/beatedit/internal/game"
)

// lossless has authored content on even rows only.
func lossless() *Grid {
	g := New(8, 4)
	g.SetNote(0, game.LayerBase, 0, &game.Note{Type: game.NoteA, CutDirection: game.CutDown})
	g.SetNote(2, game.LayerTop, 3, &game.Note{Type: game.NoteBomb, CutDirection: game.CutAny})
	g.SetObstacle(4, 1, &game.Obstacle{Type: game.ObstacleTop})
	g.SetObstacle(6, 1, &game.Obstacle{Type: game.ObstacleTop})
	g.SetEvent(2, 4, 6)
	g.SetEvent(6, 4, 1)
	return g
}

func TestStretch2x(t *testing.T) {
	g := lossless()
	g.Stretch2x()

	if g.Len() != 16 || g.BeatsPerBar != 8 {
		t.Fatalf("unexpected shape %d/%d", g.Len(), g.BeatsPerBar)
	}
	if n := g.Beats[4].Notes[game.LayerTop][3]; n == nil || n.Type != game.NoteBomb {
		t.Fatalf("note not moved to row 4: %+v", n)
	}
	if n := g.Beats[5].Notes[game.LayerTop][3]; n != nil {
		t.Fatal("note duplicated onto inserted row")
	}
	if o := g.Beats[9].Obstacles[1]; o == nil || o.Type != game.ObstacleTop {
		t.Fatal("obstacle not continued onto inserted row")
	}
	if e := g.Beats[5].Events[4]; e == nil || e.Value != 6 || !e.IsCarried {
		t.Fatalf("expected carried 6 on inserted row, got %+v", e)
	}
	if e := g.Beats[12].Events[4]; !e.Explicit() || e.Value != 1 {
		t.Fatalf("expected explicit 1 at row 12, got %+v", e)
	}
}

func TestSquishStretchInverse(t *testing.T) {
	g := lossless()
	s := g.Clone()
	s.Stretch2x()
	// Obstacles are continued onto the inserted rows, so the check flags them.
	if problem, ok := s.CanSquish2x(); ok || problem != 9 {
		t.Fatalf("expected continued obstacle at row 9, got %d/%v", problem, ok)
	}
	s.Squish2x()
	if !reflect.DeepEqual(g, s) {
		t.Fatal("squish(stretch(g)) != g")
	}
}

func TestStretchWithoutObstaclesSquishes(t *testing.T) {
	g := New(8, 4)
	g.SetNote(0, game.LayerBase, 0, &game.Note{Type: game.NoteA, CutDirection: game.CutDown})
	g.SetNote(6, game.LayerUpper, 2, &game.Note{Type: game.NoteB, CutDirection: game.CutLeft})
	g.SetEvent(2, 4, 6)

	s := g.Clone()
	s.Stretch2x()
	if problem, ok := s.CanSquish2x(); !ok {
		t.Fatalf("unexpected content at row %d", problem)
	}
	if err := s.SafeSquish2x(false); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(g, s) {
		t.Fatal("squish(stretch(g)) != g")
	}
}

func TestSquish2xDropsOddRows(t *testing.T) {
	g := New(5, 4)
	g.SetNote(1, game.LayerBase, 0, &game.Note{})
	g.SetEvent(4, 0, 2)
	g.Squish2x()

	if g.Len() != 3 || g.BeatsPerBar != 2 {
		t.Fatalf("unexpected shape %d/%d", g.Len(), g.BeatsPerBar)
	}
	if g.Beats[0].Notes[game.LayerBase][0] != nil {
		t.Fatal("odd row content kept")
	}
	if e := g.Beats[2].Events[0]; !e.Explicit() || e.Value != 2 {
		t.Fatalf("expected explicit 2 at row 2, got %+v", e)
	}
}

func TestSquish2xMinimumResolution(t *testing.T) {
	g := New(4, 1)
	g.Squish2x()
	if g.Len() != 4 || g.BeatsPerBar != 1 {
		t.Fatalf("squish below one row per bar changed the grid: %d/%d", g.Len(), g.BeatsPerBar)
	}
}

func TestSquish2xOddResolution(t *testing.T) {
	g := New(6, 3)
	g.SetNote(2, game.LayerBase, 1, &game.Note{})
	g.Squish2x()
	if g.Len() != 6 || g.BeatsPerBar != 3 || g.Beats[2].Notes[game.LayerBase][1] == nil {
		t.Fatalf("odd resolution was squished: %d/%d", g.Len(), g.BeatsPerBar)
	}
	if err := g.SafeSquish2x(true); !errors.Is(err, ErrOddResolution) {
		t.Fatalf("expected odd resolution error, got %v", err)
	}
}

func TestSafeSquish2x(t *testing.T) {
	g := New(8, 4)
	g.SetEvent(3, 0, 1)

	err := g.SafeSquish2x(false)
	var se *SquishError
	if !errors.As(err, &se) || se.Beat != 3 || !errors.Is(err, ErrLossySquish) {
		t.Fatalf("expected squish error at beat 3, got %v", err)
	}
	if g.Len() != 8 || g.BeatsPerBar != 4 {
		t.Fatal("refused squish modified the grid")
	}

	if err := g.SafeSquish2x(true); err != nil {
		t.Fatalf("forced squish failed: %v", err)
	}
	if g.Len() != 4 || g.BeatsPerBar != 2 {
		t.Fatalf("unexpected shape %d/%d", g.Len(), g.BeatsPerBar)
	}
	for i := range g.Beats {
		if g.Beats[i].Events[0] != nil {
			t.Fatalf("row %d kept an event from a dropped row", i)
		}
	}
}
