package grid

import (
	"errors"
	"fmt"

	"git.lost.host/meutraa/beatedit/internal/game"
)

var (
	ErrLossySquish   = errors.New("squish would discard authored content")
	ErrOddResolution = errors.New("resolution is not divisible by two")
)

// SquishError names the first row that a squish would drop.
type SquishError struct {
	Beat int
}

func (e *SquishError) Error() string {
	return fmt.Sprintf("beat %d: %v", e.Beat, ErrLossySquish)
}

func (e *SquishError) Is(target error) bool {
	return target == ErrLossySquish
}

// Stretch2x doubles the resolution. Each row i becomes rows 2i and 2i+1, the
// inserted odd row only repeats the obstacles so walls stay continuous.
func (g *Grid) Stretch2x() {
	beats := make([]game.Beat, len(g.Beats)*2)
	for i := range g.Beats {
		beats[2*i] = g.Beats[i]
		for lane, o := range g.Beats[i].Obstacles {
			if o != nil {
				oo := *o
				beats[2*i+1].Obstacles[lane] = &oo
			}
		}
	}
	g.Beats = beats
	g.BeatsPerBar *= 2
	g.fillAllForward()
}

// Squish2x halves the resolution by keeping the even rows. Content on odd rows
// is dropped without warning, check CanSquish2x first or use SafeSquish2x.
// An odd BeatsPerBar cannot be halved and leaves the grid unchanged.
func (g *Grid) Squish2x() {
	if g.BeatsPerBar%2 != 0 {
		return
	}
	beats := make([]game.Beat, (len(g.Beats)+1)/2)
	for i := range beats {
		beats[i] = g.Beats[i*2]
	}
	g.Beats = beats
	g.BeatsPerBar /= 2
	g.fillAllForward()
}

// SafeSquish2x squishes only when no authored content would be lost, unless
// force is set.
func (g *Grid) SafeSquish2x(force bool) error {
	if g.BeatsPerBar%2 != 0 {
		return ErrOddResolution
	}
	if !force {
		if problem, ok := g.CanSquish2x(); !ok {
			return &SquishError{Beat: problem}
		}
	}
	g.Squish2x()
	return nil
}
