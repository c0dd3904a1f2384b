package render

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"git.lost.host/meutraa/beatedit/internal/game"
	"git.lost.host/meutraa/beatedit/internal/grid"
	"git.lost.host/meutraa/beatedit/internal/theme"
	"golang.org/x/term"
)

type DefaultRenderer struct {
	Out   *os.File
	Theme theme.Theme

	buffer strings.Builder
}

func (r *DefaultRenderer) out() *os.File {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}

func (r *DefaultRenderer) th() theme.Theme {
	if r.Theme == nil {
		return &theme.DefaultTheme{}
	}
	return r.Theme
}

func (r *DefaultRenderer) isTerminal() bool {
	return term.IsTerminal(int(r.out().Fd()))
}

func (r *DefaultRenderer) Init() error {
	if !r.isTerminal() {
		return nil
	}
	_, err := fmt.Fprintf(r.out(), "%s%s%s",
		"\033[?1049h", // Enable alternate buffer
		"\033[?25l",   // Make the cursor invisible
		"\033[J",      // Clear the screen
	)
	return err
}

func (r *DefaultRenderer) Deinit() error {
	if !r.isTerminal() {
		return nil
	}
	_, err := fmt.Fprintf(r.out(), "%s%s",
		"\033[?1049l", // Disable alternate buffer
		"\033[?25h",   // Make the cursor visible
	)
	return err
}

// Size falls back to 80x24 when the output is not a terminal.
func (r *DefaultRenderer) Size() (int, int) {
	columns, rows, err := term.GetSize(int(r.out().Fd()))
	if nil != err {
		return 80, 24
	}
	return columns, rows
}

// DrawGrid redraws the rows of g starting at top, marking cursor, with a
// status line at the bottom of the screen.
func (r *DefaultRenderer) DrawGrid(g *grid.Grid, top, cursor int, status string) {
	_, rows := r.Size()
	r.buffer.WriteString("\033[2J")
	for screen := 1; screen < rows; screen++ {
		i := top + screen - 1
		if i >= g.Len() {
			break
		}
		marker := " "
		if i == cursor {
			marker = ">"
		}
		r.FillColor(screen, 1, r.th().GetRowColor(game.Denom(i, g.BeatsPerBar)), marker+Line(r.th(), g, i))
	}
	r.Fill(rows, 1, status)
	r.Flush()
}

func (r *DefaultRenderer) Fill(row, column int, message string) {
	r.buffer.WriteString("\033[")
	r.buffer.WriteString(strconv.FormatInt(int64(row), 10))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.FormatInt(int64(column), 10))
	r.buffer.WriteString("H")
	r.buffer.WriteString(message)
}

func (r *DefaultRenderer) FillColor(row, column int, c color.RGBA, message string) {
	r.buffer.WriteString("\033[")
	r.buffer.WriteString(strconv.FormatInt(int64(row), 10))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.FormatInt(int64(column), 10))
	r.buffer.WriteString("H\033[38;2;")
	r.buffer.WriteString(strconv.FormatInt(int64(c.R), 10))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.FormatInt(int64(c.G), 10))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.FormatInt(int64(c.B), 10))
	r.buffer.WriteString("m")
	r.buffer.WriteString(message)
	r.buffer.WriteString("\033[0m")
}

func (r *DefaultRenderer) Flush() {
	r.out().Write([]byte(r.buffer.String()))
	r.buffer.Reset()
}

// Line formats one grid row: index, time in beats, the three note layers,
// the obstacle lanes and the event channels.
func Line(th theme.Theme, g *grid.Grid, i int) string {
	var b strings.Builder
	beat := &g.Beats[i]
	fmt.Fprintf(&b, "%5d %7.3f", i, g.TimeInBeats(i))
	for layer := range beat.Notes {
		b.WriteString(" │")
		for _, n := range beat.Notes[layer] {
			b.WriteString(th.RenderNote(n))
		}
	}
	b.WriteString(" │")
	for _, o := range beat.Obstacles {
		b.WriteString(th.RenderObstacle(o))
	}
	b.WriteString(" │")
	for _, e := range beat.Events {
		b.WriteString(th.RenderEvent(e))
	}
	return b.String()
}

// WriteGrid prints every row of g, bar starts separated by a blank line.
func WriteGrid(w io.Writer, th theme.Theme, g *grid.Grid) error {
	for i := 0; i < g.Len(); i++ {
		if i > 0 && game.IsBarStart(i, g.BeatsPerBar) {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, Line(th, g, i)+"\n"); err != nil {
			return err
		}
	}
	return nil
}
