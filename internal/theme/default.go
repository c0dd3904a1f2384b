package theme

import (
	"image/color"
	"strconv"

	"git.lost.host/meutraa/beatedit/internal/game"
)

type DefaultTheme struct {
}

// RenderNote is two cells wide, the note type then its cut direction.
func (t *DefaultTheme) RenderNote(note *game.Note) string {
	if note == nil {
		return emptySym + emptySym
	}
	return typeSyms[note.Type] + directionSyms[note.CutDirection]
}

func (t *DefaultTheme) RenderObstacle(obstacle *game.Obstacle) string {
	if obstacle == nil {
		return emptySym
	}
	return obstacleSyms[obstacle.Type]
}

// RenderEvent shows explicit values in base 36, carried values as a bar.
func (t *DefaultTheme) RenderEvent(event *game.Event) string {
	switch {
	case event == nil:
		return emptySym
	case event.IsCarried:
		return carriedSym
	case event.Value >= 0 && event.Value < 36:
		return strconv.FormatInt(int64(event.Value), 36)
	}
	return "+"
}

func (t *DefaultTheme) GetRowColor(denom int) color.RGBA {
	col, ok := rowColors[denom]
	if !ok {
		return rowColors[-1]
	}
	return col
}

const (
	emptySym   = "·"
	carriedSym = "│"
)

var (
	typeSyms = map[game.NoteType]string{
		game.NoteA:     "A",
		game.NoteB:     "B",
		game.NoteGhost: "G",
		game.NoteBomb:  "✖",
	}
	directionSyms = map[game.CutDirection]string{
		game.CutUp:        "↑",
		game.CutDown:      "↓",
		game.CutLeft:      "←",
		game.CutRight:     "→",
		game.CutUpLeft:    "↖",
		game.CutUpRight:   "↗",
		game.CutDownLeft:  "↙",
		game.CutDownRight: "↘",
		game.CutAny:       "•",
	}
	obstacleSyms = map[game.ObstacleType]string{
		game.ObstacleFullHeight: "█",
		game.ObstacleTop:        "▀",
	}
	rowColors = map[int]color.RGBA{
		1:  {236, 30, 0, 255},    // 1/4 red
		2:  {0, 118, 236, 255},   // 1/8 blue
		3:  {106, 0, 236, 255},   // 1/12 purple
		4:  {236, 195, 0, 255},   // 1/16 yellow
		6:  {236, 0, 106, 255},   // 1/24 pink
		8:  {236, 128, 0, 255},   // 1/32 orange
		12: {173, 236, 236, 255}, // 1/48 light blue
		16: {0, 236, 128, 255},   // 1/64 green
		48: {110, 147, 89, 255},  // 1/192 olive
		-1: {106, 106, 106, 255}, // other grey
	}
)
