package theme

import (
	"image/color"

	"git.lost.host/meutraa/beatedit/internal/game"
)

type Theme interface {
	RenderNote(note *game.Note) string
	RenderObstacle(obstacle *game.Obstacle) string
	RenderEvent(event *game.Event) string
	GetRowColor(denom int) color.RGBA
}
