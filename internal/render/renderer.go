package render

import (
	"image/color"

	"git.lost.host/meutraa/beatedit/internal/grid"
)

type Renderer interface {
	Init() error
	Deinit() error
	Size() (columns, rows int)
	DrawGrid(g *grid.Grid, top, cursor int, status string)
	Fill(row, column int, message string)
	FillColor(row, column int, color color.RGBA, message string)
	Flush()
}

var _ Renderer = (*DefaultRenderer)(nil)
