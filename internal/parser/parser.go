package parser

import "git.lost.host/meutraa/beatedit/internal/game"

type Parser interface {
	Parse(file string) ([]*game.Chart, error)
}

var (
	_ Parser = (*StepManiaParser)(nil)
	_ Parser = (*JSONParser)(nil)
)
