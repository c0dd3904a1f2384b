package store

import (
	"time"

	"git.lost.host/meutraa/beatedit/internal/game"
)

type Store interface {
	Init() error
	Deinit()

	// Save a revision of the named chart, returning its id
	Save(name string, sd *game.SaveData) (int64, error)

	// Load every revision of the named chart, oldest first
	Load(name string) ([]Revision, error)

	Get(id int64) (*Revision, error)
}

type Revision struct {
	ID      int64
	Sum     string
	Name    string
	Created time.Time
	Data    *game.SaveData
}
