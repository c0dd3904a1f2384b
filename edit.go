package main

import (
	"fmt"
	"log"

	"git.lost.host/meutraa/beatedit/internal/game"
	"github.com/eiannone/keyboard"
)

var (
	noteKeys     = [game.NoteLanes]rune{'1', '2', '3', '4'}
	obstacleKeys = [game.ObstacleLanes]rune{'z', 'x', 'c', 'v'}
)

const editHelp = "1-4 note  zxcv wall  e/E event  +/- resolution  _ force  u/r undo/redo  s save  esc quit"

func laneOf(keys []rune, r rune) int {
	for i, k := range keys {
		if k == r {
			return i
		}
	}
	return -1
}

// Edit runs the interactive editor until escape is pressed.
func (p *Program) Edit() error {
	keyChannel, err := keyboard.GetKeys(16)
	if nil != err {
		return fmt.Errorf("unable to open keyboard: %w", err)
	}
	defer func() {
		if err := keyboard.Close(); nil != err {
			log.Println("unable to close keyboard", err)
		}
	}()

	if err := p.Renderer.Init(); nil != err {
		return err
	}
	defer p.Renderer.Deinit()

	changes := p.Editor.Subscribe()
	cursor, top := 0, 0
	status := editHelp
	dirty := true

	for {
		select {
		case <-changes:
			dirty = true
		default:
		}
		g := p.Editor.Grid()
		if cursor >= g.Len() {
			cursor = g.Len() - 1
		}
		if cursor < 0 {
			cursor = 0
		}
		_, rows := p.Renderer.Size()
		if cursor < top {
			top = cursor
		} else if cursor >= top+rows-1 {
			top = cursor - rows + 2
		}
		if dirty {
			p.Renderer.DrawGrid(g, top, cursor, status)
			dirty = false
		}

		key := <-keyChannel
		if nil != key.Err {
			return key.Err
		}
		status = editHelp
		dirty = true

		switch key.Key {
		case keyboard.KeyEsc:
			return nil
		case keyboard.KeyArrowUp:
			cursor--
			continue
		case keyboard.KeyArrowDown:
			cursor++
			continue
		case keyboard.KeyPgup:
			cursor -= g.BeatsPerBar
			continue
		case keyboard.KeyPgdn:
			cursor += g.BeatsPerBar
			continue
		}
		if g.Len() == 0 {
			continue
		}

		beat := &g.Beats[cursor]
		if lane := laneOf(noteKeys[:], key.Rune); lane >= 0 {
			var note *game.Note
			if beat.Notes[game.LayerBase][lane] == nil {
				t := game.NoteA
				if lane >= game.NoteLanes/2 {
					t = game.NoteB
				}
				note = &game.Note{Type: t, CutDirection: game.CutDown}
			}
			p.Editor.SetNote(cursor, game.LayerBase, lane, note)
			continue
		}
		if lane := laneOf(obstacleKeys[:], key.Rune); lane >= 0 {
			var obstacle *game.Obstacle
			if beat.Obstacles[lane] == nil {
				obstacle = &game.Obstacle{Type: game.ObstacleFullHeight}
			}
			p.Editor.SetObstacle(cursor, lane, obstacle)
			continue
		}

		switch key.Rune {
		case 'e':
			value := 1
			if e := beat.Events[0]; e != nil {
				value = e.Value + 1
			}
			p.Editor.SetEvent(cursor, 0, value)
		case 'E':
			p.Editor.ClearEvent(cursor, 0)
		case '+':
			p.Editor.Stretch2x()
			cursor *= 2
		case '-', '_':
			if err := p.Editor.Squish2x(key.Rune == '_'); nil != err {
				status = fmt.Sprintf("%v, press _ to squish anyway", err)
			} else {
				cursor /= 2
			}
		case 'u':
			if !p.Editor.Undo() {
				status = "nothing to undo"
			}
		case 'r':
			if !p.Editor.Redo() {
				status = "nothing to redo"
			}
		case 's':
			if err := p.Save(); nil != err {
				status = err.Error()
			} else {
				status = "saved"
			}
		}
	}
}
