package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"git.lost.host/meutraa/beatedit/internal/config"
	"git.lost.host/meutraa/beatedit/internal/grid"
)

func main() {
	if err := run(); nil != err {
		log.Fatalln(err)
	}
}

func run() error {
	command := config.Parse(os.Args[1:])

	p := &Program{}
	if err := p.Init(); nil != err {
		return err
	}
	defer p.Deinit()

	if command == config.Import.FullCommand() {
		return p.Import()
	}

	if err := p.Open(); nil != err {
		return err
	}

	switch command {
	case config.Info.FullCommand():
		p.Info()
	case config.Show.FullCommand():
		return p.Show()
	case config.Stretch.FullCommand():
		p.Editor.Stretch2x()
		return p.Save()
	case config.Squish.FullCommand():
		if err := p.Editor.Squish2x(*config.Force); nil != err {
			if errors.Is(err, grid.ErrLossySquish) {
				return fmt.Errorf("%w (use --force to drop it)", err)
			}
			return err
		}
		return p.Save()
	case config.Edit.FullCommand():
		return p.Edit()
	case config.History.FullCommand():
		return p.History()
	case config.Restore.FullCommand():
		return p.Restore(*config.Revision)
	}
	return nil
}
