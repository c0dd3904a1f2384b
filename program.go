package main

import (
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"git.lost.host/meutraa/beatedit/internal/audio"
	"git.lost.host/meutraa/beatedit/internal/config"
	"git.lost.host/meutraa/beatedit/internal/editor"
	"git.lost.host/meutraa/beatedit/internal/game"
	"git.lost.host/meutraa/beatedit/internal/parser"
	"git.lost.host/meutraa/beatedit/internal/render"
	"git.lost.host/meutraa/beatedit/internal/store"
	"git.lost.host/meutraa/beatedit/internal/theme"
	"github.com/pkg/errors"
)

const defaultDifficulty = "Expert"

type Program struct {
	Parser   *parser.JSONParser
	Importer parser.Parser
	Store    store.Store
	Theme    theme.Theme
	Renderer render.Renderer
	Editor   *editor.Controller

	audioFile, smFile string
	chartFiles        []string
	chartFile         string
	chart             *game.Chart

	songLength time.Duration
}

func (p *Program) Init() error {
	p.Parser = &parser.JSONParser{BeatsPerMinute: *config.BeatsPerMinute}
	p.Importer = &parser.StepManiaParser{}
	p.Store = &store.DefaultStore{Path: *config.Database}
	p.Theme = &theme.DefaultTheme{}
	p.Renderer = &render.DefaultRenderer{Out: os.Stdout, Theme: p.Theme}
	p.Editor = editor.NewController(*config.UndoLevels)

	if err := filepath.Walk(config.Directory, func(f string, info os.FileInfo, err error) error {
		if nil != err {
			return err
		}
		if info.IsDir() {
			return nil
		}
		switch strings.ToLower(path.Ext(info.Name())) {
		case ".dat", ".json":
			if !strings.EqualFold(info.Name(), "info.dat") {
				p.chartFiles = append(p.chartFiles, f)
			}
		case ".sm":
			p.smFile = f
		default:
			if audio.IsAudioFile(f) {
				p.audioFile = f
			}
		}
		return nil
	}); nil != err {
		return fmt.Errorf("unable to walk song directory: %w", err)
	}

	p.songLength = *config.Duration
	if p.songLength == 0 && p.audioFile != "" {
		d, err := audio.SongDuration(p.audioFile)
		if nil != err {
			log.Println("unable to read song length", err)
		}
		p.songLength = d
	}

	return p.Store.Init()
}

func (p *Program) Deinit() {
	p.Store.Deinit()
}

func (p *Program) songBeats() float64 {
	return audio.Beats(p.songLength, *config.BeatsPerMinute)
}

func (p *Program) maxSeconds() float64 {
	if p.songLength == 0 {
		return 0
	}
	return p.songLength.Seconds()
}

func (p *Program) difficultyName() string {
	if *config.Difficulty != "" {
		return *config.Difficulty
	}
	return defaultDifficulty
}

// Open loads the selected difficulty into the editor. A directory without one
// starts an empty chart covering the song.
func (p *Program) Open() error {
	for _, f := range p.chartFiles {
		name := strings.TrimSuffix(filepath.Base(f), filepath.Ext(f))
		if *config.Difficulty == "" || strings.EqualFold(name, *config.Difficulty) {
			p.chartFile = f
			break
		}
	}

	if p.chartFile == "" {
		if p.smFile != "" {
			return errors.New("no difficulty file found, run import first")
		}
		p.chartFile = filepath.Join(config.Directory, p.difficultyName()+".dat")
		p.chart = &game.Chart{
			Difficulty:     game.Difficulty{Name: p.difficultyName(), NKeys: game.NoteLanes},
			BeatsPerMinute: *config.BeatsPerMinute,
		}
		log.Printf("Starting new chart %v\n", p.chartFile)
		p.Editor.Load(nil, p.songBeats())
		return nil
	}

	log.Printf("Opening %v (%v)\n", p.chartFile, p.audioFile)
	charts, err := p.Parser.Parse(p.chartFile)
	if nil != err {
		return err
	}
	p.chart = charts[0]
	p.Editor.Load(p.chart.Data, p.songBeats())
	return nil
}

// Save writes the editor contents to the chart file and records a revision.
func (p *Program) Save() error {
	sd := p.Editor.SaveData(*config.BeatsPerMinute, *config.Clip && p.songLength > 0, p.maxSeconds())
	if err := p.Parser.Write(p.chartFile, sd); nil != err {
		return err
	}
	id, err := p.Store.Save(p.chart.Difficulty.Name, sd)
	if nil != err {
		return err
	}
	log.Printf("Saved %v (revision %v)\n", p.chartFile, id)
	return nil
}

func (p *Program) Info() {
	g := p.Editor.Grid()
	sd := p.Editor.SaveData(*config.BeatsPerMinute, false, 0)
	chart := game.Chart{Difficulty: p.chart.Difficulty, BeatsPerMinute: p.chart.BeatsPerMinute, Data: sd}
	obstacles, events := 0, 0
	if sd != nil {
		obstacles, events = len(sd.Obstacles), len(sd.Events)
	}

	fmt.Printf("   Difficulty:  %v\n", chart.Difficulty.Name)
	fmt.Printf("          BPM:  %6.2f\n", *config.BeatsPerMinute)
	fmt.Printf("  Song length:  %v\n", p.songLength)
	fmt.Printf("         Rows:  %6v\n", g.Len())
	fmt.Printf("Rows per bar:  %6v\n", g.BeatsPerBar)
	fmt.Printf("        Notes:  %6v\n", chart.NoteCount())
	fmt.Printf("        Bombs:  %6v\n", chart.BombCount())
	fmt.Printf("    Obstacles:  %6v\n", obstacles)
	fmt.Printf("       Events:  %6v\n", events)
	if problem, ok := g.CanSquish2x(); ok {
		fmt.Println("  Squishable:  yes")
	} else {
		fmt.Printf("  Squishable:  no, content on row %v\n", problem)
	}
}

func (p *Program) Show() error {
	return render.WriteGrid(os.Stdout, p.Theme, p.Editor.Grid())
}

// Import converts the directory's .sm chart into a difficulty file.
func (p *Program) Import() error {
	if p.smFile == "" {
		return errors.New("unable to find .sm file in given directory")
	}
	charts, err := p.Importer.Parse(p.smFile)
	if nil != err {
		return err
	}
	for _, chart := range charts {
		if *config.Difficulty != "" && !strings.EqualFold(chart.Difficulty.Name, *config.Difficulty) {
			continue
		}
		file := filepath.Join(config.Directory, chart.Difficulty.Name+".dat")
		if err := p.Parser.Write(file, chart.Data); nil != err {
			return err
		}
		if _, err := p.Store.Save(chart.Difficulty.Name, chart.Data); nil != err {
			return err
		}
		log.Printf("Imported %v (%v notes, %v bpm)\n", file, chart.NoteCount(), chart.BeatsPerMinute)
	}
	return nil
}

func (p *Program) History() error {
	revisions, err := p.Store.Load(p.chart.Difficulty.Name)
	if nil != err {
		return err
	}
	for _, r := range revisions {
		notes := 0
		if r.Data != nil {
			notes = len(r.Data.Notes)
		}
		fmt.Printf("%4v  %v  %6v notes  %v\n", r.ID, r.Created.Format(time.RFC3339), notes, r.Sum[:8])
	}
	return nil
}

func (p *Program) Restore(id int64) error {
	r, err := p.Store.Get(id)
	if nil != err {
		return err
	}
	if r.Name != p.chart.Difficulty.Name {
		return errors.Errorf("revision %v belongs to %v", id, r.Name)
	}
	p.Editor.Load(r.Data, p.songBeats())
	return p.Save()
}
