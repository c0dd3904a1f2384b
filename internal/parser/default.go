package parser

import (
	"os"
	"strconv"
	"strings"

	"git.lost.host/meutraa/beatedit/internal/game"
	"github.com/pkg/errors"
)

// StepManiaParser imports dance-single charts from .sm files as base layer
// notes. Times are kept in beats, tempo changes after the first BPM are not
// applied since the grid has a single tempo.
type StepManiaParser struct{}

// 0 – No note
// 1 – Normal note
// 2 – Hold head
// 3 – Hold/Roll tail
// 4 – Roll head
// M – Mine (or other negative note)
// K – Automatic keysound
// L – Lift note
// F – Fake note

func (p *StepManiaParser) mapToNote(column int, c byte) (*game.NoteRecord, bool) {
	switch c {
	case '1', '2', '4':
		t := game.NoteA
		if column >= 2 {
			t = game.NoteB
		}
		return &game.NoteRecord{
			LaneIndex:    column,
			Layer:        game.LayerBase,
			Type:         t,
			CutDirection: arrowDirections[column],
		}, true
	case 'M':
		return &game.NoteRecord{
			LaneIndex:    column,
			Layer:        game.LayerBase,
			Type:         game.NoteBomb,
			CutDirection: game.CutAny,
		}, true
	}
	return nil, false
}

// Pad arrows in column order.
var arrowDirections = [game.NoteLanes]game.CutDirection{
	game.CutLeft,
	game.CutDown,
	game.CutUp,
	game.CutRight,
}

func (p *StepManiaParser) Parse(file string) ([]*game.Chart, error) {
	data, err := os.ReadFile(file)
	if nil != err {
		return nil, errors.Wrap(err, "unable to read chart")
	}

	str := strings.ReplaceAll(string(data), "\r", "")
	sections := strings.Split(str, "#NOTES:")
	meta := sections[0]
	difficulties := []game.Difficulty{}
	for _, section := range sections[1:] {
		lines := strings.SplitN(section, "\n", 7)
		if len(lines) < 7 {
			continue
		}
		chartType := strings.TrimSpace(lines[1])
		chartType = strings.TrimSuffix(chartType, ":")
		nKeys, ok := game.NKeyMap[chartType]
		if !ok {
			continue
		}
		difficulties = append(difficulties, game.Difficulty{
			Name:    strings.TrimSuffix(strings.TrimSpace(lines[3]), ":"),
			Msd:     strings.TrimSuffix(strings.TrimSpace(lines[4]), ":"),
			Section: lines[6],
			NKeys:   nKeys,
		})
	}

	bpm, err := p.firstBPM(meta)
	if nil != err {
		return nil, err
	}

	charts := []*game.Chart{}
	for _, difficulty := range difficulties {
		sd := &game.SaveData{
			Notes:     []game.NoteRecord{},
			Obstacles: []game.ObstacleRecord{},
			Events:    []game.EventRecord{},
		}

		section := strings.SplitN(difficulty.Section, ";", 2)[0]
		blocks := strings.Split(section, "\n,")
		for measure, block := range blocks {
			lines := []string{}
			for _, l := range strings.Split(block, "\n") {
				l = strings.TrimSpace(l)
				if strings.HasPrefix(l, "//") || strings.HasPrefix(l, ",") {
					continue
				}
				if len(l) >= int(difficulty.NKeys) {
					lines = append(lines, l)
				}
			}

			// Beat count is 4 per block
			lineCount := len(lines)
			for i, line := range lines {
				beat := float64(measure*4) + float64(i*4)/float64(lineCount)
				for column := 0; column < int(difficulty.NKeys); column++ {
					note, ok := p.mapToNote(column, line[column])
					if !ok {
						continue
					}
					note.Time = beat
					sd.Notes = append(sd.Notes, *note)
				}
			}
		}

		charts = append(charts, &game.Chart{
			Difficulty:     difficulty,
			BeatsPerMinute: bpm,
			Data:           sd,
		})
	}

	return charts, nil
}

func (p *StepManiaParser) firstBPM(meta string) (float64, error) {
	for _, mdl := range strings.Split(meta, "\n#") {
		mdl = strings.TrimPrefix(strings.TrimSpace(mdl), "#")
		if !strings.HasPrefix(mdl, "BPMS:") {
			continue
		}
		mdl = strings.TrimPrefix(mdl, "BPMS:")
		mdl = strings.ReplaceAll(mdl, "\n", "")
		first := strings.Split(strings.TrimSuffix(mdl, ";"), ",")[0]
		as := strings.Split(first, "=")
		if len(as) != 2 {
			return 0, errors.Errorf("malformed BPMS entry %q", first)
		}
		bpm, err := strconv.ParseFloat(strings.TrimSpace(as[1]), 64)
		if nil != err {
			return 0, errors.Wrap(err, "unable to parse bpm")
		}
		return bpm, nil
	}
	return 0, errors.New("chart has no BPMS")
}
