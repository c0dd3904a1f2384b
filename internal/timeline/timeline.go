// Package timeline converts between the quantized editing grid and the time
// based save records.
package timeline

import (
	"math"
	"sort"

	"git.lost.host/meutraa/beatedit/internal/game"
	"git.lost.host/meutraa/beatedit/internal/grid"
)

const (
	// Finest resolution inferred on load, a 1/256 note.
	MaxBeatsPerBar = 256
	tolerance      = 1e-5
)

// run is a contiguous stretch of one obstacle type in one lane.
type run struct {
	start, length int
	kind          game.ObstacleType
	consumed      bool
}

// ToSaveData flattens g into save records. When clip is set, rows starting
// after maxSeconds at the given tempo are dropped. It returns nil when there
// is nothing to save.
func ToSaveData(g *grid.Grid, beatsPerMinute float64, clip bool, maxSeconds float64) *game.SaveData {
	end := g.Len()
	if clip {
		for i := 0; i < g.Len(); i++ {
			if g.TimeInBeats(i)/beatsPerMinute*60 > maxSeconds {
				end = i
				break
			}
		}
	}

	sd := &game.SaveData{
		Notes:     []game.NoteRecord{},
		Obstacles: []game.ObstacleRecord{},
		Events:    []game.EventRecord{},
	}

	for i := 0; i < end; i++ {
		beat := &g.Beats[i]
		t := g.TimeInBeats(i)
		for layer := range beat.Notes {
			for lane, n := range beat.Notes[layer] {
				if n == nil {
					continue
				}
				sd.Notes = append(sd.Notes, game.NoteRecord{
					Time:         t,
					LaneIndex:    lane,
					Layer:        game.Layer(layer),
					Type:         n.Type,
					CutDirection: n.CutDirection,
				})
			}
		}
		for ch, e := range beat.Events {
			if !e.Explicit() {
				continue
			}
			sd.Events = append(sd.Events, game.EventRecord{
				Time:    t,
				Channel: ch,
				Value:   e.Value,
			})
		}
	}

	sd.Obstacles = encodeObstacles(g, end)

	if sd.Empty() {
		return nil
	}
	return sd
}

func laneRuns(g *grid.Grid, lane, end int) []*run {
	runs := []*run{}
	var current *run
	for i := 0; i < end; i++ {
		o := g.Beats[i].Obstacles[lane]
		if o == nil {
			current = nil
			continue
		}
		if current != nil && current.kind == o.Type {
			current.length++
			continue
		}
		current = &run{start: i, length: 1, kind: o.Type}
		runs = append(runs, current)
	}
	return runs
}

// encodeObstacles run length encodes each lane, then merges identical runs in
// neighbouring lanes into one wider record, scanning lanes left to right.
func encodeObstacles(g *grid.Grid, end int) []game.ObstacleRecord {
	var lanes [game.ObstacleLanes][]*run
	for lane := range lanes {
		lanes[lane] = laneRuns(g, lane, end)
	}

	match := func(lane int, r *run) *run {
		for _, other := range lanes[lane] {
			if !other.consumed && other.start == r.start && other.length == r.length && other.kind == r.kind {
				return other
			}
		}
		return nil
	}

	records := []game.ObstacleRecord{}
	for lane := range lanes {
		for _, r := range lanes[lane] {
			if r.consumed {
				continue
			}
			r.consumed = true
			width := 1
			for next := lane + 1; next < game.ObstacleLanes; next++ {
				other := match(next, r)
				if other == nil {
					break
				}
				other.consumed = true
				width++
			}
			records = append(records, game.ObstacleRecord{
				Time:      g.TimeInBeats(r.start),
				LaneIndex: lane,
				Type:      r.kind,
				Duration:  float64(r.length) * 4 / float64(g.BeatsPerBar),
				Width:     width,
			})
		}
	}

	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Time != records[j].Time {
			return records[i].Time < records[j].Time
		}
		return records[i].LaneIndex < records[j].LaneIndex
	})
	return records
}

// beatsPerBarFor finds the coarsest resolution, starting at 4 rows per bar
// and doubling, at which t falls on a row.
func beatsPerBarFor(t float64) int {
	bpb := grid.DefaultBeatsPerBar
	for bpb < MaxBeatsPerBar {
		x := t * float64(bpb) / 4
		if math.Abs(x-math.Round(x)) < tolerance {
			break
		}
		bpb *= 2
	}
	return bpb
}

// InferBeatsPerBar returns the finest resolution used by any record of sd.
func InferBeatsPerBar(sd *game.SaveData) int {
	bpb := grid.DefaultBeatsPerBar
	consider := func(t float64) {
		if b := beatsPerBarFor(t); b > bpb {
			bpb = b
		}
	}
	for _, n := range sd.Notes {
		consider(n.Time)
	}
	for _, o := range sd.Obstacles {
		consider(o.Time)
		consider(o.Time + o.Duration)
	}
	for _, e := range sd.Events {
		consider(e.Time)
	}
	return bpb
}

func index(t float64, beatsPerBar int) int {
	return int(math.Round(t * float64(beatsPerBar) / 4))
}

// ToEditorGrid rebuilds a grid from save records at the finest resolution the
// records use. sd must have passed Validate. It returns nil for a nil sd.
func ToEditorGrid(sd *game.SaveData) *grid.Grid {
	if sd == nil {
		return nil
	}
	bpb := InferBeatsPerBar(sd)

	maxTime := 0.0
	for _, n := range sd.Notes {
		maxTime = math.Max(maxTime, n.Time)
	}
	for _, o := range sd.Obstacles {
		maxTime = math.Max(maxTime, o.Time+o.Duration)
	}
	for _, e := range sd.Events {
		maxTime = math.Max(maxTime, e.Time)
	}

	g := grid.New(index(maxTime, bpb)+1, bpb)

	for _, n := range sd.Notes {
		g.Beats[index(n.Time, bpb)].Notes[n.Layer][n.LaneIndex] = &game.Note{
			Type:         n.Type,
			CutDirection: n.CutDirection,
		}
	}

	for _, o := range sd.Obstacles {
		start := index(o.Time, bpb)
		length := index(o.Time+o.Duration, bpb) - start
		if length < 1 {
			length = 1
		}
		for i := start; i < start+length && i < g.Len(); i++ {
			for lane := o.LaneIndex; lane < o.LaneIndex+o.Width && lane < game.ObstacleLanes; lane++ {
				g.Beats[i].Obstacles[lane] = &game.Obstacle{Type: o.Type}
			}
		}
	}

	for _, e := range sd.Events {
		g.Beats[index(e.Time, bpb)].Events[e.Channel] = &game.Event{Value: e.Value}
	}
	for ch := 0; ch < game.EventChannels; ch++ {
		g.FillForward(0, ch, false)
	}

	return g
}
