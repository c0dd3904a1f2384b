package game

import (
	"fmt"
)

// Times and durations are measured in beats (quarter notes), not seconds.

type NoteRecord struct {
	Time         float64      `json:"_time"`
	LaneIndex    int          `json:"_lineIndex"`
	Layer        Layer        `json:"_lineLayer"`
	Type         NoteType     `json:"_type"`
	CutDirection CutDirection `json:"_cutDirection"`
}

type ObstacleRecord struct {
	Time      float64      `json:"_time"`
	LaneIndex int          `json:"_lineIndex"`
	Type      ObstacleType `json:"_type"`
	Duration  float64      `json:"_duration"`
	Width     int          `json:"_width"`
}

type EventRecord struct {
	Time    float64 `json:"_time"`
	Channel int     `json:"_type"`
	Value   int     `json:"_value"`
}

// SaveData is the time based form of a chart. An absent chart is a nil
// *SaveData, which is distinct from an empty one.
type SaveData struct {
	Notes     []NoteRecord     `json:"_notes"`
	Obstacles []ObstacleRecord `json:"_obstacles"`
	Events    []EventRecord    `json:"_events"`
}

func (s *SaveData) Empty() bool {
	return len(s.Notes) == 0 && len(s.Obstacles) == 0 && len(s.Events) == 0
}

// Validate rejects records that cannot be placed on the grid.
func (s *SaveData) Validate() error {
	for i, n := range s.Notes {
		switch {
		case n.Time < 0:
			return fmt.Errorf("note %d: negative time %v", i, n.Time)
		case n.LaneIndex < 0 || n.LaneIndex >= NoteLanes:
			return fmt.Errorf("note %d: lane %d out of range", i, n.LaneIndex)
		case n.Layer >= LayerCount:
			return fmt.Errorf("note %d: layer %d out of range", i, n.Layer)
		case n.CutDirection > CutAny:
			return fmt.Errorf("note %d: cut direction %d out of range", i, n.CutDirection)
		case n.Type > NoteBomb:
			return fmt.Errorf("note %d: type %d out of range", i, n.Type)
		}
	}
	for i, o := range s.Obstacles {
		switch {
		case o.Time < 0:
			return fmt.Errorf("obstacle %d: negative time %v", i, o.Time)
		case o.LaneIndex < 0 || o.LaneIndex >= ObstacleLanes:
			return fmt.Errorf("obstacle %d: lane %d out of range", i, o.LaneIndex)
		case o.Width <= 0:
			return fmt.Errorf("obstacle %d: width %d must be positive", i, o.Width)
		case o.LaneIndex+o.Width > ObstacleLanes:
			return fmt.Errorf("obstacle %d: lanes %d-%d out of range", i, o.LaneIndex, o.LaneIndex+o.Width-1)
		case o.Duration < 0:
			return fmt.Errorf("obstacle %d: negative duration %v", i, o.Duration)
		case o.Type > ObstacleTop:
			return fmt.Errorf("obstacle %d: type %d out of range", i, o.Type)
		}
	}
	for i, e := range s.Events {
		switch {
		case e.Time < 0:
			return fmt.Errorf("event %d: negative time %v", i, e.Time)
		case e.Channel < 0 || e.Channel >= EventChannels:
			return fmt.Errorf("event %d: channel %d out of range", i, e.Channel)
		}
	}
	return nil
}
