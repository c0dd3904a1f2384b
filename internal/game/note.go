package game

const (
	NoteLanes     = 4  // Horizontal lanes per note layer
	ObstacleLanes = 4  // Horizontal lanes in the obstacle layer
	EventChannels = 16 // Independent event tracks
)

type NoteType uint8

// Values match the persisted _type field.
const (
	NoteA     NoteType = 0
	NoteB     NoteType = 1
	NoteGhost NoteType = 2
	NoteBomb  NoteType = 3
)

type CutDirection uint8

const (
	CutUp CutDirection = iota
	CutDown
	CutLeft
	CutRight
	CutUpLeft
	CutUpRight
	CutDownLeft
	CutDownRight
	CutAny
)

// Layer is one of the three note planes stacked at each lane.
type Layer uint8

const (
	LayerBase Layer = iota
	LayerUpper
	LayerTop
	LayerCount = 3
)

// Note occupies one lane of one layer at one beat.
type Note struct {
	Type         NoteType
	CutDirection CutDirection
}
