package game

type Difficulty struct {
	Name    string
	Msd     string // Meter as written in the source file
	Section string // Raw note data, used for hashing imported charts
	NKeys   uint8
}

var NKeyMap = map[string]uint8{
	"dance-single": 4,
}
