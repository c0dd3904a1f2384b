package game

import (
	"math/big"
)

// Denom returns the denominator of the beat fraction at grid row index, so a
// row on a quarter note is 1, an eighth 2, a sixteenth 4, a triplet 3.
func Denom(index, beatsPerBar int) int {
	if beatsPerBar <= 0 {
		return 1
	}
	r := big.NewRat(int64(index*4), int64(beatsPerBar))
	return int(r.Denom().Int64())
}

// IsBarStart reports whether row index begins a 4 beat bar.
func IsBarStart(index, beatsPerBar int) bool {
	return beatsPerBar > 0 && index%beatsPerBar == 0
}
