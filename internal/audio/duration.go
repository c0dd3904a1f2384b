package audio

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/vorbis"
	"github.com/faiface/beep/wav"
	"github.com/pkg/errors"
)

var Extensions = []string{".ogg", ".egg", ".mp3", ".wav"}

func IsAudioFile(file string) bool {
	ext := strings.ToLower(filepath.Ext(file))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// SongDuration decodes the header of an audio file to find its length.
func SongDuration(file string) (time.Duration, error) {
	f, err := os.Open(file)
	if err != nil {
		return 0, errors.Wrap(err, "unable to open audio")
	}

	var streamer beep.StreamSeekCloser
	var format beep.Format
	switch strings.ToLower(filepath.Ext(file)) {
	case ".ogg", ".egg":
		streamer, format, err = vorbis.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	default:
		f.Close()
		return 0, errors.Errorf("unsupported audio format %s", filepath.Ext(file))
	}
	if err != nil {
		f.Close()
		return 0, errors.Wrapf(err, "unable to decode %s", filepath.Base(file))
	}
	defer streamer.Close()

	return format.SampleRate.D(streamer.Len()), nil
}

// Beats is the length of d in quarter note beats at the given tempo.
func Beats(d time.Duration, beatsPerMinute float64) float64 {
	return d.Minutes() * beatsPerMinute
}
