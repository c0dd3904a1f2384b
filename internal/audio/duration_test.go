package audio

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// writeWav writes a mono 16 bit PCM file of the given number of frames.
func writeWav(t *testing.T, file string, rate, frames int) {
	t.Helper()
	dataSize := frames * 2
	header := []interface{}{
		[4]byte{'R', 'I', 'F', 'F'}, uint32(36 + dataSize), [4]byte{'W', 'A', 'V', 'E'},
		[4]byte{'f', 'm', 't', ' '}, uint32(16), uint16(1), uint16(1),
		uint32(rate), uint32(rate * 2), uint16(2), uint16(16),
		[4]byte{'d', 'a', 't', 'a'}, uint32(dataSize),
	}
	f, err := os.Create(file)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	for _, v := range header {
		if err := binary.Write(f, binary.LittleEndian, v); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := f.Write(make([]byte, dataSize)); err != nil {
		t.Fatal(err)
	}
}

func TestSongDurationWav(t *testing.T) {
	file := filepath.Join(t.TempDir(), "song.wav")
	writeWav(t, file, 8000, 16000)
	d, err := SongDuration(file)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != 2*time.Second {
		t.Fatalf("expected 2s, got %v", d)
	}
}

func TestSongDurationErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := SongDuration(filepath.Join(dir, "missing.mp3")); err == nil {
		t.Fatal("expected error for missing file")
	}
	txt := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(txt, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := SongDuration(txt); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestBeats(t *testing.T) {
	if b := Beats(90*time.Second, 120); b != 180 {
		t.Fatalf("expected 180 beats, got %v", b)
	}
	if IsAudioFile("a.txt") || !IsAudioFile("b.OGG") {
		t.Fatal("unexpected audio file detection")
	}
}
