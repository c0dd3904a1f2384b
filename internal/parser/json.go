package parser

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"git.lost.host/meutraa/beatedit/internal/game"
	"github.com/pkg/errors"
)

const formatVersion = "2.0.0"

// JSONParser reads and writes one difficulty per .dat file. The file holds no
// tempo, BeatsPerMinute is attached to every parsed chart.
type JSONParser struct {
	BeatsPerMinute float64
}

type difficultyFile struct {
	Version string `json:"_version"`
	*game.SaveData
}

func (p *JSONParser) Parse(file string) ([]*game.Chart, error) {
	data, err := os.ReadFile(file)
	if nil != err {
		return nil, errors.Wrap(err, "unable to read chart")
	}
	sd, err := Decode(data)
	if nil != err {
		return nil, errors.Wrapf(err, "unable to parse %s", file)
	}
	name := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	return []*game.Chart{{
		Difficulty:     game.Difficulty{Name: name, NKeys: game.NoteLanes},
		BeatsPerMinute: p.BeatsPerMinute,
		Data:           sd,
	}}, nil
}

// Decode reads one difficulty. A top level null gives a nil SaveData.
func Decode(data []byte) (*game.SaveData, error) {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil, nil
	}
	f := difficultyFile{SaveData: &game.SaveData{}}
	if err := json.Unmarshal(data, &f); nil != err {
		return nil, err
	}
	if err := f.Validate(); nil != err {
		return nil, err
	}
	return f.SaveData, nil
}

// Encode writes sd, nil becoming a top level null.
func Encode(sd *game.SaveData) ([]byte, error) {
	if sd == nil {
		return []byte("null"), nil
	}
	return json.MarshalIndent(difficultyFile{Version: formatVersion, SaveData: sd}, "", "  ")
}

func (p *JSONParser) Write(file string, sd *game.SaveData) error {
	data, err := Encode(sd)
	if nil != err {
		return errors.Wrap(err, "unable to encode chart")
	}
	if err := os.WriteFile(file, data, 0644); nil != err {
		return errors.Wrap(err, "unable to write chart")
	}
	return nil
}
