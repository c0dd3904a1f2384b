package fixture

import (
	"encoding/json"

	"git.lost.host/meutraa/beatedit/internal/game"
)

func GetChart() (*game.SaveData, error) {
	var sd game.SaveData
	if err := json.Unmarshal([]byte(Difficulty), &sd); nil != err {
		return nil, err
	}
	return &sd, nil
}

// Difficulty is an Expert.dat with a light show on channels 0 and 4.
const Difficulty = `{
  "_version": "2.0.0",
  "_notes": [
    {"_time": 0, "_lineIndex": 1, "_lineLayer": 0, "_type": 0, "_cutDirection": 1},
    {"_time": 1, "_lineIndex": 2, "_lineLayer": 0, "_type": 1, "_cutDirection": 1},
    {"_time": 1.5, "_lineIndex": 0, "_lineLayer": 2, "_type": 0, "_cutDirection": 4},
    {"_time": 2, "_lineIndex": 3, "_lineLayer": 1, "_type": 3, "_cutDirection": 8},
    {"_time": 3.75, "_lineIndex": 1, "_lineLayer": 0, "_type": 1, "_cutDirection": 0}
  ],
  "_obstacles": [
    {"_time": 4, "_lineIndex": 0, "_type": 0, "_duration": 2, "_width": 2},
    {"_time": 6, "_lineIndex": 2, "_type": 1, "_duration": 0.5, "_width": 1}
  ],
  "_events": [
    {"_time": 0, "_type": 0, "_value": 1},
    {"_time": 2, "_type": 0, "_value": 0},
    {"_time": 4, "_type": 4, "_value": 5}
  ]
}`

// StepMania is a two measure dance-single chart with a mine.
const StepMania = `#TITLE:Test;
#ARTIST:Nobody;
#OFFSET:-0.010;
#BPMS:0.000=150.000,8.000=75.000;
#NOTES:
     dance-single:
     Someone:
     Hard:
     8:
     0.1,0.2,0.3,0.4,0.5:
1000
0100
0010
0001
,  // measure 1
1000
0000
00M0
0000
0000
0000
0000
0002
;
#NOTES:
     pump-single:
     Someone:
     Easy:
     2:
     0,0,0,0,0:
00000
;
`
