package game

type ObstacleType uint8

const (
	ObstacleFullHeight ObstacleType = 0
	ObstacleTop        ObstacleType = 1
)

type Obstacle struct {
	Type ObstacleType
}
