package grid

import "fmt"

type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists the four cardinal directions clockwise from Up.
var Directions = [4]Direction{Up, Right, Down, Left}

// Offset converts dir to a unit step. Y grows downwards.
func (dir Direction) Offset() Coord {
	switch dir {
	case Up:
		return Coord{X: 0, Y: -1}
	case Down:
		return Coord{X: 0, Y: 1}
	case Left:
		return Coord{X: -1, Y: 0}
	case Right:
		return Coord{X: 1, Y: 0}
	}
	return Coord{}
}

func (dir Direction) Opposite() Direction {
	switch dir {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

func (dir Direction) String() string {
	switch dir {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(dir))
	}
}

// DirectionTo reports the direction of the unit step from a to b, if any.
func DirectionTo(a, b Coord) (Direction, bool) {
	for _, dir := range Directions {
		if a.Neighbor(dir) == b {
			return dir, true
		}
	}
	return 0, false
}

var (
	offsets4 = [4]Coord{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [8]Coord{
		{-1, -1}, {0, -1}, {1, -1},
		{-1, 0}, {1, 0},
		{-1, 1}, {0, 1}, {1, 1},
	}
)
