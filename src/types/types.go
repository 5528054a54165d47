package types

type Direction int

const (
	DirDown Direction = -1
	DirNone Direction = 0
	DirUp   Direction = 1
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	}
	return "none"
}

// DirectionBetween derives the travel direction from one floor to another.
func DirectionBetween(from, to int) Direction {
	if from < to {
		return DirUp
	}
	if from > to {
		return DirDown
	}
	return DirNone
}

// HallCall is a pickup request placed at a floor landing.
type HallCall struct {
	Floor int
	Dir   Direction
}

// ElevSnapshot is a point-in-time copy of an elevator's observable state,
// used for wait-time projections without touching the live elevator.
type ElevSnapshot struct {
	Floor        int
	Dir          Direction
	Destinations []int
}
