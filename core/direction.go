package core

// Direction is a unit step on the grid, or zero when stationary
type Direction struct {
	DX, DY int
}

var (
	DirNone  = Direction{}
	DirUp    = Direction{DX: 0, DY: -1}
	DirDown  = Direction{DX: 0, DY: 1}
	DirLeft  = Direction{DX: -1, DY: 0}
	DirRight = Direction{DX: 1, DY: 0}
)

// Cardinals lists the four travel directions in random-draw order
var Cardinals = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

// IsZero reports a stationary direction
func (d Direction) IsZero() bool {
	return d.DX == 0 && d.DY == 0
}

// Opposite returns the reversed direction
func (d Direction) Opposite() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// Reverses reports whether d exactly reverses a moving direction cur
func (d Direction) Reverses(cur Direction) bool {
	return !cur.IsZero() && d == cur.Opposite()
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirNone:
		return "none"
	default:
		return "invalid"
	}
}
