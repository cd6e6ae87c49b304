package types

// Direction is the facing of the snake's head
type Direction int

const (
	DOWN  Direction = iota // zero value, so a new snake faces down
	UP
	LEFT
	RIGHT
)

// ToPoint converts a Direction into a one-cell displacement.
func (d Direction) ToPoint(cellSize int) Point {
	switch d {
	case UP:
		return Point{X: 0, Y: -cellSize}
	case RIGHT:
		return Point{X: cellSize, Y: 0}
	case LEFT:
		return Point{X: -cellSize, Y: 0}
	default:
		return Point{X: 0, Y: cellSize}
	}
}

func (d Direction) String() string {
	switch d {
	case UP:
		return "up"
	case RIGHT:
		return "right"
	case LEFT:
		return "left"
	default:
		return "down"
	}
}
