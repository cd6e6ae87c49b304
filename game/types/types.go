package types

// Reference layout of the play-field, in pixels.
const (
	CellSize      = 40
	BoardWidth    = 1000
	BoardHeight   = 800
	StartX        = 40
	StartY        = 40
	AppleStartX   = 120
	AppleStartY   = 120
	SentinelCoord = -1
)

type Point struct {
	X, Y int
}

// Sentinel is the off-board placeholder given to freshly grown segments.
var Sentinel = Point{X: SentinelCoord, Y: SentinelCoord}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid represents the play-field dimensions in pixels and the size of one cell
type Grid struct {
	Width    int
	Height   int
	CellSize int
}

// DefaultGrid returns the 1000x800 board with 40px cells.
func DefaultGrid() Grid {
	return Grid{Width: BoardWidth, Height: BoardHeight, CellSize: CellSize}
}

func (g Grid) Columns() int {
	return g.Width / g.CellSize
}

func (g Grid) Rows() int {
	return g.Height / g.CellSize
}

// Contains reports whether p lies on the board.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}
