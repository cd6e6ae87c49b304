package entity

import (
	"functional-snake/game/types"
)

// Intner is the slice of *rand.Rand the apple needs; golang.org/x/exp/rand satisfies it.
type Intner interface {
	Intn(n int) int
}

type AppleDrawer interface {
	DrawApple(p types.Point)
}

type Apple struct {
	Position types.Point
	grid     types.Grid
	rng      Intner
}

func NewApple(grid types.Grid, rng Intner) *Apple {
	return &Apple{
		Position: types.Point{X: types.AppleStartX, Y: types.AppleStartY},
		grid:     grid,
		rng:      rng,
	}
}

// Move places the apple on a uniformly random cell with column in
// [1, cols-1] and row in [1, rows-1]. It may land on the snake.
func (a *Apple) Move() {
	a.Position = types.Point{
		X: (a.rng.Intn(a.grid.Columns()-1) + 1) * a.grid.CellSize,
		Y: (a.rng.Intn(a.grid.Rows()-1) + 1) * a.grid.CellSize,
	}
}

func (a *Apple) Draw(d AppleDrawer) {
	d.DrawApple(a.Position)
}
