package entity_test

import (
	"testing"

	"functional-snake/game/entity"
	"functional-snake/game/types"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"
)

// fixedRand returns vals in order, each reduced modulo n.
type fixedRand struct {
	vals []int
	i    int
}

func (f *fixedRand) Intn(n int) int {
	v := f.vals[f.i%len(f.vals)]
	f.i++
	return v % n
}

func TestNewAppleStartsAtFixedCell(t *testing.T) {
	a := entity.NewApple(types.DefaultGrid(), &fixedRand{vals: []int{0}})
	assert.Equal(t, types.Point{X: 120, Y: 120}, a.Position)
}

func TestAppleMoveBounds(t *testing.T) {
	tests := []struct {
		name string
		vals []int
		want types.Point
	}{
		{"lowest cell", []int{0, 0}, types.Point{X: 40, Y: 40}},
		{"highest cell", []int{23, 18}, types.Point{X: 960, Y: 760}},
		{"middle", []int{9, 4}, types.Point{X: 400, Y: 200}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := entity.NewApple(types.DefaultGrid(), &fixedRand{vals: tt.vals})
			a.Move()
			assert.Equal(t, tt.want, a.Position)
		})
	}
}

func TestAppleMoveStaysOnGrid(t *testing.T) {
	grid := types.DefaultGrid()
	a := entity.NewApple(grid, rand.New(rand.NewSource(42)))

	for i := 0; i < 1000; i++ {
		a.Move()
		p := a.Position
		assert.Zero(t, p.X%grid.CellSize)
		assert.Zero(t, p.Y%grid.CellSize)
		assert.GreaterOrEqual(t, p.X, 40)
		assert.LessOrEqual(t, p.X, 960)
		assert.GreaterOrEqual(t, p.Y, 40)
		assert.LessOrEqual(t, p.Y, 760)
	}
}

func TestAppleDraw(t *testing.T) {
	a := entity.NewApple(types.DefaultGrid(), &fixedRand{vals: []int{0}})
	d := &recordingDrawer{}
	a.Draw(d)

	assert.Equal(t, []types.Point{{X: 120, Y: 120}}, d.apples)
}
