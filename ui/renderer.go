package ui

import (
	"fmt"
	"log/slog"

	"functional-snake/game/types"
	"functional-snake/logging"
	"functional-snake/ui/assets"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize = 30
)

var (
	// InitialFill is the colour the window shows before the first frame.
	InitialFill = rl.NewColor(50, 168, 82, 255)
	scoreColor  = rl.NewColor(200, 200, 200, 255)
	textColor   = rl.White

	scorePos     = [2]int32{850, 10}
	gameOverPos1 = [2]int32{200, 300}
	gameOverPos2 = [2]int32{200, 350}
)

// Renderer draws the game with raylib. It must be created after rl.InitWindow.
type Renderer struct {
	apple      rl.Texture2D
	block      rl.Texture2D
	background rl.Texture2D
	log        *slog.Logger
}

func NewRenderer(paths assets.Paths) (*Renderer, error) {
	r := &Renderer{log: logging.UI()}

	var err error
	if r.apple, err = loadTexture(paths.Apple); err != nil {
		return nil, err
	}
	if r.block, err = loadTexture(paths.Block); err != nil {
		r.Close()
		return nil, err
	}
	if r.background, err = loadTexture(paths.Background); err != nil {
		r.Close()
		return nil, err
	}

	r.log.Info("textures loaded", "apple", paths.Apple, "block", paths.Block, "background", paths.Background)
	return r, nil
}

func loadTexture(path string) (rl.Texture2D, error) {
	tex := rl.LoadTexture(path)
	if tex.ID == 0 {
		return tex, fmt.Errorf("failed to load texture %s", path)
	}
	return tex, nil
}

// Close unloads every texture that was loaded.
func (r *Renderer) Close() {
	for _, tex := range []rl.Texture2D{r.apple, r.block, r.background} {
		if tex.ID != 0 {
			rl.UnloadTexture(tex)
		}
	}
}

// Fill shows a plain frame of the given colour.
func (r *Renderer) Fill(c rl.Color) {
	rl.BeginDrawing()
	rl.ClearBackground(c)
	rl.EndDrawing()
}

func (r *Renderer) BeginFrame() {
	rl.BeginDrawing()
}

func (r *Renderer) EndFrame() {
	rl.EndDrawing()
}

func (r *Renderer) DrawBackground() {
	rl.DrawTexture(r.background, 0, 0, rl.White)
}

func (r *Renderer) DrawSegment(p types.Point) {
	rl.DrawTexture(r.block, int32(p.X), int32(p.Y), rl.White)
}

func (r *Renderer) DrawApple(p types.Point) {
	rl.DrawTexture(r.apple, int32(p.X), int32(p.Y), rl.White)
}

func (r *Renderer) DrawScore(score int) {
	rl.DrawText(fmt.Sprintf("Score: %d", score), scorePos[0], scorePos[1], fontSize, scoreColor)
}

func (r *Renderer) DrawGameOver(score int) {
	rl.DrawText(fmt.Sprintf("Game over! Your score is %d", score), gameOverPos1[0], gameOverPos1[1], fontSize, textColor)
	rl.DrawText("To play again press Enter. To exit press Escape!", gameOverPos2[0], gameOverPos2[1], fontSize, textColor)
}
