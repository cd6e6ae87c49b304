package game

import (
	"log/slog"
	"time"

	"functional-snake/game/entity"
	"functional-snake/game/manager"
	"functional-snake/game/types"
	"functional-snake/logging"

	"github.com/google/uuid"
)

// Surface is where a frame is drawn. ui.Renderer is the raylib implementation.
type Surface interface {
	entity.SegmentDrawer
	entity.AppleDrawer
	BeginFrame()
	DrawBackground()
	DrawScore(score int)
	DrawGameOver(score int)
	EndFrame()
}

// MusicPlayer is resumed when the player leaves the pause screen.
type MusicPlayer interface {
	Resume()
}

type OutcomeKind int

const (
	Continue OutcomeKind = iota
	RoundOver
)

// TickOutcome is the result of one tick. Reason is set only for RoundOver.
type TickOutcome struct {
	Kind   OutcomeKind
	Reason manager.CollisionType
}

type Game struct {
	Grid      types.Grid
	RoundID   string
	Steps     int
	StartTime time.Time
	Stats     *manager.SessionStats

	snake        *entity.Snake
	apple        *entity.Apple
	rng          entity.Intner
	surface      Surface
	music        MusicPlayer
	collisionMgr *manager.CollisionManager
	stateMgr     *manager.StateManager
	quit         bool
	log          *slog.Logger
}

func NewGame(grid types.Grid, rng entity.Intner, surface Surface, music MusicPlayer) *Game {
	g := &Game{
		Grid:         grid,
		rng:          rng,
		surface:      surface,
		music:        music,
		collisionMgr: manager.NewCollisionManager(grid),
		stateMgr:     manager.NewStateManager(),
		Stats:        manager.NewSessionStats(),
		log:          logging.Game(),
	}
	g.Reset()
	return g
}

// Reset discards the snake and apple and starts a fresh round with zero score.
// The state is left as it is.
func (g *Game) Reset() {
	g.snake = entity.NewSnake(types.Point{X: types.StartX, Y: types.StartY}, g.Grid.CellSize)
	g.apple = entity.NewApple(g.Grid, g.rng)
	g.stateMgr.ResetScore()
	g.RoundID = uuid.New().String()
	g.Steps = 0
	g.StartTime = time.Now()
	g.log.Debug("round started", "round", g.RoundID)
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

func (g *Game) GetApple() *entity.Apple {
	return g.apple
}

func (g *Game) Score() int {
	return g.stateMgr.Score()
}

func (g *Game) State() manager.State {
	return g.stateMgr.State()
}

// ShouldQuit reports whether a quit input has been seen.
func (g *Game) ShouldQuit() bool {
	return g.quit
}

// HandleInput applies one key event. Directions are dropped while paused.
// Callers feed inputs in arrival order, so a direction after a resume in the
// same poll takes effect.
func (g *Game) HandleInput(in Input) {
	g.log.Debug("input", "key", in, "state", g.stateMgr.State())

	switch in {
	case InputQuit:
		endings := g.Stats.CountByReason()
		g.log.Info("quit requested",
			"round", g.RoundID,
			"score", g.Score(),
			"games", g.Stats.GamesPlayed(),
			"best", g.Stats.GetMaxScore(),
			"avg_score", g.Stats.GetAverageScore(),
			"median_score", g.Stats.GetMedianScore(),
			"avg_duration", g.Stats.GetAverageDuration().Round(time.Millisecond),
			"boundary_collisions", endings[manager.BoundaryCollision],
			"self_collisions", endings[manager.SelfCollision])
		g.quit = true
		return
	case InputResume:
		if g.music != nil {
			g.music.Resume()
		}
		if g.stateMgr.Resume() {
			g.log.Info("resumed", "round", g.RoundID)
		}
		return
	}

	if g.stateMgr.IsPaused() {
		return
	}
	if dir, ok := in.direction(); ok {
		g.snake.SetDirection(dir)
	}
}

// Update runs one loop iteration: a tick while running, the summary frame
// while paused. A round-over outcome ends the round, pauses and resets.
func (g *Game) Update() {
	if g.stateMgr.IsPaused() {
		g.showGameOver(g.stateMgr.LastSummary())
		return
	}

	outcome := g.Tick()
	if outcome.Kind != RoundOver {
		return
	}

	summary := g.stateMgr.EndRound(g.snake.Length(), outcome.Reason)
	record := manager.RoundRecord{
		RoundID:   g.RoundID,
		Score:     summary.Score,
		Length:    summary.Length,
		Reason:    summary.Reason,
		StartTime: g.StartTime,
		EndTime:   time.Now(),
	}
	g.Stats.AddRound(record)
	g.log.Info("round over",
		"round", g.RoundID,
		"reason", outcome.Reason.String(),
		"score", summary.Score,
		"length", summary.Length,
		"steps", g.Steps,
		"duration", record.Duration().Round(time.Millisecond))

	g.showGameOver(summary)
	g.stateMgr.Pause()
	g.Reset()
}

// Tick draws a frame with the snake advanced one cell, then runs the eat,
// boundary and self-collision checks in that order.
func (g *Game) Tick() TickOutcome {
	g.Steps++

	g.surface.BeginFrame()
	g.surface.DrawBackground()
	g.snake.Step()
	g.snake.Draw(g.surface)
	g.apple.Draw(g.surface)
	g.surface.DrawScore(g.stateMgr.Score())
	g.surface.EndFrame()

	if g.collisionMgr.IsAppleCollision(g.snake, g.apple) {
		g.snake.Grow()
		g.apple.Move()
		g.stateMgr.AddPoint()
		g.log.Debug("apple eaten", "round", g.RoundID, "score", g.stateMgr.Score(), "apple", g.apple.Position)
	}

	if collision := g.collisionMgr.CheckCollision(g.snake); collision != manager.NoCollision {
		return TickOutcome{Kind: RoundOver, Reason: collision}
	}
	return TickOutcome{Kind: Continue}
}

func (g *Game) showGameOver(summary manager.RoundSummary) {
	g.surface.BeginFrame()
	g.surface.DrawBackground()
	g.surface.DrawGameOver(summary.Score)
	g.surface.EndFrame()
}
