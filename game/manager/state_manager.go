package manager

// State is the phase of the current round.
type State int

const (
	Running State = iota
	Paused
	GameOver
)

func (s State) String() string {
	switch s {
	case Paused:
		return "paused"
	case GameOver:
		return "game over"
	default:
		return "running"
	}
}

// RoundSummary is what the game-over frame shows.
type RoundSummary struct {
	Score  int
	Length int
	Reason CollisionType
}

// StateManager tracks the round state and the score. Transitions:
//
//	Running  -> GameOver  EndRound
//	GameOver -> Paused    Pause
//	Paused   -> Running   Resume
type StateManager struct {
	state       State
	score       int
	lastSummary RoundSummary
}

func NewStateManager() *StateManager {
	return &StateManager{
		state: Running,
	}
}

func (sm *StateManager) State() State {
	return sm.state
}

func (sm *StateManager) IsPaused() bool {
	return sm.state == Paused
}

func (sm *StateManager) Score() int {
	return sm.score
}

// AddPoint increments the score after an apple is eaten
func (sm *StateManager) AddPoint() {
	sm.score++
}

// ResetScore zeroes the score for a fresh round.
func (sm *StateManager) ResetScore() {
	sm.score = 0
}

// EndRound freezes the summary of the round that just ended.
func (sm *StateManager) EndRound(length int, reason CollisionType) RoundSummary {
	sm.state = GameOver
	sm.lastSummary = RoundSummary{
		Score:  sm.score,
		Length: length,
		Reason: reason,
	}
	return sm.lastSummary
}

func (sm *StateManager) Pause() {
	sm.state = Paused
}

// Resume returns to Running. It reports whether the state actually changed.
func (sm *StateManager) Resume() bool {
	wasPaused := sm.state == Paused
	sm.state = Running
	return wasPaused
}

func (sm *StateManager) LastSummary() RoundSummary {
	return sm.lastSummary
}
