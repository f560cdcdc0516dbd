package snake

import "github.com/vovakirdan/tui-snake/internal/games/snake/engine"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StateBoardFull   GameStateType = "board_full"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism tests and replays.
type Snapshot struct {
	Ticks     uint64
	Score     int
	Length    int
	Head      engine.Cell
	Heading   engine.Direction
	Food      engine.Cell
	LastEvent engine.Event
	State     GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.won:
		state = StateBoardFull
	case g.gameOver:
		state = StateGameOver
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	}

	s := Snapshot{
		Score:     g.score,
		LastEvent: g.lastEvent,
		State:     state,
	}
	if g.eng != nil {
		s.Ticks = g.eng.Ticks()
		s.Length = g.eng.CurrentLength()
		s.Head = g.eng.Head()
		s.Heading = g.eng.Heading()
		s.Food = g.eng.Food()
	}
	return s
}
