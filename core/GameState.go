package core

type GameState int

const (
	StateMenu GameState = iota
	StatePause
	StateInGame
	// StateGameOver has no incoming transition; scoring never ends a match.
	StateGameOver
)

func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StatePause:
		return "Pause"
	case StateInGame:
		return "InGame"
	case StateGameOver:
		return "GameOver"
	}
	return "Unknown"
}

// Next returns the state reached from s after key is pressed.
func (s GameState) Next(key Key) GameState {
	switch key {
	case KeyEscape:
		if s == StateInGame || s == StatePause {
			return StatePause
		}
	case KeySpace:
		if s == StateMenu || s == StatePause {
			return StateInGame
		}
	}
	return s
}
