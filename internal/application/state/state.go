package state

// ID identifies an application state registered with the state machine
type ID int

const (
	Intro ID = iota
	Quiz
	GameOver
)

// String returns the string representation of the state ID
func (s ID) String() string {
	switch s {
	case Intro:
		return "Intro"
	case Quiz:
		return "Quiz"
	case GameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}
