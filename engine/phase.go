package engine

// GamePhase is the top-level state of a session
type GamePhase uint8

const (
	PhaseHighscores GamePhase = iota // Score table shown, any key starts the run
	PhasePlaying
	PhasePaused
	PhaseBanner    // Game over / win message held for a fixed number of ticks
	PhaseNameEntry // Collecting a name for a qualifying score
	PhaseQuit
)

func (p GamePhase) String() string {
	switch p {
	case PhaseHighscores:
		return "highscores"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseBanner:
		return "banner"
	case PhaseNameEntry:
		return "name-entry"
	case PhaseQuit:
		return "quit"
	default:
		return "unknown"
	}
}

var validTransitions = map[GamePhase][]GamePhase{
	PhaseHighscores: {PhasePlaying, PhaseQuit},
	PhasePlaying:    {PhasePaused, PhaseBanner, PhaseQuit},
	PhasePaused:     {PhasePlaying, PhaseQuit},
	PhaseBanner:     {PhaseNameEntry, PhaseHighscores, PhaseQuit},
	PhaseNameEntry:  {PhaseHighscores, PhaseQuit},
}

// CanTransition checks if a phase transition is valid
func CanTransition(from, to GamePhase) bool {
	for _, phase := range validTransitions[from] {
		if phase == to {
			return true
		}
	}
	return false
}
