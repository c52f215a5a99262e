package game

import "fmt"

type Phase int

const (
	SetupPhase Phase = iota
	RoundInProgressPhase
	MissionVictoryPhase
	ConquestVictoryPhase
	AbortedPhase
)

func (p Phase) String() string {
	switch p {
	case SetupPhase:
		return "Setup"
	case RoundInProgressPhase:
		return "RoundInProgress"
	case MissionVictoryPhase:
		return "GameOverByMission"
	case ConquestVictoryPhase:
		return "GameOverByConquest"
	case AbortedPhase:
		return "GameOverByAbort"
	default:
		return fmt.Sprintf("Unknown(%d)", int(p))
	}
}

// IsTerminal returns true once the game is over, whatever the reason
func (p Phase) IsTerminal() bool {
	return p == MissionVictoryPhase || p == ConquestVictoryPhase || p == AbortedPhase
}

// AllowedTransitions returns the phases this phase can move to
func (p Phase) AllowedTransitions() []Phase {
	switch p {
	case SetupPhase:
		return []Phase{RoundInProgressPhase}
	case RoundInProgressPhase:
		return []Phase{MissionVictoryPhase, ConquestVictoryPhase, AbortedPhase}
	default:
		return []Phase{}
	}
}

func (p Phase) CanTransitionTo(target Phase) bool {
	for _, phase := range p.AllowedTransitions() {
		if phase == target {
			return true
		}
	}
	return false
}
