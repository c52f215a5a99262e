package game

// Outcome describes how a game ended.
type Outcome struct {
	Phase       Phase
	Rounds      int    // Rounds played, not counting the check before the first one
	WinnerIndex int    // Seat of the mission winner, -1 otherwise
	WinnerColor string // Empty when the game was aborted
	Mission     Mission
}

func MissionOutcome(rounds, index int, p Player) Outcome {
	return Outcome{
		Phase:       MissionVictoryPhase,
		Rounds:      rounds,
		WinnerIndex: index,
		WinnerColor: p.Color,
		Mission:     p.Mission,
	}
}

func ConquestOutcome(rounds int, color string) Outcome {
	return Outcome{
		Phase:       ConquestVictoryPhase,
		Rounds:      rounds,
		WinnerIndex: -1,
		WinnerColor: color,
	}
}

func AbortOutcome(rounds int) Outcome {
	return Outcome{
		Phase:       AbortedPhase,
		Rounds:      rounds,
		WinnerIndex: -1,
	}
}

// Winner returns the winning color, or "" if nobody won.
func (o Outcome) Winner() string {
	return o.WinnerColor
}
