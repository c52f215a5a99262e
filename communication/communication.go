package communication

import (
	"context"
	"war/game"
)

// Selection is one round's choice of attacker and defender, 1-based.
type Selection struct {
	Attacker int
	Defender int
	Abort    bool // The operator ended the game early
}

// AbortSelection ends the game at the next round.
var AbortSelection = Selection{Abort: true}

// Communicator is an interface that abstracts the communication mechanism
// between the game and whoever is playing it.
type Communicator interface {
	CollectSetup(ctx context.Context, rules game.SetupRules, missions game.Source) ([]game.Player, *game.Registry, error)
	RenderState(r *game.Registry)
	RequestSelection(ctx context.Context, round, territories int) (Selection, error)
	Narrate(result game.AttackResult)
	ReportError(err error)
	ReportOutcome(outcome game.Outcome)
}
