package engine

import (
	"context"
	"errors"
	"fmt"
	"war/communication"
	"war/experiments/metrics"
	"war/game"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var ErrInvalidTransition = errors.New("invalid phase transition")

type Option func(e *Engine)

// Engine coordinates the rounds of a single game, from the end of setup
// until a mission is completed, a color holds the whole map or the operator
// quits.
type Engine struct {
	id        string
	players   []game.Player
	registry  *game.Registry
	comm      communication.Communicator
	rules     game.Rules
	dice      game.Dice
	maxRounds int
	metrics   metrics.Collector
	metric    metrics.GameMetric
	logger    zerolog.Logger

	phase game.Phase
	round int
}

func WithRules(rules game.Rules) Option {
	return func(e *Engine) {
		if rules != nil {
			e.rules = rules
		}
	}
}

func WithDice(dice game.Dice) Option {
	return func(e *Engine) {
		if dice != nil {
			e.dice = dice
		}
	}
}

// WithMaxRounds ends the game as aborted after the given number of rounds.
// Zero means no limit.
func WithMaxRounds(rounds int) Option {
	return func(e *Engine) {
		if rounds > 0 {
			e.maxRounds = rounds
		}
	}
}

func WithCollector(c metrics.Collector) Option {
	return func(e *Engine) {
		if c != nil {
			e.metrics = c
		}
	}
}

// WithLogger replaces the engine logger. The game id is added to it.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New takes ownership of the players and registry collected at setup.
func New(players []game.Player, registry *game.Registry, comm communication.Communicator, options ...Option) *Engine {
	e := &Engine{ // Default values
		id:       uuid.NewString(),
		players:  players,
		registry: registry,
		comm:     comm,
		rules:    game.NewStandardRules(),
		dice:     game.NewRandomDice(game.NewSource(0)),
		metrics:  metrics.NewDummyCollector(),
		logger:   log.Logger.With().Str("component", "engine").Logger(),
		phase:    game.SetupPhase,
	}
	for _, option := range options {
		option(e)
	}
	e.logger = e.logger.With().Str("game_id", e.id).Logger()
	return e
}

func (e *Engine) ID() string {
	return e.id
}

func (e *Engine) Phase() game.Phase {
	return e.phase
}

func (e *Engine) Round() int {
	return e.round
}

// Metric is the summary recorded when the game ended.
func (e *Engine) Metric() metrics.GameMetric {
	return e.metric
}

func (e *Engine) transition(target game.Phase) error {
	if !e.phase.CanTransitionTo(target) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, e.phase, target)
	}
	e.logger.Debug().Stringer("from", e.phase).Stringer("to", target).Msg("phase transition")
	e.phase = target
	return nil
}

// Run plays rounds until the game is over. Win conditions are checked once
// before the first selection, so a map that starts conquered ends at once.
// A cancelled context ends the game as aborted; only failures of the
// communicator are returned as errors.
func (e *Engine) Run(ctx context.Context) (game.Outcome, error) {
	if err := e.transition(game.RoundInProgressPhase); err != nil {
		return game.Outcome{}, err
	}
	e.metrics.Start(e.id, len(e.players), e.registry.Len())
	e.logger.Info().Msgf("game started with %d players and %d territories", len(e.players), e.registry.Len())
	e.comm.RenderState(e.registry)

	for {
		if outcome, over := e.checkWinner(); over {
			return e.finish(outcome)
		}
		if e.maxRounds > 0 && e.round >= e.maxRounds {
			e.logger.Info().Msgf("round limit %d reached", e.maxRounds)
			return e.finish(game.AbortOutcome(e.round))
		}
		if ctx.Err() != nil {
			return e.finish(game.AbortOutcome(e.round))
		}

		selection, err := e.comm.RequestSelection(ctx, e.round+1, e.registry.Len())
		if err != nil {
			if ctx.Err() != nil {
				return e.finish(game.AbortOutcome(e.round))
			}
			outcome, _ := e.finish(game.AbortOutcome(e.round))
			return outcome, fmt.Errorf("request selection for round %d: %w", e.round+1, err)
		}
		if selection.Abort {
			e.logger.Info().Msg("operator ended the game")
			return e.finish(game.AbortOutcome(e.round))
		}

		e.round++
		e.playRound(selection)
	}
}

// playRound applies one selection. A rejected selection leaves the
// registry untouched and still counts as a round. The map is shown again
// after every selection except one with no valid defender.
func (e *Engine) playRound(selection communication.Selection) {
	err := game.ValidateAttack(e.registry, selection.Attacker, selection.Defender, e.rules)
	if err != nil {
		e.logger.Debug().Err(err).Int("round", e.round).Msg("selection rejected")
		e.metrics.AddRejected(e.round, err)
		e.comm.ReportError(err)
		if !errors.Is(err, game.ErrInvalidDefender) {
			e.comm.RenderState(e.registry)
		}
		return
	}

	attacker := e.registry.At(selection.Attacker - 1)
	defender := e.registry.At(selection.Defender - 1)
	result := game.Resolve(attacker, defender, e.dice, e.rules)
	e.logger.Debug().
		Int("round", e.round).
		Str("attacker", result.Attacker).
		Str("defender", result.Defender).
		Int("attacker_die", result.AttackerDie).
		Int("defender_die", result.DefenderDie).
		Bool("captured", result.Captured).
		Msg("attack resolved")
	e.metrics.AddAttack(e.round, result)

	e.comm.Narrate(result)
	e.comm.RenderState(e.registry)
}

// checkWinner looks for a mission winner in seating order, then for a
// single color holding every territory.
func (e *Engine) checkWinner() (game.Outcome, bool) {
	if i, ok := game.MissionWinner(e.players, e.registry); ok {
		return game.MissionOutcome(e.round, i, e.players[i]), true
	}
	if e.registry.IsConquered() {
		return game.ConquestOutcome(e.round, e.registry.Conqueror()), true
	}
	return game.Outcome{}, false
}

func (e *Engine) finish(outcome game.Outcome) (game.Outcome, error) {
	if err := e.transition(outcome.Phase); err != nil {
		return outcome, err
	}
	e.metric = e.metrics.Complete(outcome)
	e.logger.Info().Msgf("game over after %d rounds: %s %s", outcome.Rounds, outcome.Phase, outcome.Winner())
	e.comm.ReportOutcome(outcome)
	return outcome, nil
}
