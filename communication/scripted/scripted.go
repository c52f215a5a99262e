package scripted

import (
	"context"
	"fmt"
	"io"
	"war/communication"
	"war/communication/console"
	"war/game"

	"github.com/rs/zerolog/log"
)

// Script plays a scenario without reading input. Its output is the same as
// a console game's.
type Script struct {
	*console.Presenter
	scenario *Scenario
	next     int
}

var _ communication.Communicator = (*Script)(nil)

func New(scenario *Scenario, out io.Writer) *Script {
	return &Script{
		Presenter: console.NewPresenter(out),
		scenario:  scenario,
	}
}

// Dice returns the scripted dice, or nil if the scenario leaves them to chance.
func (s *Script) Dice() game.Dice {
	if len(s.scenario.Dice) == 0 {
		return nil
	}
	return game.NewFixedDice(s.scenario.Dice...)
}

// Seed is the scenario seed, zero when unset.
func (s *Script) Seed() uint64 {
	return s.scenario.Seed
}

// CollectSetup validates the scenario with the same rules as a console game.
// A scenario cannot be asked again, so every problem is fatal.
func (s *Script) CollectSetup(ctx context.Context, rules game.SetupRules, missions game.Source) ([]game.Player, *game.Registry, error) {
	s.Welcome()

	if err := rules.ValidatePlayerCount(len(s.scenario.Players)); err != nil {
		return nil, nil, err
	}

	s.Section("PLAYER REGISTRATION AND MISSIONS")
	players := make([]game.Player, 0, len(s.scenario.Players))
	colors := make([]string, 0, len(s.scenario.Players))
	for _, entry := range s.scenario.Players {
		if err := rules.ValidatePlayerColor(entry.Color, colors); err != nil {
			return nil, nil, err
		}
		mission, err := s.mission(entry, missions)
		if err != nil {
			return nil, nil, &game.SetupError{Field: "mission", Err: err}
		}

		player := game.NewPlayer(entry.Color, mission)
		players = append(players, player)
		colors = append(colors, player.Color)
		s.AnnounceMission(player)
		log.Debug().Str("color", player.Color).Stringer("mission", player.Mission.Kind).Msg("player registered")
	}

	if err := rules.ValidateTerritoryCount(len(s.scenario.Territories)); err != nil {
		return nil, nil, err
	}

	territories := make([]*game.Territory, 0, len(s.scenario.Territories))
	for i, entry := range s.scenario.Territories {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		territory := game.NewTerritory(entry.Name, entry.Color, entry.Troops)
		if territory.Color == "" {
			return nil, nil, &game.SetupError{Field: fmt.Sprintf("territory %d color", i+1), Err: game.ErrEmptyColor}
		}
		if troops, defaulted := rules.Troops(entry.Troops); defaulted {
			territory.Troops = troops
		}
		territories = append(territories, territory)
	}

	return players, game.NewRegistry(territories...), nil
}

func (s *Script) mission(entry PlayerEntry, missions game.Source) (game.Mission, error) {
	if entry.Mission == "" {
		return game.AssignMission(missions), nil
	}
	kind, err := game.ParseMissionKind(entry.Mission)
	if err != nil {
		return game.Mission{}, err
	}
	mission, _ := game.MissionOf(kind)
	return mission, nil
}

// RequestSelection replays the next scripted round. Once the script runs
// out, the game is ended.
func (s *Script) RequestSelection(ctx context.Context, round, territories int) (communication.Selection, error) {
	if err := ctx.Err(); err != nil {
		return communication.AbortSelection, err
	}
	s.RoundHeader(round)
	if s.next >= len(s.scenario.Rounds) {
		return communication.AbortSelection, nil
	}

	entry := s.scenario.Rounds[s.next]
	s.next++
	if entry.Quit {
		return communication.AbortSelection, nil
	}
	return communication.Selection{Attacker: entry.Attacker, Defender: entry.Defender}, nil
}
