package game

import (
	"fmt"
	"strings"
	"war/meta"
	"war/utils"
)

// SetupRules bounds the data collected before a game starts.
type SetupRules struct {
	MinPlayers     int
	MaxPlayers     int
	MinTerritories int
	DefaultTroops  int
}

func NewSetupRules() SetupRules {
	return SetupRules{
		MinPlayers:     meta.MIN_PLAYERS,
		MaxPlayers:     meta.MAX_PLAYERS,
		MinTerritories: meta.MIN_TERRITORIES,
		DefaultTroops:  meta.DEFAULT_TROOPS,
	}
}

func (sr SetupRules) ValidatePlayerCount(n int) error {
	if n < sr.MinPlayers || n > sr.MaxPlayers {
		return &SetupError{
			Field: "players",
			Err:   fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidPlayerCount, n, sr.MinPlayers, sr.MaxPlayers),
		}
	}
	return nil
}

func (sr SetupRules) ValidateTerritoryCount(n int) error {
	if n < sr.MinTerritories {
		return &SetupError{
			Field: "territories",
			Err:   fmt.Errorf("%w: %d is below %d", ErrInvalidTerritoryCount, n, sr.MinTerritories),
		}
	}
	return nil
}

// ValidatePlayerColor checks a new player color against the colors already
// taken. Colors are compared after truncation to their bound.
func (sr SetupRules) ValidatePlayerColor(color string, taken []string) error {
	color = utils.Truncate(strings.TrimSpace(color), meta.MAX_COLOR_LENGTH)
	if color == "" {
		return &SetupError{Field: "color", Err: ErrEmptyColor}
	}
	if utils.FindIndex(taken, color) >= 0 {
		return &SetupError{Field: "color", Err: fmt.Errorf("%w: %q", ErrDuplicateColor, color)}
	}
	return nil
}

// Troops applies the default troop count to a missing or invalid value.
func (sr SetupRules) Troops(n int) (troops int, defaulted bool) {
	if n < 1 {
		return sr.DefaultTroops, true
	}
	return n, false
}
