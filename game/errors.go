package game

import (
	"errors"
	"fmt"
)

// Setup validation. These end the program before the first round.
var (
	ErrInvalidPlayerCount    = errors.New("invalid number of players")
	ErrInvalidTerritoryCount = errors.New("invalid number of territories")
	ErrMalformedNumber       = errors.New("malformed number")
	ErrEmptyColor            = errors.New("color cannot be empty")
	ErrDuplicateColor        = errors.New("color already taken by another player")
	ErrInputClosed           = errors.New("input closed")
)

// Round selection. These skip the combat step of a single round.
var (
	ErrInvalidDefender    = errors.New("invalid defender selection")
	ErrInvalidSelection   = errors.New("invalid territory selection")
	ErrSameColor          = errors.New("cannot attack a territory of the same color")
	ErrInsufficientTroops = errors.New("attacker needs more troops")
)

// SetupError is a fatal problem with the data collected before the game.
type SetupError struct {
	Field string
	Err   error
}

func (e *SetupError) Error() string {
	return fmt.Sprintf("setup %s: %v", e.Field, e.Err)
}

func (e *SetupError) Unwrap() error {
	return e.Err
}

// SelectionError is a rejected attacker/defender pair. Indices are 1-based.
type SelectionError struct {
	Attacker int
	Defender int
	Err      error
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("cannot attack %d -> %d: %v", e.Attacker, e.Defender, e.Err)
}

func (e *SelectionError) Unwrap() error {
	return e.Err
}
