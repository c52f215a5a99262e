package game

import (
	"strings"
	"war/meta"
	"war/utils"
)

// Player is a seat at the table. Territories refer to players only by
// color, so a territory may carry a color no player holds.
type Player struct {
	Color   string
	Mission Mission
}

func NewPlayer(color string, mission Mission) Player {
	return Player{
		Color:   utils.Truncate(strings.TrimSpace(color), meta.MAX_COLOR_LENGTH),
		Mission: mission,
	}
}
