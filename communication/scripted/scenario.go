package scripted

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Scenario is a whole game written down ahead of time.
//
//	seed = 7
//	dice = [6, 1, 3, 3]
//
//	[[players]]
//	color = "Azul"
//	mission = "control_at_least"
//
//	[[territories]]
//	name = "Brasil"
//	color = "Azul"
//	troops = 4
//
//	[[rounds]]
//	attacker = 1
//	defender = 2
type Scenario struct {
	Seed        uint64           `toml:"seed"`
	Dice        []int            `toml:"dice"`
	Players     []PlayerEntry    `toml:"players"`
	Territories []TerritoryEntry `toml:"territories"`
	Rounds      []RoundEntry     `toml:"rounds"`
}

type PlayerEntry struct {
	Color   string `toml:"color"`
	Mission string `toml:"mission"` // Mission kind name, drawn at random when empty
}

type TerritoryEntry struct {
	Name   string `toml:"name"`
	Color  string `toml:"color"`
	Troops int    `toml:"troops"`
}

type RoundEntry struct {
	Attacker int  `toml:"attacker"`
	Defender int  `toml:"defender"`
	Quit     bool `toml:"quit"`
}

// Load reads a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return Parse(string(data))
}

func Parse(data string) (*Scenario, error) {
	s := &Scenario{}
	if _, err := toml.Decode(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario file: %w", err)
	}
	return s, nil
}
