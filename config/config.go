package config

import (
	"errors"
	"fmt"
	"strings"
	"war/game"
	"war/meta"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Game   GameConfig   `mapstructure:"game"`
	Log    LogConfig    `mapstructure:"log"`
	Record RecordConfig `mapstructure:"record"`
}

type GameConfig struct {
	MinPlayers      int    `mapstructure:"min_players"`
	MaxPlayers      int    `mapstructure:"max_players"`
	MinTerritories  int    `mapstructure:"min_territories"`
	DefaultTroops   int    `mapstructure:"default_troops"`
	MaxRounds       int    `mapstructure:"max_rounds"` // 0 plays until someone wins or quits
	Seed            uint64 `mapstructure:"seed"`       // 0 seeds from the clock
	DiceFaces       int    `mapstructure:"dice_faces"`
	MinAttackTroops int    `mapstructure:"min_attack_troops"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type RecordConfig struct {
	Dir string `mapstructure:"dir"` // Empty disables the statistics export
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("game.min_players", meta.MIN_PLAYERS)
	v.SetDefault("game.max_players", meta.MAX_PLAYERS)
	v.SetDefault("game.min_territories", meta.MIN_TERRITORIES)
	v.SetDefault("game.default_troops", meta.DEFAULT_TROOPS)
	v.SetDefault("game.max_rounds", 0)
	v.SetDefault("game.seed", 0)
	v.SetDefault("game.dice_faces", meta.DIE_FACES)
	v.SetDefault("game.min_attack_troops", meta.MIN_ATTACK_TROOPS)

	// Keep the game text readable unless asked otherwise
	v.SetDefault("log.level", "warn")

	v.SetDefault("record.dir", "")
}

// Load builds the configuration from defaults, an optional file and WAR_
// environment variables, in increasing order of precedence. With an empty
// path, war.yaml or war.toml is looked up in the working directory and
// $HOME/.config/war; an explicit path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("war")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/war")
	}

	v.SetEnvPrefix("WAR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks value ranges. Player and territory bounds can narrow the
// game's limits but never widen them.
func (c *Config) Validate() error {
	g := c.Game
	switch {
	case g.MinPlayers < meta.MIN_PLAYERS || g.MinPlayers > meta.MAX_PLAYERS:
		return fmt.Errorf("%w: game.min_players must be within [%d, %d]", ErrInvalidConfig, meta.MIN_PLAYERS, meta.MAX_PLAYERS)
	case g.MaxPlayers < g.MinPlayers || g.MaxPlayers > meta.MAX_PLAYERS:
		return fmt.Errorf("%w: game.max_players must be within [game.min_players, %d]", ErrInvalidConfig, meta.MAX_PLAYERS)
	case g.MinTerritories < meta.MIN_TERRITORIES:
		return fmt.Errorf("%w: game.min_territories must be at least %d", ErrInvalidConfig, meta.MIN_TERRITORIES)
	case g.DefaultTroops < 1:
		return fmt.Errorf("%w: game.default_troops must be at least 1", ErrInvalidConfig)
	case g.MaxRounds < 0:
		return fmt.Errorf("%w: game.max_rounds must not be negative", ErrInvalidConfig)
	case g.DiceFaces < 2:
		return fmt.Errorf("%w: game.dice_faces must be at least 2", ErrInvalidConfig)
	case g.MinAttackTroops < 2:
		// An attacker always keeps one troop behind
		return fmt.Errorf("%w: game.min_attack_troops must be at least 2", ErrInvalidConfig)
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
	}
	return nil
}

func (c *Config) SetupRules() game.SetupRules {
	return game.SetupRules{
		MinPlayers:     c.Game.MinPlayers,
		MaxPlayers:     c.Game.MaxPlayers,
		MinTerritories: c.Game.MinTerritories,
		DefaultTroops:  c.Game.DefaultTroops,
	}
}

func (c *Config) Rules() game.Rules {
	return &game.StandardRules{
		Faces:        c.Game.DiceFaces,
		MinAttackers: c.Game.MinAttackTroops,
	}
}
