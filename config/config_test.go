package config

import (
	"os"
	"path/filepath"
	"testing"
	"war/game"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		chdir(t, t.TempDir())

		cfg, err := Load("")
		require.NoError(t, err)

		assert.Equal(t, 2, cfg.Game.MinPlayers)
		assert.Equal(t, 5, cfg.Game.MaxPlayers)
		assert.Equal(t, 2, cfg.Game.MinTerritories)
		assert.Equal(t, 1, cfg.Game.DefaultTroops)
		assert.Equal(t, 0, cfg.Game.MaxRounds)
		assert.Equal(t, uint64(0), cfg.Game.Seed)
		assert.Equal(t, "warn", cfg.Log.Level)
		assert.Empty(t, cfg.Record.Dir)
		assert.Equal(t, game.NewSetupRules(), cfg.SetupRules())
		assert.Equal(t, game.NewStandardRules(), cfg.Rules())
	})

	t.Run("yaml file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "war.yaml")
		content := `
game:
  max_rounds: 50
  seed: 7
  dice_faces: 8
log:
  level: debug
record:
  dir: stats
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 50, cfg.Game.MaxRounds)
		assert.Equal(t, uint64(7), cfg.Game.Seed)
		assert.Equal(t, 8, cfg.Rules().DieFaces())
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, "stats", cfg.Record.Dir)
		assert.Equal(t, 5, cfg.Game.MaxPlayers, "Unset keys keep their default")
	})

	t.Run("toml file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "war.toml")
		require.NoError(t, os.WriteFile(path, []byte("[game]\nmax_players = 3\n"), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 3, cfg.SetupRules().MaxPlayers)
	})

	t.Run("environment overrides", func(t *testing.T) {
		chdir(t, t.TempDir())
		t.Setenv("WAR_GAME_MAX_ROUNDS", "12")
		t.Setenv("WAR_LOG_LEVEL", "info")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, 12, cfg.Game.MaxRounds)
		assert.Equal(t, "info", cfg.Log.Level)
	})

	t.Run("missing explicit file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("narrower table", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "war.yaml")
		require.NoError(t, os.WriteFile(path, []byte("game:\n  min_players: 3\n  max_players: 4\n  min_territories: 6\n"), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, game.SetupRules{MinPlayers: 3, MaxPlayers: 4, MinTerritories: 6, DefaultTroops: 1}, cfg.SetupRules())
	})

	t.Run("table wider than the game allows", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "war.yaml")
		require.NoError(t, os.WriteFile(path, []byte("game:\n  max_players: 8\n"), 0644))

		_, err := Load(path)
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("invalid values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "war.yaml")
		require.NoError(t, os.WriteFile(path, []byte("game:\n  min_attack_troops: 1\n"), 0644))

		_, err := Load(path)
		require.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Game: GameConfig{MinPlayers: 2, MaxPlayers: 5, MinTerritories: 2, DefaultTroops: 1, DiceFaces: 6, MinAttackTroops: 2},
			Log:  LogConfig{Level: "warn"},
		}
	}
	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"no players", func(c *Config) { c.Game.MinPlayers = 0 }},
		{"solo game", func(c *Config) { c.Game.MinPlayers = 1 }},
		{"min above the table size", func(c *Config) { c.Game.MinPlayers, c.Game.MaxPlayers = 6, 6 }},
		{"max below min", func(c *Config) { c.Game.MinPlayers, c.Game.MaxPlayers = 3, 2 }},
		{"max above the table size", func(c *Config) { c.Game.MaxPlayers = 6 }},
		{"single territory map", func(c *Config) { c.Game.MinTerritories = 1 }},
		{"no default troops", func(c *Config) { c.Game.DefaultTroops = 0 }},
		{"negative round limit", func(c *Config) { c.Game.MaxRounds = -1 }},
		{"one-sided die", func(c *Config) { c.Game.DiceFaces = 1 }},
		{"attack with one troop", func(c *Config) { c.Game.MinAttackTroops = 1 }},
		{"unknown log level", func(c *Config) { c.Log.Level = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			require.ErrorIs(t, c.Validate(), ErrInvalidConfig)
		})
	}
}

// chdir changes the working directory for the duration of the test
// (equivalent to testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	})
}
