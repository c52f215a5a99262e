package metrics

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"war/game"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Start("abc", 2, 3)
	c.AddAttack(1, game.AttackResult{Attacker: "A", Defender: "B", AttackerDie: 6, DefenderDie: 2, Captured: true})
	c.AddRejected(2, errors.New("same color"))
	c.AddAttack(3, game.AttackResult{Attacker: "A", Defender: "C", AttackerDie: 1, DefenderDie: 4})

	metric := c.Complete(game.ConquestOutcome(3, "Azul"))

	require.Equal(t, "abc", metric.ID)
	require.Equal(t, "GameOverByConquest", metric.Outcome)
	require.Equal(t, "Azul", metric.Winner)
	require.Equal(t, 3, metric.Rounds)
	require.Equal(t, 2, metric.Attacks)
	require.Equal(t, 1, metric.Captures)
	require.Equal(t, 1, metric.Rejected)
	require.False(t, metric.EndTime.Before(metric.StartTime))

	rounds := c.Rounds()
	require.Len(t, rounds, 3)
	require.Equal(t, "same color", rounds[1].Rejected)
	require.True(t, rounds[0].Captured)
}

func TestDummyCollector(t *testing.T) {
	c := NewDummyCollector()
	c.Start("abc", 2, 3)
	c.AddAttack(1, game.AttackResult{Captured: true})
	require.Equal(t, GameMetric{}, c.Complete(game.AbortOutcome(1)))
	require.Empty(t, c.Rounds())
}

func readCSV(t *testing.T, path string) [][]string {
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "game-1")
	require.NoError(t, err)

	err = w.WriteGame(GameMetric{ID: "game-1", Players: 2, Outcome: "GameOverByAbort", Rounds: 4})
	require.NoError(t, err)
	err = w.WriteRounds([]RoundMetric{
		{Round: 1, Attacker: "A", Defender: "B", AttackerDie: 3, DefenderDie: 3},
		{Round: 2, Rejected: "invalid defender selection"},
	})
	require.NoError(t, err)

	games := readCSV(t, filepath.Join(w.Dir(), "game.csv"))
	require.Len(t, games, 2)
	require.Equal(t, "id", games[0][0])
	require.Equal(t, "game-1", games[1][0])
	require.Equal(t, "GameOverByAbort", games[1][3])

	rounds := readCSV(t, filepath.Join(w.Dir(), "rounds.csv"))
	require.Len(t, rounds, 3)
	require.Equal(t, []string{"1", "A", "B", "3", "3", "false", ""}, rounds[1])
	require.Equal(t, "invalid defender selection", rounds[2][6])
}
