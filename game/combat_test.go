package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	rules := NewStandardRules()

	t.Run("attacker wins and takes half the garrison", func(t *testing.T) {
		attacker := NewTerritory("Brasil", "Azul", 3)
		defender := NewTerritory("Peru", "Verde", 10)

		got := Resolve(attacker, defender, NewFixedDice(6, 1), rules)

		require.True(t, got.Captured)
		require.Equal(t, 5, got.Transferred)
		require.Equal(t, "Azul", defender.Color, "Defender should change hands")
		require.Equal(t, 5, defender.Troops)
		require.Equal(t, 8, attacker.Troops)
		require.Equal(t, "Verde", got.DefenderColor, "Result should keep the previous owner")
		require.Equal(t, 6, got.AttackerDie)
		require.Equal(t, 1, got.DefenderDie)
	})

	t.Run("tie favors the defender", func(t *testing.T) {
		attacker := NewTerritory("Brasil", "Azul", 4)
		defender := NewTerritory("Peru", "Verde", 7)

		got := Resolve(attacker, defender, NewFixedDice(3, 3), rules)

		require.False(t, got.Captured)
		require.Equal(t, 1, got.AttackerLost)
		require.Equal(t, 3, attacker.Troops)
		require.Equal(t, 7, defender.Troops, "Defender should be unchanged")
		require.Equal(t, "Verde", defender.Color)
	})

	t.Run("capturing a single-troop territory moves no troops", func(t *testing.T) {
		attacker := NewTerritory("Brasil", "Azul", 2)
		defender := NewTerritory("Peru", "Verde", 1)

		got := Resolve(attacker, defender, NewFixedDice(5, 2), rules)

		require.True(t, got.Captured)
		require.Equal(t, 0, got.Transferred)
		require.Equal(t, "Azul", defender.Color)
		require.Equal(t, 1, defender.Troops)
		require.Equal(t, 2, attacker.Troops)
	})

	t.Run("attacker never drops below one troop", func(t *testing.T) {
		attacker := &Territory{Name: "Brasil", Color: "Azul", Troops: 1}
		defender := NewTerritory("Peru", "Verde", 3)

		got := Resolve(attacker, defender, NewFixedDice(1, 6), rules)

		require.Equal(t, 0, got.AttackerLost)
		require.Equal(t, 1, attacker.Troops)
	})

	t.Run("troops stay positive over many attacks", func(t *testing.T) {
		dice := NewRandomDice(NewSource(42))
		attacker := NewTerritory("Brasil", "Azul", 50)
		defender := NewTerritory("Peru", "Verde", 50)

		for i := 0; i < 500; i++ {
			if attacker.Color == defender.Color {
				defender.Color = "Verde"
			}
			Resolve(attacker, defender, dice, rules)
			require.GreaterOrEqual(t, attacker.Troops, 1)
			require.GreaterOrEqual(t, defender.Troops, 1)
		}
	})
}

func TestValidateAttack(t *testing.T) {
	rules := NewStandardRules()
	registry := func() *Registry {
		return NewRegistry(
			NewTerritory("Brasil", "Azul", 5),
			NewTerritory("Peru", "Verde", 3),
			NewTerritory("Chile", "Azul", 1),
			NewTerritory("Bolivia", "Verde", 1),
		)
	}

	tests := []struct {
		name     string
		attacker int
		defender int
		want     error
	}{
		{"valid attack", 1, 2, nil},
		{"defender out of range", 1, 5, ErrInvalidDefender},
		{"defender zero", 1, 0, ErrInvalidDefender},
		{"attacker out of range", 9, 2, ErrInvalidSelection},
		{"self targeting", 2, 2, ErrInvalidSelection},
		{"same color", 1, 3, ErrSameColor},
		{"single troop attacker", 3, 2, ErrInsufficientTroops},
		{"single troop attacker against single troop", 4, 3, ErrInsufficientTroops},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAttack(registry(), tt.attacker, tt.defender, rules)
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.want)

			var selErr *SelectionError
			require.ErrorAs(t, err, &selErr)
			require.Equal(t, tt.attacker, selErr.Attacker)
			require.Equal(t, tt.defender, selErr.Defender)
		})
	}
}
