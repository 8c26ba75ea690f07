package game

import (
	"testing"

	"hog/dice"

	"github.com/stretchr/testify/require"
)

func TestRollDice(t *testing.T) {
	t.Run("sum of outcomes", func(t *testing.T) {
		got, err := RollDice(3, dice.NewStrictTestDice(4, 6, 2))
		require.NoError(t, err)
		require.Equal(t, 12, got)
	})

	t.Run("pig out consumes every die", func(t *testing.T) {
		d := dice.NewStrictTestDice(3, 1, 5, 6)
		got, err := RollDice(4, d)
		require.NoError(t, err)
		require.Equal(t, 0, got, "Any 1 should zero the turn")
		require.Equal(t, 4, d.Rolls())
	})

	t.Run("zero or sum for any outcomes", func(t *testing.T) {
		six, _ := dice.Seeded(11)
		for i := 0; i < 200; i++ {
			var rolled []int
			recorder := dice.Func(func() int {
				r := six.Roll()
				rolled = append(rolled, r)
				return r
			})
			n := i%10 + 1
			got, err := RollDice(n, recorder)
			require.NoError(t, err)

			sum, one := 0, false
			for _, r := range rolled {
				sum += r
				one = one || r == 1
			}
			if one {
				require.Equal(t, 0, got)
			} else {
				require.Equal(t, sum, got)
			}
		}
	})

	t.Run("rejects fewer than one roll", func(t *testing.T) {
		_, err := RollDice(0, dice.NewTestDice(2))
		require.ErrorIs(t, err, ErrInvalidRolls)
	})
}

func TestTakeTurn(t *testing.T) {
	t.Run("rolled a one", func(t *testing.T) {
		got, err := TakeTurn(2, 30, dice.NewStrictTestDice(3, 1))
		require.NoError(t, err)
		require.Equal(t, 0, got)
	})

	t.Run("free bacon", func(t *testing.T) {
		got, err := TakeTurn(0, 34, dice.NewStrictTestDice(6))
		require.NoError(t, err)
		require.Equal(t, 7, got, "max(3, 4) + 1 = 5 is prime")
	})

	t.Run("free bacon bumped by hogtimus prime", func(t *testing.T) {
		got, err := TakeTurn(0, 20, dice.NewStrictTestDice(6))
		require.NoError(t, err)
		require.Equal(t, 5, got, "max(2, 0) + 1 = 3 is prime")
	})

	t.Run("rolled sum bumped by hogtimus prime", func(t *testing.T) {
		got, err := TakeTurn(2, 0, dice.NewStrictTestDice(5, 6))
		require.NoError(t, err)
		require.Equal(t, 13, got, "11 is prime")
	})

	t.Run("free bacon does not roll", func(t *testing.T) {
		d := dice.NewStrictTestDice(6)
		_, err := TakeTurn(0, 45, d)
		require.NoError(t, err)
		require.Equal(t, 0, d.Rolls())
	})

	t.Run("invalid rolls fail before rolling", func(t *testing.T) {
		for _, n := range []int{-1, 11} {
			d := dice.NewStrictTestDice(6)
			_, err := TakeTurn(n, 0, d)
			require.ErrorIs(t, err, ErrInvalidRolls)
			require.Equal(t, 0, d.Rolls())
		}
	})

	t.Run("opponent already won", func(t *testing.T) {
		d := dice.NewStrictTestDice(6)
		_, err := TakeTurn(1, 100, d)
		require.ErrorIs(t, err, ErrGameOver)
		require.Equal(t, 0, d.Rolls())
	})

	t.Run("goal comes from rules", func(t *testing.T) {
		rules := NewStandardRules()
		rules.Goal = 50
		_, err := rules.TakeTurn(0, 50, dice.NewTestDice(2))
		require.ErrorIs(t, err, ErrGameOver)

		got, err := rules.TakeTurn(0, 49, dice.NewTestDice(2))
		require.NoError(t, err)
		require.Equal(t, 10, got)
	})
}

func TestBaconGain(t *testing.T) {
	require.Equal(t, 1, FreeBacon(0))
	require.Equal(t, 1, BaconGain(0))
	require.Equal(t, 3, BaconGain(1))
	require.Equal(t, 10, FreeBacon(9))
	require.Equal(t, 10, BaconGain(90))
	require.Equal(t, 7, FreeBacon(56))
	require.Equal(t, 11, BaconGain(56))
}

func TestOther(t *testing.T) {
	require.Equal(t, 1, Other(0))
	require.Equal(t, 0, Other(1))
}
