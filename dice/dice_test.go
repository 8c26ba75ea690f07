package dice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestSided(t *testing.T) {
	t.Run("outcomes stay within faces", func(t *testing.T) {
		d := NewSided(4, rand.NewSource(42))
		seen := map[int]bool{}
		for i := 0; i < 1000; i++ {
			roll := d.Roll()
			require.GreaterOrEqual(t, roll, 1)
			require.LessOrEqual(t, roll, 4)
			seen[roll] = true
		}
		require.Len(t, seen, 4, "Every face should come up in 1000 rolls")
	})

	t.Run("same seed replays same outcomes", func(t *testing.T) {
		a, _ := Seeded(7)
		b, _ := Seeded(7)
		for i := 0; i < 50; i++ {
			require.Equal(t, a.Roll(), b.Roll())
		}
	})

	t.Run("panics without sides", func(t *testing.T) {
		require.Panics(t, func() {
			NewSided(0, rand.NewSource(1))
		})
	})

	t.Run("clock seeds differ between runs", func(t *testing.T) {
		first := timeSeed()
		time.Sleep(time.Millisecond)
		second := timeSeed()
		require.NotEqual(t, first, second)

		a, _ := Seeded(first)
		b, _ := Seeded(second)
		var rollsA, rollsB []int
		for i := 0; i < 20; i++ {
			rollsA = append(rollsA, a.Roll())
			rollsB = append(rollsB, b.Roll())
		}
		require.NotEqual(t, rollsA, rollsB, "Different seeds should give different rolls")
	})

	t.Run("standard dice", func(t *testing.T) {
		require.Equal(t, 6, SixSided.Sides())
		require.Equal(t, 4, FourSided.Sides())
	})
}

func TestTestDice(t *testing.T) {
	t.Run("cycling", func(t *testing.T) {
		d := NewTestDice(3, 1, 5)
		var got []int
		for i := 0; i < 7; i++ {
			got = append(got, d.Roll())
		}
		require.Equal(t, []int{3, 1, 5, 3, 1, 5, 3}, got)
	})

	t.Run("strict panics once exhausted", func(t *testing.T) {
		d := NewStrictTestDice(2, 6)
		require.Equal(t, 2, d.Roll())
		require.Equal(t, 6, d.Roll())
		require.Equal(t, 2, d.Rolls())
		require.PanicsWithError(t, "test dice exhausted after 2 rolls", func() {
			d.Roll()
		})
	})

	t.Run("rejects empty and non-positive outcomes", func(t *testing.T) {
		require.Panics(t, func() { NewTestDice() })
		require.Panics(t, func() { NewTestDice(4, 0) })
	})

	t.Run("caller slice is copied", func(t *testing.T) {
		outcomes := []int{4, 4}
		d := NewTestDice(outcomes...)
		outcomes[0] = 6
		require.Equal(t, 4, d.Roll())
	})
}

func TestFunc(t *testing.T) {
	var d Dice = Func(func() int { return 3 })
	require.Equal(t, 3, d.Roll())
}
