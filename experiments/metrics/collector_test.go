package metrics

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("aggregating games", func(t *testing.T) {
		c := NewCollector()
		c.AddGame(GameMetric{Winner: 0, Turns: 10, Swaps: 1, Duration: time.Millisecond})
		c.AddGame(GameMetric{Winner: 1, Turns: 20, Swaps: 0, Duration: 2 * time.Millisecond})
		c.AddGame(GameMetric{Winner: 0, Turns: 30, Swaps: 2, Duration: 3 * time.Millisecond})

		want := MatchupMetric{
			Games:     3,
			Wins0:     2,
			Turns:     60,
			Swaps:     3,
			Duration:  6 * time.Millisecond,
			MeanTurns: 20,
		}
		if diff := cmp.Diff(want, c.Complete()); diff != "" {
			t.Errorf("Complete() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("no games", func(t *testing.T) {
		require.Equal(t, MatchupMetric{}, NewCollector().Complete())
	})

	t.Run("dummy collector ignores games", func(t *testing.T) {
		c := NewDummyCollector()
		c.AddGame(GameMetric{Turns: 4})
		require.Equal(t, MatchupMetric{}, c.Complete())
	})
}
