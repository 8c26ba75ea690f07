package dice

import (
	"errors"
	"fmt"
)

var ErrExhausted = errors.New("test dice exhausted")

// TestDice replays a fixed sequence of outcomes. A cycling TestDice wraps
// around to the first outcome; a strict one panics with ErrExhausted when
// rolled more times than it has outcomes.
type TestDice struct {
	outcomes []int
	cursor   int
	strict   bool
}

// NewTestDice returns dice that cycle through outcomes forever.
func NewTestDice(outcomes ...int) *TestDice {
	return newTestDice(outcomes, false)
}

// NewStrictTestDice returns dice that can be rolled exactly len(outcomes) times.
func NewStrictTestDice(outcomes ...int) *TestDice {
	return newTestDice(outcomes, true)
}

func newTestDice(outcomes []int, strict bool) *TestDice {
	if len(outcomes) == 0 {
		panic("test dice need at least one outcome")
	}
	for _, o := range outcomes {
		if o < 1 {
			panic(fmt.Sprintf("test dice outcome %d is not positive", o))
		}
	}
	seq := make([]int, len(outcomes))
	copy(seq, outcomes)
	return &TestDice{outcomes: seq, strict: strict}
}

func (d *TestDice) Roll() int {
	if d.cursor >= len(d.outcomes) {
		if d.strict {
			panic(fmt.Errorf("%w after %d rolls", ErrExhausted, d.cursor))
		}
		d.cursor = 0
	}
	outcome := d.outcomes[d.cursor]
	d.cursor++
	return outcome
}

// Rolls reports how many outcomes have been consumed since the last wrap.
func (d *TestDice) Rolls() int {
	return d.cursor
}
