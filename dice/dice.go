package dice

import (
	"time"

	"golang.org/x/exp/rand"
)

// Dice produces one bounded positive outcome per roll.
type Dice interface {
	Roll() int
}

// Func adapts a plain function to the Dice interface.
type Func func() int

func (f Func) Roll() int {
	return f()
}

// Sided is a fair die with faces 1..sides.
type Sided struct {
	sides int
	rng   *rand.Rand
}

// NewSided returns a die with the given number of faces drawing from src.
func NewSided(sides int, src rand.Source) *Sided {
	if sides < 1 {
		panic("dice must have at least one side")
	}
	return &Sided{sides: sides, rng: rand.New(src)}
}

func (s *Sided) Roll() int {
	return s.rng.Intn(s.sides) + 1
}

func (s *Sided) Sides() int {
	return s.sides
}

// Standard dice share the package-level source and are not safe for concurrent use.
var (
	source    = rand.NewSource(timeSeed())
	SixSided  = NewSided(6, source)
	FourSided = NewSided(4, source)
)

// The default source of x/exp/rand is fixed, so seed from the clock instead.
func timeSeed() uint64 {
	return uint64(time.Now().UnixNano())
}

// Seeded returns a six-sided and a four-sided die drawing from one seeded source.
func Seeded(seed uint64) (six, four *Sided) {
	src := rand.NewSource(seed)
	return NewSided(6, src), NewSided(4, src)
}
