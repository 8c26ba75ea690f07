// meta/meta.go
package meta

// GoalScore is the score that ends a game of Hog.
const GoalScore = 100

// MaxRolls is the most dice a player may roll in one turn.
const MaxRolls = 10

// NumSamples is the default number of trials averaged by experiments.
const NumSamples = 1000

// BaselineRolls is the fixed roll count of the baseline strategy.
const BaselineRolls = 5
