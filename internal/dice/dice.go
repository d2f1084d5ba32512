package dice

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

var (
	// ErrInvalidCount indicates a roll asked for fewer than one die
	ErrInvalidCount = errors.New("invalid dice count")

	// ErrInvalidSides indicates a die with fewer than one side
	ErrInvalidSides = errors.New("invalid dice size")

	// ErrInvalidBound indicates RandomInt was asked for a non-positive bound
	ErrInvalidBound = errors.New("random bound must be positive")
)

// RollResult is the outcome of rolling one or more dice
type RollResult struct {
	Total    int
	RawTotal int
	Rolls    []int
	Bonus    int
	Count    int
	Sides    int
}

func (r *RollResult) String() string {
	compact := strings.ReplaceAll(fmt.Sprintf("%v", r.Rolls), " ", "")
	if r.Bonus != 0 {
		return fmt.Sprintf("%dd%d%+d = %d %s", r.Count, r.Sides, r.Bonus, r.Total, compact)
	}
	return fmt.Sprintf("%dd%d = %d %s", r.Count, r.Sides, r.Total, compact)
}

func roll(rng *rand.Rand, count, sides, bonus int) (*RollResult, error) {
	if count < 1 {
		return nil, ErrInvalidCount
	}
	if sides < 1 {
		return nil, ErrInvalidSides
	}

	total := 0
	out := make([]int, count)
	for i := 0; i < count; i++ {
		out[i] = rng.Intn(sides) + 1
		total += out[i]
	}

	return &RollResult{
		Total:    total + bonus,
		RawTotal: total,
		Rolls:    out,
		Bonus:    bonus,
		Count:    count,
		Sides:    sides,
	}, nil
}

// D6 rolls count six-sided dice and returns the sum
func D6(r Roller, count int) (int, error) {
	result, err := r.Roll(count, 6, 0)
	if err != nil {
		return 0, err
	}
	return result.Total, nil
}

// RollProbability succeeds with the given percentage chance.
// Values at or below 0 never succeed, values at or above 100 always do.
func RollProbability(r Roller, percent int) (bool, error) {
	n, err := r.RandomInt(100)
	if err != nil {
		return false, err
	}
	return n < percent, nil
}
