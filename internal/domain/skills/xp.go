package skills

import (
	"fmt"

	"github.com/dither001/mekhq/internal/dice"
)

// randomXPTable is a cumulative weight table over starting XP values.
// Index i of the table awards i XP when the draw falls below its bound.
var randomXPTable = []int{
	500, 1500, 2500, 3500, 4500, 5000, 5500, 6000, 6500,
	7000, 7500, 7725, 7950, 8175, 8400, 8625, 8725, 8825,
}

// MaxRandomXP is the largest value RollRandomXP returns
var MaxRandomXP = len(randomXPTable) - 1

// RollRandomXP draws a starting XP value from the weighted table
func RollRandomXP(r dice.Roller) (int, error) {
	draw, err := r.RandomInt(randomXPTable[len(randomXPTable)-1])
	if err != nil {
		return 0, fmt.Errorf("failed to roll random XP: %w", err)
	}
	return xpForDraw(draw), nil
}

func xpForDraw(draw int) int {
	for xp, bound := range randomXPTable {
		if draw < bound {
			return xp
		}
	}
	return MaxRandomXP
}
