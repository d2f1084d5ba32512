package skills

import (
	"fmt"

	"github.com/dither001/mekhq/internal/dice"
)

// AgeTable yields a starting age for a recruit of the given level.
// Clan personnel are raised in sibkos and reach the field younger.
type AgeTable interface {
	Age(r dice.Roller, level ExperienceLevel, clan bool) (int, error)
}

// DiceAgeTable adds a number of exploding d6 to a base age.
// Each six adds a further d6-1 once; clan dice are halved, rounding up.
type DiceAgeTable struct {
	BaseAge int
}

// DefaultAgeTable is the standard recruit age table
var DefaultAgeTable = &DiceAgeTable{BaseAge: 19}

// diceForLevel is the number of age dice rolled per level
func diceForLevel(level ExperienceLevel) int {
	switch level.Clamp() {
	case ExperienceRegular:
		return 2
	case ExperienceVeteran:
		return 3
	case ExperienceElite:
		return 4
	default:
		return 1
	}
}

// Age implements AgeTable
func (t *DiceAgeTable) Age(r dice.Roller, level ExperienceLevel, clan bool) (int, error) {
	age := t.BaseAge
	for n := diceForLevel(level); n > 0; n-- {
		roll, err := dice.D6(r, 1)
		if err != nil {
			return 0, fmt.Errorf("failed to roll age: %w", err)
		}
		if roll == 6 {
			extra, err := dice.D6(r, 1)
			if err != nil {
				return 0, fmt.Errorf("failed to roll age: %w", err)
			}
			roll += extra - 1
		}
		if clan {
			roll = (roll + 1) / 2
		}
		age += roll
	}
	return age, nil
}

// MinAge is the youngest age the table can produce
func (t *DiceAgeTable) MinAge(level ExperienceLevel, clan bool) int {
	return t.BaseAge + diceForLevel(level)
}

// MaxAge is the oldest age the table can produce
func (t *DiceAgeTable) MaxAge(level ExperienceLevel, clan bool) int {
	perDie := 11
	if clan {
		perDie = 6
	}
	return t.BaseAge + diceForLevel(level)*perDie
}
