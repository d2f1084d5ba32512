// Package skills holds the experience scale and the random tables keyed on it.
package skills

import (
	"fmt"

	"github.com/dither001/mekhq/internal/dice"
)

// ExperienceLevel is an ordinal skill tier
type ExperienceLevel int

const (
	ExperienceUltraGreen ExperienceLevel = iota
	ExperienceGreen
	ExperienceRegular
	ExperienceVeteran
	ExperienceElite
)

// MinExperience and MaxExperience bound the scale
const (
	MinExperience = ExperienceUltraGreen
	MaxExperience = ExperienceElite
)

func (l ExperienceLevel) String() string {
	switch l {
	case ExperienceUltraGreen:
		return "Ultra-Green"
	case ExperienceGreen:
		return "Green"
	case ExperienceRegular:
		return "Regular"
	case ExperienceVeteran:
		return "Veteran"
	case ExperienceElite:
		return "Elite"
	default:
		return fmt.Sprintf("ExperienceLevel(%d)", int(l))
	}
}

// Valid reports whether l lies on the scale
func (l ExperienceLevel) Valid() bool {
	return l >= MinExperience && l <= MaxExperience
}

// Clamp forces l onto the scale
func (l ExperienceLevel) Clamp() ExperienceLevel {
	if l < MinExperience {
		return MinExperience
	}
	if l > MaxExperience {
		return MaxExperience
	}
	return l
}

// ExperienceForRoll maps a modified 2d6 total onto the scale.
// Any total, however large or small, lands on a valid level.
func ExperienceForRoll(total int) ExperienceLevel {
	switch {
	case total < 2:
		return ExperienceUltraGreen
	case total < 6:
		return ExperienceGreen
	case total < 10:
		return ExperienceRegular
	case total < 12:
		return ExperienceVeteran
	default:
		return ExperienceElite
	}
}

// RollExperienceLevel rolls 2d6 plus bonus and maps the total onto the scale
func RollExperienceLevel(r dice.Roller, bonus int) (ExperienceLevel, error) {
	result, err := r.Roll(2, 6, bonus)
	if err != nil {
		return ExperienceUltraGreen, fmt.Errorf("failed to roll experience level: %w", err)
	}
	return ExperienceForRoll(result.Total), nil
}
