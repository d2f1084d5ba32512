package generator

import (
	"fmt"
	"time"

	"github.com/dither001/mekhq/internal/domain/personnel"
	"github.com/dither001/mekhq/internal/domain/skills"
	hqerr "github.com/dither001/mekhq/internal/errors"
)

// IsLeapYear applies the Gregorian leap year rule
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear is 366 for leap years and 365 otherwise
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// GenerateBirthday picks a birthday from an age rolled on the age table.
// The birth year is the campaign year minus the age and the day is uniform
// over that year, never falling after the campaign date.
func (s *Steps) GenerateBirthday(c Context, p *personnel.Person, lvl skills.ExperienceLevel, clan bool) error {
	age, err := s.ageTable.Age(c.Roller(), lvl, clan)
	if err != nil {
		return fmt.Errorf("failed to roll age: %w", err)
	}
	if age < 0 {
		return hqerr.Validationf("age table returned negative age %d", age).
			WithMeta("age", age)
	}

	now := c.CurrentDate()
	year := now.Year() - age

	days := DaysInYear(year)
	if age == 0 {
		days = now.YearDay()
	}

	draw, err := c.Roller().RandomInt(days)
	if err != nil {
		return fmt.Errorf("failed to roll birthday: %w", err)
	}

	p.Birthday = time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, draw)
	return nil
}
