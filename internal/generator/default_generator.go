package generator

import (
	"github.com/dither001/mekhq/internal/domain/personnel"
	hqerr "github.com/dither001/mekhq/internal/errors"
)

// DefaultGenerator creates personnel by running every step in the stock order
type DefaultGenerator struct {
	*Steps
}

// NewDefaultGenerator creates a DefaultGenerator. A nil config yields defaults.
func NewDefaultGenerator(cfg *StepsConfig) *DefaultGenerator {
	return &DefaultGenerator{Steps: NewSteps(cfg)}
}

// Generate implements Generator
func (g *DefaultGenerator) Generate(c Context, primary personnel.Role) (*personnel.Person, error) {
	return g.GenerateWithSecondary(c, primary, personnel.RoleNone)
}

// GenerateWithSecondary implements Generator
func (g *DefaultGenerator) GenerateWithSecondary(c Context, primary, secondary personnel.Role) (*personnel.Person, error) {
	if !primary.Valid() {
		return nil, hqerr.InvalidArgumentf("unknown primary role '%s'", primary).
			WithMeta("role", string(primary))
	}
	if !secondary.Valid() {
		return nil, hqerr.InvalidArgumentf("unknown secondary role '%s'", secondary).
			WithMeta("role", string(secondary))
	}

	p, err := g.CreatePerson(c)
	if err != nil {
		return nil, err
	}

	p.PrimaryRole = primary
	p.SecondaryRole = secondary

	lvl, err := g.GenerateExperienceLevel(c, p)
	if err != nil {
		return nil, err
	}
	p.ExperienceLevel = lvl

	if err := g.GeneratePhenotype(c, p, lvl); err != nil {
		return nil, err
	}
	if err := g.GenerateXP(c, p, lvl); err != nil {
		return nil, err
	}
	if err := g.GenerateName(c, p); err != nil {
		return nil, err
	}
	if err := g.GenerateBirthday(c, p, lvl, p.IsTrueborn()); err != nil {
		return nil, err
	}

	return p, nil
}

var _ Generator = (*DefaultGenerator)(nil)
