package generator

import (
	"fmt"
	"sync"

	"github.com/dither001/mekhq/internal/dice"
	"github.com/dither001/mekhq/internal/domain/personnel"
	"github.com/dither001/mekhq/internal/domain/skills"
	hqerr "github.com/dither001/mekhq/internal/errors"
	"github.com/dither001/mekhq/internal/names"
	"github.com/dither001/mekhq/internal/uuid"
)

// lamBonus is added to the experience roll of a mechwarrior who also flies aerospace
const lamBonus = 3

// Steps holds the policy inputs and the individual generation steps that
// concrete generators compose
type Steps struct {
	mu               sync.RWMutex
	nameGenerator    names.Source
	skillPreferences *personnel.SkillPreferences

	ageTable      skills.AgeTable
	uuidGenerator uuid.Generator
}

// StepsConfig holds the collaborators for Steps. Every field is optional.
type StepsConfig struct {
	NameGenerator    names.Source
	SkillPreferences *personnel.SkillPreferences
	AgeTable         skills.AgeTable
	UUIDGenerator    uuid.Generator
}

// NewSteps creates a step library, filling unset collaborators with defaults
func NewSteps(cfg *StepsConfig) *Steps {
	if cfg == nil {
		cfg = &StepsConfig{}
	}

	s := &Steps{
		nameGenerator:    cfg.NameGenerator,
		skillPreferences: cfg.SkillPreferences,
		ageTable:         cfg.AgeTable,
		uuidGenerator:    cfg.UUIDGenerator,
	}
	if s.nameGenerator == nil {
		s.nameGenerator = names.NewRandomGenerator(nil)
	}
	if s.skillPreferences == nil {
		s.skillPreferences = personnel.NewSkillPreferences()
	}
	if s.ageTable == nil {
		s.ageTable = skills.DefaultAgeTable
	}
	if s.uuidGenerator == nil {
		s.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	return s
}

// NameGenerator returns the current name source
func (s *Steps) NameGenerator() names.Source {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nameGenerator
}

// SetNameGenerator replaces the name source. A nil source is rejected and
// the current one kept.
func (s *Steps) SetNameGenerator(src names.Source) error {
	if src == nil {
		return hqerr.InvalidArgument("name generator cannot be nil")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nameGenerator = src
	return nil
}

// SkillPreferences returns the current skill preferences
func (s *Steps) SkillPreferences() *personnel.SkillPreferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.skillPreferences
}

// SetSkillPreferences replaces the skill preferences. Nil is rejected and
// the current value kept.
func (s *Steps) SetSkillPreferences(prefs *personnel.SkillPreferences) error {
	if prefs == nil {
		return hqerr.InvalidArgument("skill preferences cannot be nil")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.skillPreferences = prefs
	return nil
}

// CreatePerson creates an empty person belonging to the campaign
func (s *Steps) CreatePerson(c Context) (*personnel.Person, error) {
	if c == nil {
		return nil, hqerr.InvalidArgument("campaign cannot be nil")
	}
	return personnel.NewPerson(s.uuidGenerator.New(), c.ID(), c.FactionCode(), c.IsClanFaction()), nil
}

// ExperienceBonus is the modifier applied to the person's experience roll
func (s *Steps) ExperienceBonus(p *personnel.Person) int {
	prefs := s.SkillPreferences()
	bonus := prefs.OverallRecruitBonus() + prefs.RecruitBonus(p.PrimaryRole)
	if p.PrimaryRole == personnel.RoleMechWarrior && p.SecondaryRole == personnel.RoleAeroPilot {
		bonus += lamBonus
	}
	return bonus
}

// GenerateExperienceLevel rolls an experience level for the person.
// The person is not modified.
func (s *Steps) GenerateExperienceLevel(c Context, p *personnel.Person) (skills.ExperienceLevel, error) {
	lvl, err := skills.RollExperienceLevel(c.Roller(), s.ExperienceBonus(p))
	if err != nil {
		return skills.ExperienceRegular, fmt.Errorf("failed to roll experience level: %w", err)
	}
	return lvl, nil
}

// GenerateName draws a gender and a matching name for the person
func (s *Steps) GenerateName(c Context, p *personnel.Person) error {
	female, name, err := names.Draw(s.NameGenerator())
	if err != nil {
		return fmt.Errorf("failed to generate name: %w", err)
	}
	if female {
		p.Gender = personnel.GenderFemale
	}
	p.Name = name
	return nil
}

// GenerateXP sets a random starting XP when the campaign uses the
// alternate XP table. Otherwise the person is left alone.
func (s *Steps) GenerateXP(c Context, p *personnel.Person, lvl skills.ExperienceLevel) error {
	if !c.Options().AlternateRandomXP {
		return nil
	}
	xp, err := skills.RollRandomXP(c.Roller())
	if err != nil {
		return fmt.Errorf("failed to roll starting xp: %w", err)
	}
	p.XP = xp
	return nil
}

// GeneratePhenotype may make a clanner trueborn, depending on the phenotype
// family of their primary role
func (s *Steps) GeneratePhenotype(c Context, p *personnel.Person, lvl skills.ExperienceLevel) error {
	if !p.IsClanner() {
		return nil
	}

	phenotype, ok := PhenotypeForRole(p.PrimaryRole)
	if !ok {
		return nil
	}

	success, err := dice.RollProbability(c.Roller(), phenotypeProbability(c, phenotype))
	if err != nil {
		return fmt.Errorf("failed to roll phenotype: %w", err)
	}
	if success {
		p.Phenotype = phenotype
	}
	return nil
}
