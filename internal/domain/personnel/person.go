// Package personnel defines campaign members and the policy inputs used to generate them.
package personnel

import (
	"time"

	"github.com/dither001/mekhq/internal/domain/skills"
)

// Gender of a person
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Phenotype is a clan genetic aptitude
type Phenotype string

const (
	PhenotypeNone        Phenotype = "none"
	PhenotypeMechWarrior Phenotype = "mechwarrior"
	PhenotypeVehicle     Phenotype = "vehicle"
	PhenotypeAerospace   Phenotype = "aerospace"
	PhenotypeBattleArmor Phenotype = "battle-armor"
)

// Name is the display name of the phenotype
func (p Phenotype) Name() string {
	switch p {
	case PhenotypeMechWarrior:
		return "Trueborn MechWarrior"
	case PhenotypeVehicle:
		return "Trueborn Vehicle Crew"
	case PhenotypeAerospace:
		return "Trueborn Pilot"
	case PhenotypeBattleArmor:
		return "Trueborn Elemental"
	default:
		return "Freeborn"
	}
}

// Person is a campaign member
type Person struct {
	ID          string
	CampaignID  string
	FactionCode string

	PrimaryRole   Role
	SecondaryRole Role

	// Clan is fixed at creation from the campaign faction
	Clan bool

	Gender          Gender
	Name            string
	ExperienceLevel skills.ExperienceLevel
	XP              int
	Phenotype       Phenotype
	Birthday        time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewPerson creates a person with default field values
func NewPerson(id, campaignID, factionCode string, clan bool) *Person {
	return &Person{
		ID:              id,
		CampaignID:      campaignID,
		FactionCode:     factionCode,
		PrimaryRole:     RoleNone,
		SecondaryRole:   RoleNone,
		Clan:            clan,
		Gender:          GenderMale,
		ExperienceLevel: skills.ExperienceRegular,
		Phenotype:       PhenotypeNone,
	}
}

// IsClanner reports whether the person follows clan generation rules
func (p *Person) IsClanner() bool {
	return p.Clan
}

// IsTrueborn reports whether the person is a clanner with a phenotype
func (p *Person) IsTrueborn() bool {
	return p.Clan && p.Phenotype != PhenotypeNone
}

// Age returns whole years elapsed from the birthday to on
func (p *Person) Age(on time.Time) int {
	if p.Birthday.IsZero() || on.Before(p.Birthday) {
		return 0
	}
	age := on.Year() - p.Birthday.Year()
	if on.Month() < p.Birthday.Month() ||
		(on.Month() == p.Birthday.Month() && on.Day() < p.Birthday.Day()) {
		age--
	}
	return age
}
