package personnel

import (
	"sort"
	"time"

	"github.com/dither001/mekhq/internal/domain/personnel"
	"github.com/dither001/mekhq/internal/domain/skills"
)

// PersonData represents the serialized form of a person
type PersonData struct {
	ID              string                 `json:"id"`
	CampaignID      string                 `json:"campaign_id"`
	FactionCode     string                 `json:"faction_code"`
	PrimaryRole     personnel.Role         `json:"primary_role"`
	SecondaryRole   personnel.Role         `json:"secondary_role"`
	Clan            bool                   `json:"clan"`
	Gender          personnel.Gender       `json:"gender"`
	Name            string                 `json:"name"`
	ExperienceLevel skills.ExperienceLevel `json:"experience_level"`
	XP              int                    `json:"xp"`
	Phenotype       personnel.Phenotype    `json:"phenotype"`
	Birthday        time.Time              `json:"birthday"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

func toPersonData(p *personnel.Person) *PersonData {
	return &PersonData{
		ID:              p.ID,
		CampaignID:      p.CampaignID,
		FactionCode:     p.FactionCode,
		PrimaryRole:     p.PrimaryRole,
		SecondaryRole:   p.SecondaryRole,
		Clan:            p.Clan,
		Gender:          p.Gender,
		Name:            p.Name,
		ExperienceLevel: p.ExperienceLevel,
		XP:              p.XP,
		Phenotype:       p.Phenotype,
		Birthday:        p.Birthday,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func fromPersonData(data *PersonData) *personnel.Person {
	return &personnel.Person{
		ID:              data.ID,
		CampaignID:      data.CampaignID,
		FactionCode:     data.FactionCode,
		PrimaryRole:     data.PrimaryRole,
		SecondaryRole:   data.SecondaryRole,
		Clan:            data.Clan,
		Gender:          data.Gender,
		Name:            data.Name,
		ExperienceLevel: data.ExperienceLevel,
		XP:              data.XP,
		Phenotype:       data.Phenotype,
		Birthday:        data.Birthday,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// sortRoster orders people by creation time, then ID
func sortRoster(people []*personnel.Person) {
	sort.SliceStable(people, func(i, j int) bool {
		if !people[i].CreatedAt.Equal(people[j].CreatedAt) {
			return people[i].CreatedAt.Before(people[j].CreatedAt)
		}
		return people[i].ID < people[j].ID
	})
}
