package testutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dither001/mekhq/internal/dice"
	"github.com/dither001/mekhq/internal/domain/campaign"
	"github.com/dither001/mekhq/internal/domain/personnel"
	"github.com/dither001/mekhq/internal/domain/skills"
)

// CreateTestCampaign creates a campaign on the given faction and date
func CreateTestCampaign(t *testing.T, id, factionCode string, date time.Time, roller dice.Roller) *campaign.Campaign {
	t.Helper()
	c, err := campaign.New(&campaign.Config{
		ID:          id,
		Name:        "Test Campaign",
		FactionCode: factionCode,
		Date:        date,
		Roller:      roller,
	})
	require.NoError(t, err)
	return c
}

// CreateTestPerson creates a fully populated person
func CreateTestPerson(id, campaignID, name string) *personnel.Person {
	p := personnel.NewPerson(id, campaignID, "MERC", false)
	p.Name = name
	p.PrimaryRole = personnel.RoleMechWarrior
	p.ExperienceLevel = skills.ExperienceRegular
	p.Birthday = time.Date(3001, time.April, 10, 0, 0, 0, 0, time.UTC)
	return p
}

// CreateTestClanner creates a trueborn clan warrior
func CreateTestClanner(id, campaignID, name string, role personnel.Role, phenotype personnel.Phenotype) *personnel.Person {
	p := personnel.NewPerson(id, campaignID, "CW", true)
	p.Name = name
	p.PrimaryRole = role
	p.Phenotype = phenotype
	p.ExperienceLevel = skills.ExperienceVeteran
	p.Birthday = time.Date(3030, time.February, 14, 0, 0, 0, 0, time.UTC)
	return p
}
