package personnel_test

import (
	"testing"
	"time"

	"github.com/dither001/mekhq/internal/domain/personnel"
	"github.com/dither001/mekhq/internal/domain/skills"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewPerson_Defaults(t *testing.T) {
	p := personnel.NewPerson("id-1", "camp-1", "CJF", true)

	assert.Equal(t, "id-1", p.ID)
	assert.Equal(t, "camp-1", p.CampaignID)
	assert.Equal(t, "CJF", p.FactionCode)
	assert.True(t, p.IsClanner())
	assert.Equal(t, personnel.RoleNone, p.PrimaryRole)
	assert.Equal(t, personnel.RoleNone, p.SecondaryRole)
	assert.Equal(t, personnel.GenderMale, p.Gender)
	assert.Equal(t, personnel.PhenotypeNone, p.Phenotype)
	assert.Equal(t, skills.ExperienceRegular, p.ExperienceLevel)
	assert.Zero(t, p.XP)
	assert.False(t, p.IsTrueborn())

	p.Phenotype = personnel.PhenotypeBattleArmor
	assert.True(t, p.IsTrueborn())
}

func TestPerson_Age(t *testing.T) {
	p := &personnel.Person{Birthday: date(3000, time.March, 15)}

	tests := []struct {
		name string
		on   time.Time
		want int
	}{
		{name: "day before birthday", on: date(3025, time.March, 14), want: 24},
		{name: "on birthday", on: date(3025, time.March, 15), want: 25},
		{name: "later in year", on: date(3025, time.December, 31), want: 25},
		{name: "earlier month", on: date(3025, time.January, 1), want: 24},
		{name: "before birth", on: date(2999, time.January, 1), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Age(tt.on))
		})
	}

	assert.Zero(t, (&personnel.Person{}).Age(date(3025, time.January, 1)))
}

func TestPhenotype_Name(t *testing.T) {
	assert.Equal(t, "Freeborn", personnel.PhenotypeNone.Name())
	assert.Equal(t, "Trueborn Elemental", personnel.PhenotypeBattleArmor.Name())
}
