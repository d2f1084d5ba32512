package generator_test

import (
	"testing"

	mockdice "github.com/dither001/mekhq/internal/dice/mock"
	"github.com/dither001/mekhq/internal/domain/campaign"
	"github.com/dither001/mekhq/internal/domain/personnel"
	"github.com/dither001/mekhq/internal/domain/skills"
	hqerr "github.com/dither001/mekhq/internal/errors"
	"github.com/dither001/mekhq/internal/generator"
	"github.com/dither001/mekhq/internal/names"
	namemocks "github.com/dither001/mekhq/internal/names/mocks"
	uuidmocks "github.com/dither001/mekhq/internal/uuid/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewSteps_Defaults(t *testing.T) {
	s := generator.NewSteps(nil)

	require.NotNil(t, s.NameGenerator())
	require.NotNil(t, s.SkillPreferences())
	assert.IsType(t, &names.RandomGenerator{}, s.NameGenerator())
	assert.Zero(t, s.SkillPreferences().OverallRecruitBonus())
}

func TestSetNameGenerator(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := generator.NewSteps(nil)
	original := s.NameGenerator()

	err := s.SetNameGenerator(nil)
	assert.True(t, hqerr.IsInvalidArgument(err))
	assert.Same(t, original, s.NameGenerator())

	replacement := namemocks.NewMockSource(ctrl)
	require.NoError(t, s.SetNameGenerator(replacement))
	assert.Same(t, replacement, s.NameGenerator())
}

func TestSetSkillPreferences(t *testing.T) {
	s := generator.NewSteps(nil)
	original := s.SkillPreferences()

	err := s.SetSkillPreferences(nil)
	assert.True(t, hqerr.IsInvalidArgument(err))
	assert.Same(t, original, s.SkillPreferences())

	replacement := personnel.NewSkillPreferences()
	require.NoError(t, s.SetSkillPreferences(replacement))
	assert.Same(t, replacement, s.SkillPreferences())
}

func TestCreatePerson(t *testing.T) {
	ctrl := gomock.NewController(t)
	ids := uuidmocks.NewMockGenerator(ctrl)
	ids.EXPECT().New().Return("person-1")

	s := generator.NewSteps(&generator.StepsConfig{UUIDGenerator: ids})
	c := newCampaign(t, "CW", date(3050, 6, 1), mockdice.NewManualMockRoller(), nil)

	p, err := s.CreatePerson(c)

	require.NoError(t, err)
	assert.Equal(t, "person-1", p.ID)
	assert.Equal(t, "campaign-1", p.CampaignID)
	assert.Equal(t, "CW", p.FactionCode)
	assert.True(t, p.IsClanner())
	assert.Equal(t, personnel.RoleNone, p.PrimaryRole)
	assert.Equal(t, personnel.PhenotypeNone, p.Phenotype)

	_, err = s.CreatePerson(nil)
	assert.True(t, hqerr.IsInvalidArgument(err))
}

func TestExperienceBonus(t *testing.T) {
	prefs := personnel.NewSkillPreferences()
	prefs.SetOverallRecruitBonus(1)
	prefs.SetRecruitBonus(personnel.RoleMechWarrior, 2)
	prefs.SetRecruitBonus(personnel.RoleAeroPilot, -1)

	s := generator.NewSteps(&generator.StepsConfig{SkillPreferences: prefs})

	tests := []struct {
		name      string
		primary   personnel.Role
		secondary personnel.Role
		want      int
	}{
		{name: "mechwarrior", primary: personnel.RoleMechWarrior, secondary: personnel.RoleNone, want: 3},
		{name: "lam pilot bonus", primary: personnel.RoleMechWarrior, secondary: personnel.RoleAeroPilot, want: 6},
		{name: "reversed roles get no lam bonus", primary: personnel.RoleAeroPilot, secondary: personnel.RoleMechWarrior, want: 0},
		{name: "role without bonus", primary: personnel.RoleDoctor, secondary: personnel.RoleNone, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := personnel.NewPerson("p", "c", "MERC", false)
			p.PrimaryRole = tt.primary
			p.SecondaryRole = tt.secondary

			assert.Equal(t, tt.want, s.ExperienceBonus(p))
		})
	}
}

func TestGenerateExperienceLevel(t *testing.T) {
	prefs := personnel.NewSkillPreferences()
	prefs.SetOverallRecruitBonus(1)

	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{5, 5})
	c := newCampaign(t, "MERC", date(3025, 1, 1), roller, nil)

	s := generator.NewSteps(&generator.StepsConfig{SkillPreferences: prefs})
	p := personnel.NewPerson("p", c.ID(), c.FactionCode(), false)
	p.PrimaryRole = personnel.RoleMechWarrior

	lvl, err := s.GenerateExperienceLevel(c, p)

	require.NoError(t, err)
	// 5+5+1 = 11
	assert.Equal(t, skills.ExperienceVeteran, lvl)
	assert.Equal(t, skills.ExperienceRegular, p.ExperienceLevel)
}

func TestGenerateName(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := namemocks.NewMockSource(ctrl)
	gomock.InOrder(
		src.EXPECT().IsFemale().Return(true, nil),
		src.EXPECT().Generate(true).Return("Kai Allard-Liao", nil),
	)

	s := generator.NewSteps(&generator.StepsConfig{NameGenerator: src})
	p := personnel.NewPerson("p", "c", "MERC", false)

	require.NoError(t, s.GenerateName(nil, p))
	assert.Equal(t, personnel.GenderFemale, p.Gender)
	assert.Equal(t, "Kai Allard-Liao", p.Name)
}

func TestGenerateName_MaleKeepsDefault(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := namemocks.NewMockPairSource(ctrl)
	src.EXPECT().DrawPair().Return(false, "Morgan Hasek-Davion", nil)

	s := generator.NewSteps(&generator.StepsConfig{NameGenerator: src})
	p := personnel.NewPerson("p", "c", "MERC", false)

	require.NoError(t, s.GenerateName(nil, p))
	assert.Equal(t, personnel.GenderMale, p.Gender)
	assert.Equal(t, "Morgan Hasek-Davion", p.Name)
}

func TestGenerateXP(t *testing.T) {
	s := generator.NewSteps(nil)

	t.Run("option off leaves xp untouched", func(t *testing.T) {
		roller := mockdice.NewManualMockRoller()
		c := newCampaign(t, "MERC", date(3025, 1, 1), roller, nil)
		p := personnel.NewPerson("p", c.ID(), c.FactionCode(), false)
		p.XP = 7

		require.NoError(t, s.GenerateXP(c, p, skills.ExperienceRegular))
		assert.Equal(t, 7, p.XP)
	})

	t.Run("option on overwrites xp", func(t *testing.T) {
		opts := campaign.DefaultOptions()
		opts.AlternateRandomXP = true
		roller := mockdice.NewManualMockRoller()
		roller.SetRolls([]int{1600})
		c := newCampaign(t, "MERC", date(3025, 1, 1), roller, opts)
		p := personnel.NewPerson("p", c.ID(), c.FactionCode(), false)
		p.XP = 7

		require.NoError(t, s.GenerateXP(c, p, skills.ExperienceRegular))
		assert.Equal(t, 2, p.XP)
	})
}

func TestGeneratePhenotype(t *testing.T) {
	s := generator.NewSteps(nil)

	t.Run("non clanner never rolls", func(t *testing.T) {
		roller := mockdice.NewManualMockRoller()
		c := newCampaign(t, "MERC", date(3050, 1, 1), roller, nil)
		p := personnel.NewPerson("p", c.ID(), c.FactionCode(), false)
		p.PrimaryRole = personnel.RoleBattleArmor

		require.NoError(t, s.GeneratePhenotype(c, p, skills.ExperienceElite))
		assert.Equal(t, personnel.PhenotypeNone, p.Phenotype)
		assert.Zero(t, roller.Remaining())
	})

	t.Run("role outside every family never rolls", func(t *testing.T) {
		roller := mockdice.NewManualMockRoller()
		c := newCampaign(t, "CW", date(3050, 1, 1), roller, nil)
		p := personnel.NewPerson("p", c.ID(), c.FactionCode(), true)
		p.PrimaryRole = personnel.RoleDoctor

		require.NoError(t, s.GeneratePhenotype(c, p, skills.ExperienceRegular))
		assert.Equal(t, personnel.PhenotypeNone, p.Phenotype)
	})

	tests := []struct {
		name    string
		role    personnel.Role
		draw    int
		options func(*campaign.Options)
		want    personnel.Phenotype
	}{
		{name: "mechwarrior success", role: personnel.RoleMechWarrior, draw: 94, want: personnel.PhenotypeMechWarrior},
		{name: "mechwarrior failure", role: personnel.RoleMechWarrior, draw: 95, want: personnel.PhenotypeNone},
		{name: "vehicle default zero", role: personnel.RoleVTOLPilot, draw: 0, want: personnel.PhenotypeNone},
		{
			name: "vehicle enabled", role: personnel.RoleGroundVehicleDriver, draw: 10,
			options: func(o *campaign.Options) { o.PhenotypeProbabilities.Vehicle = 50 },
			want:    personnel.PhenotypeVehicle,
		},
		{name: "protomech is aerospace", role: personnel.RoleProtoMechPilot, draw: 0, want: personnel.PhenotypeAerospace},
		{name: "battle armor always", role: personnel.RoleBattleArmor, draw: 99, want: personnel.PhenotypeBattleArmor},
		{
			name: "battle armor disabled", role: personnel.RoleBattleArmor, draw: 0,
			options: func(o *campaign.Options) { o.PhenotypeProbabilities.BattleArmor = 0 },
			want:    personnel.PhenotypeNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := campaign.DefaultOptions()
			if tt.options != nil {
				tt.options(opts)
			}
			roller := mockdice.NewManualMockRoller()
			roller.SetRolls([]int{tt.draw})
			c := newCampaign(t, "CW", date(3050, 1, 1), roller, opts)
			p := personnel.NewPerson("p", c.ID(), c.FactionCode(), true)
			p.PrimaryRole = tt.role

			require.NoError(t, s.GeneratePhenotype(c, p, skills.ExperienceRegular))
			assert.Equal(t, tt.want, p.Phenotype)
			assert.Zero(t, roller.Remaining())
		})
	}
}

func TestPhenotypeForRole(t *testing.T) {
	ph, ok := generator.PhenotypeForRole(personnel.RoleNavalVehicleDriver)
	assert.True(t, ok)
	assert.Equal(t, personnel.PhenotypeVehicle, ph)

	_, ok = generator.PhenotypeForRole(personnel.RoleLAMPilot)
	assert.False(t, ok)
}
