package campaign_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dither001/mekhq/internal/dice"
	"github.com/dither001/mekhq/internal/domain/campaign"
	"github.com/dither001/mekhq/internal/domain/personnel"
	hqerr "github.com/dither001/mekhq/internal/errors"
	"github.com/dither001/mekhq/internal/uuid/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNew_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	ids := mocks.NewMockGenerator(ctrl)
	ids.EXPECT().New().Return("camp-1")

	c, err := campaign.New(&campaign.Config{
		Name:          "Gray Death Legion",
		FactionCode:   "merc",
		Date:          time.Date(3025, time.January, 1, 17, 30, 0, 0, time.Local),
		UUIDGenerator: ids,
	})

	require.NoError(t, err)
	assert.Equal(t, "camp-1", c.ID())
	assert.True(t, c.IDGenerated())
	assert.Equal(t, "Gray Death Legion", c.Name())
	assert.Equal(t, "MERC", c.FactionCode())
	assert.False(t, c.IsClanFaction())
	assert.Equal(t, time.Date(3025, time.January, 1, 0, 0, 0, 0, time.UTC), c.CurrentDate())
	assert.Equal(t, campaign.DefaultOptions(), c.Options())
	assert.NotNil(t, c.SkillPreferences())
	assert.NotNil(t, c.Roller())
}

func TestNew_Validation(t *testing.T) {
	date := time.Date(3050, time.March, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		cfg  *campaign.Config
		code hqerr.Code
	}{
		{name: "nil config", cfg: nil, code: hqerr.CodeInvalidArgument},
		{name: "missing faction", cfg: &campaign.Config{Date: date}, code: hqerr.CodeInvalidArgument},
		{name: "unknown faction", cfg: &campaign.Config{FactionCode: "XYZ", Date: date}, code: hqerr.CodeInvalidArgument},
		{name: "missing date", cfg: &campaign.Config{FactionCode: "CJF"}, code: hqerr.CodeInvalidArgument},
		{
			name: "probability out of range",
			cfg: &campaign.Config{
				FactionCode: "CJF",
				Date:        date,
				Options: &campaign.Options{
					PhenotypeProbabilities: campaign.PhenotypeProbabilities{BattleArmor: 101},
				},
			},
			code: hqerr.CodeValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := campaign.New(tt.cfg)
			require.Error(t, err)
			assert.Equal(t, tt.code, hqerr.GetCode(err))
		})
	}
}

func TestFactions(t *testing.T) {
	assert.True(t, campaign.IsClan("CJF"))
	assert.True(t, campaign.IsClan("cw"))
	assert.False(t, campaign.IsClan("FS"))
	assert.False(t, campaign.IsClan("nobody"))

	f, err := campaign.LookupFaction("moc")
	require.NoError(t, err)
	assert.True(t, f.Periphery)

	_, err = campaign.LookupFaction("nobody")
	assert.True(t, hqerr.IsNotFound(err))

	codes := campaign.FactionCodes()
	assert.Contains(t, codes, "MERC")
	assert.Contains(t, codes, "CGB")
}

const campaignYAML = `
id: falcon-guard
name: Falcon Guards
faction: CJF
date: 3050-06-15
options:
  alternate_random_xp: true
  phenotype_probabilities:
    battle_armor: 50
skill_preferences:
  overall_recruit_bonus: 1
  recruit_bonuses:
    mechwarrior: 2
`

func TestParse(t *testing.T) {
	c, err := campaign.Parse([]byte(campaignYAML), dice.NewSeededRoller(1))

	require.NoError(t, err)
	assert.Equal(t, "falcon-guard", c.ID())
	assert.False(t, c.IDGenerated())
	assert.True(t, c.IsClanFaction())
	assert.Equal(t, time.Date(3050, time.June, 15, 0, 0, 0, 0, time.UTC), c.CurrentDate())
	assert.True(t, c.Options().AlternateRandomXP)
	assert.Equal(t, 50, c.Options().PhenotypeProbabilities.BattleArmor)
	// unspecified probabilities keep their defaults
	assert.Equal(t, 95, c.Options().PhenotypeProbabilities.MechWarrior)
	assert.Equal(t, 1, c.SkillPreferences().OverallRecruitBonus())
	assert.Equal(t, 2, c.SkillPreferences().RecruitBonus(personnel.RoleMechWarrior))
}

func TestParse_WithoutIDIsNotStable(t *testing.T) {
	doc := []byte("name: Eridani Light Horse\nfaction: MERC\ndate: 3025-01-01\n")

	first, err := campaign.Parse(doc, nil)
	require.NoError(t, err)
	second, err := campaign.Parse(doc, nil)
	require.NoError(t, err)

	assert.True(t, first.IDGenerated())
	assert.True(t, second.IDGenerated())
	assert.NotEqual(t, first.ID(), second.ID())
}

func TestParse_Errors(t *testing.T) {
	_, err := campaign.Parse([]byte("faction: CJF\ndate: not-a-date\n"), nil)
	assert.True(t, hqerr.IsInvalidArgument(err))

	_, err = campaign.Parse([]byte("faction: [\n"), nil)
	assert.True(t, hqerr.IsInvalidArgument(err))

	_, err = campaign.Parse([]byte("faction: CJF\ndate: 3050-01-01\nskill_preferences:\n  recruit_bonuses:\n    pilot-of-doom: 1\n"), nil)
	assert.True(t, hqerr.IsInvalidArgument(err))
}

func TestLoadAndMarshal_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "campaign.yaml")
	require.NoError(t, os.WriteFile(path, []byte(campaignYAML), 0o600))

	c, err := campaign.Load(path, dice.NewSeededRoller(1))
	require.NoError(t, err)

	out, err := campaign.Marshal(c)
	require.NoError(t, err)

	again, err := campaign.Parse(out, dice.NewSeededRoller(1))
	require.NoError(t, err)
	assert.Equal(t, c.ID(), again.ID())
	assert.Equal(t, c.CurrentDate(), again.CurrentDate())
	assert.Equal(t, c.Options(), again.Options())
	assert.Equal(t, c.SkillPreferences().Data(), again.SkillPreferences().Data())

	_, err = campaign.Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
}
