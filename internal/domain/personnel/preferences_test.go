package personnel_test

import (
	"testing"

	"github.com/dither001/mekhq/internal/domain/personnel"
	hqerr "github.com/dither001/mekhq/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillPreferences_DefaultZero(t *testing.T) {
	prefs := personnel.NewSkillPreferences()

	assert.Zero(t, prefs.OverallRecruitBonus())
	for _, role := range personnel.Roles() {
		assert.Zero(t, prefs.RecruitBonus(role))
	}
}

func TestSkillPreferences_Setters(t *testing.T) {
	prefs := personnel.NewSkillPreferences()
	prefs.SetOverallRecruitBonus(2)
	prefs.SetRecruitBonus(personnel.RoleMechWarrior, -1)

	assert.Equal(t, 2, prefs.OverallRecruitBonus())
	assert.Equal(t, -1, prefs.RecruitBonus(personnel.RoleMechWarrior))
	assert.Zero(t, prefs.RecruitBonus(personnel.RoleDoctor))

	var zero personnel.SkillPreferences
	zero.SetRecruitBonus(personnel.RoleMedic, 1)
	assert.Equal(t, 1, zero.RecruitBonus(personnel.RoleMedic))
}

func TestSkillPreferencesFromData(t *testing.T) {
	prefs, err := personnel.SkillPreferencesFromData(&personnel.SkillPreferencesData{
		OverallRecruitBonus: 1,
		RecruitBonuses: map[personnel.Role]int{
			personnel.RoleAeroPilot: 2,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, prefs.OverallRecruitBonus())
	assert.Equal(t, 2, prefs.RecruitBonus(personnel.RoleAeroPilot))

	data := prefs.Data()
	assert.Equal(t, 1, data.OverallRecruitBonus)
	assert.Equal(t, map[personnel.Role]int{personnel.RoleAeroPilot: 2}, data.RecruitBonuses)

	_, err = personnel.SkillPreferencesFromData(&personnel.SkillPreferencesData{
		RecruitBonuses: map[personnel.Role]int{"pirate-queen": 1},
	})
	assert.True(t, hqerr.IsInvalidArgument(err))

	empty, err := personnel.SkillPreferencesFromData(nil)
	require.NoError(t, err)
	assert.Zero(t, empty.OverallRecruitBonus())
}
