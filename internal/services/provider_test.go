package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dither001/mekhq/internal/domain/personnel"
	"github.com/dither001/mekhq/internal/services"
	personnelService "github.com/dither001/mekhq/internal/services/personnel"
	"github.com/dither001/mekhq/internal/testutils"
)

func TestNewProvider_DefaultsToInMemory(t *testing.T) {
	p := services.NewProvider(nil)
	require.NotNil(t, p.PersonnelService)

	c := testutils.CreateTestCampaign(t, "campaign-1", "DC", time.Date(3039, 1, 1, 0, 0, 0, 0, time.UTC), nil)
	ctx := context.Background()

	recruit, err := p.PersonnelService.Recruit(ctx, &personnelService.RecruitInput{
		Campaign:    c,
		PrimaryRole: personnel.RoleInfantry,
	})
	require.NoError(t, err)

	got, err := p.PersonnelService.GetPerson(ctx, recruit.ID)
	require.NoError(t, err)
	assert.Equal(t, recruit.Name, got.Name)
	assert.Equal(t, "DC", got.FactionCode)
}
