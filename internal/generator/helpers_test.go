package generator_test

import (
	"testing"
	"time"

	"github.com/dither001/mekhq/internal/dice"
	"github.com/dither001/mekhq/internal/domain/campaign"
	"github.com/dither001/mekhq/internal/domain/skills"
	"github.com/stretchr/testify/require"
)

// fixedAgeTable always returns the same age
type fixedAgeTable int

func (f fixedAgeTable) Age(dice.Roller, skills.ExperienceLevel, bool) (int, error) {
	return int(f), nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newCampaign(t *testing.T, faction string, on time.Time, roller dice.Roller, opts *campaign.Options) *campaign.Campaign {
	t.Helper()
	c, err := campaign.New(&campaign.Config{
		ID:          "campaign-1",
		Name:        "Test Campaign",
		FactionCode: faction,
		Date:        on,
		Options:     opts,
		Roller:      roller,
	})
	require.NoError(t, err)
	return c
}
