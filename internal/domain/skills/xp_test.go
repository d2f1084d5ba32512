package skills

import (
	"testing"

	mockdice "github.com/dither001/mekhq/internal/dice/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXPForDraw(t *testing.T) {
	tests := []struct {
		draw int
		want int
	}{
		{draw: 0, want: 0},
		{draw: 499, want: 0},
		{draw: 500, want: 1},
		{draw: 4499, want: 4},
		{draw: 4500, want: 5},
		{draw: 7724, want: 11},
		{draw: 8824, want: 17},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, xpForDraw(tt.draw), "draw %d", tt.draw)
	}
}

func TestRollRandomXP(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{2600})

	xp, err := RollRandomXP(roller)

	require.NoError(t, err)
	assert.Equal(t, 3, xp)
	assert.Equal(t, 17, MaxRandomXP)
}
