//go:build integration
// +build integration

package personnel_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dither001/mekhq/internal/domain/personnel"
	hqerr "github.com/dither001/mekhq/internal/errors"
	repo "github.com/dither001/mekhq/internal/repositories/personnel"
	"github.com/dither001/mekhq/internal/testutils"
)

func TestRedisRepository_Integration(t *testing.T) {
	client := testutils.StartRedisContainer(t)
	r := repo.NewRedis(client)
	ctx := context.Background()

	t.Run("create and retrieve person", func(t *testing.T) {
		p := testutils.CreateTestPerson("person-1", "campaign-1", "Jeremiah Rose")

		require.NoError(t, r.Create(ctx, p))

		got, err := r.Get(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, p.Name, got.Name)
		assert.Equal(t, p.PrimaryRole, got.PrimaryRole)
		assert.Equal(t, p.ExperienceLevel, got.ExperienceLevel)
		assert.True(t, p.Birthday.Equal(got.Birthday))
		assert.False(t, got.CreatedAt.IsZero())
	})

	t.Run("create duplicate fails", func(t *testing.T) {
		p := testutils.CreateTestPerson("person-2", "campaign-1", "Lori Kalmar")
		require.NoError(t, r.Create(ctx, p))

		err := r.Create(ctx, p)
		assert.True(t, hqerr.IsAlreadyExists(err))
	})

	t.Run("list by campaign", func(t *testing.T) {
		clanner := testutils.CreateTestClanner("person-3", "campaign-2", "Aidan Pryde",
			personnel.RoleMechWarrior, personnel.PhenotypeMechWarrior)
		require.NoError(t, r.Create(ctx, clanner))

		people, err := r.ListByCampaign(ctx, "campaign-1")
		require.NoError(t, err)
		assert.Len(t, people, 2)

		people, err = r.ListByCampaign(ctx, "campaign-2")
		require.NoError(t, err)
		require.Len(t, people, 1)
		assert.Equal(t, personnel.PhenotypeMechWarrior, people[0].Phenotype)
		assert.True(t, people[0].IsTrueborn())
	})

	t.Run("batch with a taken ID stores nothing", func(t *testing.T) {
		fresh := testutils.CreateTestPerson("person-4", "campaign-3", "Dana Kerensky")
		taken := testutils.CreateTestPerson("person-2", "campaign-3", "Lori Kalmar")

		err := r.CreateBatch(ctx, []*personnel.Person{fresh, taken})
		assert.True(t, hqerr.IsAlreadyExists(err))

		_, err = r.Get(ctx, "person-4")
		assert.True(t, hqerr.IsNotFound(err))
		people, err := r.ListByCampaign(ctx, "campaign-3")
		require.NoError(t, err)
		assert.Empty(t, people)
	})

	t.Run("update and delete", func(t *testing.T) {
		p, err := r.Get(ctx, "person-1")
		require.NoError(t, err)

		p.XP = 9
		require.NoError(t, r.Update(ctx, p))

		got, err := r.Get(ctx, "person-1")
		require.NoError(t, err)
		assert.Equal(t, 9, got.XP)

		require.NoError(t, r.Delete(ctx, "person-1"))
		_, err = r.Get(ctx, "person-1")
		assert.True(t, hqerr.IsNotFound(err))

		people, err := r.ListByCampaign(ctx, "campaign-1")
		require.NoError(t, err)
		assert.Len(t, people, 1)
	})
}
