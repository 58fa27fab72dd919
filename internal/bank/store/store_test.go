package store

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ficlear/internal/bank/models"
	"ficlear/pkg/platform/sentinel"
)

func sampleBank(id, name string) *models.Bank {
	return &models.Bank{
		ID:   id,
		Name: name,
		ROI:  9.5,
		Criteria: models.Criteria{
			MinCibil:             650,
			MaxCibil:             900,
			MinSalary:            20000,
			MaxObligationPercent: 55,
			MaxLTV:               85,
		},
	}
}

// storeUnderTest runs the same contract against every Store implementation.
func storeUnderTest(t *testing.T, s Store) {
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, sampleBank("hdfc", "HDFC Bank")))
	require.NoError(t, s.Create(ctx, sampleBank("axis", "Axis Bank")))

	t.Run("create rejects duplicate id", func(t *testing.T) {
		err := s.Create(ctx, sampleBank("hdfc", "HDFC Bank"))
		assert.ErrorIs(t, err, sentinel.ErrConflict)
	})

	t.Run("get returns stored record", func(t *testing.T) {
		b, err := s.Get(ctx, "hdfc")
		require.NoError(t, err)
		assert.Equal(t, "HDFC Bank", b.Name)
		assert.Equal(t, 650, b.Criteria.MinCibil)
	})

	t.Run("get misses unknown id", func(t *testing.T) {
		_, err := s.Get(ctx, "nope")
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
	})

	t.Run("list is ordered by name", func(t *testing.T) {
		banks, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, banks, 2)
		assert.Equal(t, "Axis Bank", banks[0].Name)
		assert.Equal(t, "HDFC Bank", banks[1].Name)
	})

	t.Run("update replaces record", func(t *testing.T) {
		b := sampleBank("axis", "Axis Bank")
		b.ROI = 10.25
		require.NoError(t, s.Update(ctx, b))

		got, err := s.Get(ctx, "axis")
		require.NoError(t, err)
		assert.Equal(t, 10.25, got.ROI)
	})

	t.Run("update misses unknown id", func(t *testing.T) {
		err := s.Update(ctx, sampleBank("nope", "No Bank"))
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
	})

	t.Run("delete removes record", func(t *testing.T) {
		require.NoError(t, s.Delete(ctx, "axis"))
		_, err := s.Get(ctx, "axis")
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
		assert.ErrorIs(t, s.Delete(ctx, "axis"), sentinel.ErrNotFound)
	})
}

func TestInMemoryStore(t *testing.T) {
	storeUnderTest(t, NewInMemory())
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	storeUnderTest(t, NewRedis(client))
}

func TestSeedDefaultBanks(t *testing.T) {
	s := NewInMemory()
	seeded := SeedDefaultBanks(context.Background(), s)
	require.Len(t, seeded, 5)

	banks, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, banks, 5)

	sbi, err := s.Get(context.Background(), "sbi")
	require.NoError(t, err)
	assert.NoError(t, sbi.Validate())
}
