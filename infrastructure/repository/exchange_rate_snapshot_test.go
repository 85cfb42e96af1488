package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/seller-calc-api/internal/domain"
)

func sampleSnapshot() *domain.ExchangeRateSnapshot {
	return &domain.ExchangeRateSnapshot{
		ID:                "snap01",
		BaseCurrency:      "CNY",
		Rates:             map[string]float64{"USD": 0.1391, "EUR": 0.1287},
		Names:             map[string]string{"USD": "美元"},
		FetchedAt:         time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
		ProviderUpdatedAt: time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC),
	}
}

func TestMemorySnapshotRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemorySnapshotRepository()

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded)

	snapshot := sampleSnapshot()
	require.NoError(t, repo.Save(ctx, snapshot))

	loaded, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Same(t, snapshot, loaded)

	require.NoError(t, repo.Clear(ctx))
	loaded, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func newRedisRepository(t *testing.T) (ExchangeRateSnapshotRepository, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisSnapshotRepository(client, "test:rates"), mr
}

func TestRedisSnapshotRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo, mr := newRedisRepository(t)

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded)

	snapshot := sampleSnapshot()
	require.NoError(t, repo.Save(ctx, snapshot))
	assert.True(t, mr.Exists("test:rates"))
	assert.Equal(t, time.Duration(0), mr.TTL("test:rates"))

	loaded, err = repo.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, snapshot.ID, loaded.ID)
	assert.Equal(t, snapshot.Rates, loaded.Rates)
	assert.Equal(t, snapshot.Names, loaded.Names)
	assert.True(t, snapshot.FetchedAt.Equal(loaded.FetchedAt))
	assert.True(t, snapshot.ProviderUpdatedAt.Equal(loaded.ProviderUpdatedAt))

	require.NoError(t, repo.Clear(ctx))
	assert.False(t, mr.Exists("test:rates"))
}

func TestRedisSnapshotRepository_CorruptedPayload(t *testing.T) {
	repo, mr := newRedisRepository(t)
	require.NoError(t, mr.Set("test:rates", "not msgpack"))

	_, err := repo.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding exchange rate snapshot")
}

func TestRedisSnapshotRepository_Unavailable(t *testing.T) {
	repo, mr := newRedisRepository(t)
	mr.Close()

	_, err := repo.Load(context.Background())
	assert.Error(t, err)
	assert.Error(t, repo.Save(context.Background(), sampleSnapshot()))
}
