package repository

import (
	"context"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
	"github.com/vfg2006/seller-calc-api/internal/domain"
	"github.com/vmihailenco/msgpack/v5"
)

type redisSnapshotRepository struct {
	client goredis.Cmdable
	key    string
}

// NewRedisSnapshotRepository compartilha o slot entre réplicas. A chave não expira:
// o snapshot antigo continua disponível para ser servido quando a busca falha.
func NewRedisSnapshotRepository(client goredis.Cmdable, key string) ExchangeRateSnapshotRepository {
	return &redisSnapshotRepository{
		client: client,
		key:    key,
	}
}

func (r *redisSnapshotRepository) Load(ctx context.Context) (*domain.ExchangeRateSnapshot, error) {
	raw, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "loading exchange rate snapshot")
	}

	var snapshot domain.ExchangeRateSnapshot
	if err := msgpack.Unmarshal(raw, &snapshot); err != nil {
		return nil, errors.Wrap(err, "decoding exchange rate snapshot")
	}

	return &snapshot, nil
}

func (r *redisSnapshotRepository) Save(ctx context.Context, snapshot *domain.ExchangeRateSnapshot) error {
	if snapshot == nil {
		return r.Clear(ctx)
	}

	raw, err := msgpack.Marshal(snapshot)
	if err != nil {
		return errors.Wrap(err, "encoding exchange rate snapshot")
	}

	if err := r.client.Set(ctx, r.key, raw, 0).Err(); err != nil {
		return errors.Wrap(err, "saving exchange rate snapshot")
	}
	return nil
}

func (r *redisSnapshotRepository) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return errors.Wrap(err, "clearing exchange rate snapshot")
	}
	return nil
}
