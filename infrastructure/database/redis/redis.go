package redis

import (
	"context"

	goredis "github.com/redis/go-redis/v9"
	"github.com/vfg2006/seller-calc-api/internal/config"
)

type Connection struct {
	*goredis.Client
}

// NewConnection abre o cliente e confirma a conexão com um PING
func NewConnection(ctx context.Context, cfg config.Redis) (*Connection, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return &Connection{Client: client}, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx).Err()
}
