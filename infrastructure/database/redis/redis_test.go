package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/seller-calc-api/internal/config"
)

func TestNewConnection(t *testing.T) {
	mr := miniredis.RunT(t)

	conn, err := NewConnection(context.Background(), config.Redis{Addr: mr.Addr()})
	require.NoError(t, err)
	defer conn.Close()

	assert.NoError(t, conn.Ping(context.Background()))
}

func TestNewConnection_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	conn, err := NewConnection(context.Background(), config.Redis{Addr: addr})
	assert.Error(t, err)
	assert.Nil(t, conn)
}
