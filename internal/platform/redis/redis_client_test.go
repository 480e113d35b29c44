package redis

import (
	"context"
	"net"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisClient_Disabled(t *testing.T) {
	rdb, err := NewRedisClient(context.Background(), Config{})

	assert.ErrorIs(t, err, ErrDisabled)
	assert.Nil(t, rdb)
}

func TestNewRedisClient_Connects(t *testing.T) {
	mr := miniredis.RunT(t)
	host, port, err := net.SplitHostPort(mr.Addr())
	require.NoError(t, err)

	rdb, err := NewRedisClient(context.Background(), Config{Host: host, Port: port})

	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })
	require.NoError(t, rdb.Set(context.Background(), "k", "v", 0).Err())
	got, err := mr.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}

func TestNewRedisClient_WrongPassword(t *testing.T) {
	mr := miniredis.RunT(t)
	mr.RequireAuth("right")
	host, port, err := net.SplitHostPort(mr.Addr())
	require.NoError(t, err)

	rdb, err := NewRedisClient(context.Background(), Config{Host: host, Port: port, Password: "wrong"})

	assert.Error(t, err)
	assert.Nil(t, rdb)
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	host, port, err := net.SplitHostPort(mr.Addr())
	require.NoError(t, err)
	mr.Close()

	rdb, err := NewRedisClient(context.Background(), Config{Host: host, Port: port})

	assert.Error(t, err)
	assert.Nil(t, rdb)
}
