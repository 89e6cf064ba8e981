package cache

import (
	"testing"

	"dental-clinic-booking/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := config.RedisConfig{Host: mr.Host(), Port: mr.Port()}

	client, err := NewRedisClient(cfg)
	require.NoError(t, err)
	defer client.Close()
	assert.Equal(t, mr.Addr(), client.Options().Addr)

	mr.Close()
	_, err = NewRedisClient(cfg)
	assert.Error(t, err)
}
