package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ficlear/internal/platform/config"
)

func TestNewUnconfigured(t *testing.T) {
	client, err := New(config.RedisConfig{})
	require.NoError(t, err)
	assert.Nil(t, client)
}

func TestNewBadURL(t *testing.T) {
	_, err := New(config.RedisConfig{URL: "not-a-redis-url"})
	assert.Error(t, err)
}

func TestNewConnectsAndHealth(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := New(config.RedisConfig{URL: "redis://" + mr.Addr()})
	require.NoError(t, err)
	require.NotNil(t, client)
	defer client.Close()

	// No dial timeout configured, the ping deadline falls back.
	assert.Equal(t, defaultPingTimeout, client.pingTimeout)
	assert.NoError(t, client.Health(context.Background()))
}

func TestPingTimeoutFromConfig(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := New(config.RedisConfig{
		URL:         "redis://" + mr.Addr(),
		DialTimeout: 250 * time.Millisecond,
	})
	require.NoError(t, err)
	defer client.Close()

	assert.Equal(t, 250*time.Millisecond, client.pingTimeout)
	assert.NoError(t, client.Health(context.Background()))
}
