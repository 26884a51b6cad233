//go:build integration

package cache_test

import (
	"context"
	"fmt"
	"testing"

	"rental/infras/otel/mocks"
	"rental/shared/cache"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startRedis(t *testing.T) *redis.Client {
	t.Helper()

	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = container.Terminate(ctx)
	})

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: endpoint})
	t.Cleanup(func() {
		_ = client.Close()
	})

	return client
}

type calendar struct {
	ApartmentID   string   `json:"apartment_id"`
	DisabledDates []string `json:"disabled_dates"`
}

func TestRedisCache(t *testing.T) {
	ctx := context.Background()
	client := startRedis(t)
	redisCache := cache.NewRedisCache(client, mocks.NewOtel())

	t.Run("miss", func(t *testing.T) {
		var value calendar
		assert.ErrorIs(t, redisCache.Get(ctx, "reservation:availability:none", &value), cache.Nil)
	})

	t.Run("json round trip", func(t *testing.T) {
		stored := calendar{ApartmentID: "a-1", DisabledDates: []string{"2030-03-01", "2030-03-02"}}
		require.NoError(t, redisCache.Save(ctx, "reservation:availability:a-1", stored, 60))

		var loaded calendar
		require.NoError(t, redisCache.Get(ctx, "reservation:availability:a-1", &loaded))
		assert.Equal(t, stored, loaded)
	})

	t.Run("plain string", func(t *testing.T) {
		require.NoError(t, redisCache.Save(ctx, "limiter:key", "7", 60))

		var loaded string
		require.NoError(t, redisCache.Get(ctx, "limiter:key", &loaded))
		assert.Equal(t, "7", loaded)
	})

	t.Run("clear removes every key under the prefix", func(t *testing.T) {
		for i := range 250 {
			require.NoError(t, redisCache.Save(ctx, fmt.Sprintf("reservation:gets:%d", i), i, 60))
		}

		require.NoError(t, redisCache.Clear(ctx, "reservation:gets:*"))

		keys, err := client.Keys(ctx, "reservation:gets:*").Result()
		require.NoError(t, err)
		assert.Empty(t, keys)

		var untouched calendar
		assert.NoError(t, redisCache.Get(ctx, "reservation:availability:a-1", &untouched), "other prefixes survive")
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, redisCache.Delete(ctx, "limiter:key"))

		var loaded string
		assert.ErrorIs(t, redisCache.Get(ctx, "limiter:key", &loaded), cache.Nil)
	})
}
