//go:build integration

package store_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/mikiasgoitom/BazaarHub/internal/domain/entity"
	"github.com/mikiasgoitom/BazaarHub/internal/infrastructure/store"
)

var redisAddr string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "6379")
	if err != nil {
		panic(err)
	}
	redisAddr = fmt.Sprintf("%s:%s", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func TestProductCacheStore(t *testing.T) {
	ctx := context.Background()
	rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
	t.Cleanup(func() { _ = rdb.Close() })
	cache := store.NewProductCacheStore(rdb, time.Minute)

	_, ok, err := cache.GetProduct(ctx, "p-1")
	require.NoError(t, err)
	assert.False(t, ok)

	p := &entity.Product{ID: "p-1", Name: "Lamp", Price: 19.99, Stock: 3}
	require.NoError(t, cache.SetProduct(ctx, p))

	got, ok, err := cache.GetProduct(ctx, "p-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Lamp", got.Name)
	assert.Equal(t, 3, got.Stock)

	require.NoError(t, cache.InvalidateProduct(ctx, "p-1"))
	_, ok, err = cache.GetProduct(ctx, "p-1")
	require.NoError(t, err)
	assert.False(t, ok)
}
