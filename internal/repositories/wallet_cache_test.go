package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/quickgigs/wallet-service/internal/models"
)

func TestWalletCacheRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	ctx := context.Background()

	// Start Redis container
	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	require.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	require.NoError(t, rdb.Ping(ctx).Err())

	repo := NewWalletCacheRepository(rdb, 2*time.Second)

	t.Run("Set and Get wallet snapshot", func(t *testing.T) {
		wallet := models.NewWallet(uuid.New(), "USD")
		require.NoError(t, wallet.ConfirmDeposit(mustDecimal("100.00")))

		assert.NoError(t, repo.Set(ctx, wallet))

		got, err := repo.Get(ctx, wallet.UserID)
		require.NoError(t, err)
		assert.Equal(t, wallet.WalletID, got.WalletID)
		assert.True(t, got.Balance.Equal(mustDecimal("100.00")))
	})

	t.Run("Miss returns ErrNotFound", func(t *testing.T) {
		_, err := repo.Get(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Invalidate drops the snapshot", func(t *testing.T) {
		wallet := models.NewWallet(uuid.New(), "USD")
		require.NoError(t, repo.Set(ctx, wallet))

		assert.NoError(t, repo.Invalidate(ctx, wallet.UserID))

		_, err := repo.Get(ctx, wallet.UserID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Snapshot expires", func(t *testing.T) {
		wallet := models.NewWallet(uuid.New(), "USD")
		require.NoError(t, repo.Set(ctx, wallet))

		time.Sleep(3 * time.Second)

		_, err := repo.Get(ctx, wallet.UserID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
