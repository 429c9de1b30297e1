package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/quickgigs/wallet-service/internal/logger"
	"github.com/quickgigs/wallet-service/internal/models"
)

// WalletCacheRepository caches wallet balance snapshots in Redis. The cache
// is read-through for wallet lookups and invalidated after every mutation;
// the Postgres row stays the source of truth.
type WalletCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewWalletCacheRepository creates a wallet cache with the given TTL.
func NewWalletCacheRepository(client *redis.Client, expiration time.Duration) *WalletCacheRepository {
	return &WalletCacheRepository{client: client, exp: expiration}
}

func walletKey(userID uuid.UUID) string {
	return fmt.Sprintf("wallet:%s", userID)
}

// Get fetches a cached wallet snapshot. Returns ErrNotFound on cache miss.
func (r *WalletCacheRepository) Get(ctx context.Context, userID uuid.UUID) (*models.Wallet, error) {
	key := walletKey(userID)

	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		logger.Log.Infow("cache get",
			"key", key,
			"error", err,
		)
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var wallet models.Wallet
	if err := json.Unmarshal(val, &wallet); err != nil {
		logger.Log.Errorw("failed to decode cached wallet", "key", key, "error", err)
		return nil, err
	}

	logger.Log.Infow("cache get",
		"key", key,
		"result", wallet.WalletID,
		"error", nil,
	)

	return &wallet, nil
}

// Set stores a wallet snapshot with expiration.
func (r *WalletCacheRepository) Set(ctx context.Context, wallet *models.Wallet) error {
	key := walletKey(wallet.UserID)

	data, err := json.Marshal(wallet)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow("cache set",
		"key", key,
		"error", err,
	)

	return err
}

// Invalidate drops the cached snapshot for a user.
func (r *WalletCacheRepository) Invalidate(ctx context.Context, userID uuid.UUID) error {
	key := walletKey(userID)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow("cache del",
		"key", key,
		"error", err,
	)

	return err
}
