package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/esophai/internal/logger"
	"github.com/sbilibin2017/esophai/internal/models"
)

// ErrCacheMiss is returned when the requested key is not cached.
var ErrCacheMiss = errors.New("cache miss")

const adminStatsKey = "esophai:admin_stats"

// AdminStatsCacheRepository caches the admin dashboard counters in Redis
type AdminStatsCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached stats
}

// NewAdminStatsCacheRepository creates a new repository instance with the given TTL
func NewAdminStatsCacheRepository(client *redis.Client, expiration time.Duration) *AdminStatsCacheRepository {
	return &AdminStatsCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get returns the cached counters or ErrCacheMiss.
func (r *AdminStatsCacheRepository) Get(ctx context.Context) (*models.AdminStats, error) {
	val, err := r.client.Get(ctx, adminStatsKey).Bytes()
	if err != nil {
		logger.Log.Infow(
			"key", adminStatsKey,
			"result", nil,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var stats models.AdminStats
	if err := json.Unmarshal(val, &stats); err != nil {
		logger.Log.Infow(
			"key", adminStatsKey,
			"value", string(val),
			"result", nil,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", adminStatsKey,
		"result", stats,
		"error", nil,
	)

	return &stats, nil
}

// Set stores the counters with the configured expiration
func (r *AdminStatsCacheRepository) Set(ctx context.Context, stats models.AdminStats) error {
	payload, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, adminStatsKey, payload, r.exp).Err()

	logger.Log.Infow(
		"key", adminStatsKey,
		"stats", stats,
		"result", "ok",
		"error", err,
	)

	return err
}
