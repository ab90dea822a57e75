// Package lock provides the distributed mutex guarding the check-then-act
// sequence of offer submissions.
package lock

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v8"
	"github.com/teamforge-app/teamforge-backend/internal/config"
	"go.uber.org/zap"
)

// RedsyncLocker implements usecase.OfferLocker on a Redis-backed redsync
// mutex. The wait is bounded by the configured tries and retry delay; running
// out of tries is a retryable condition, not a silent pass-through.
type RedsyncLocker struct {
	sync      *redsync.Redsync
	cfg       config.LockConfig
	keyPrefix string
	logger    *zap.Logger
}

// NewRedsyncLocker creates a locker on an existing Redis connection.
func NewRedsyncLocker(client *redis.Client, cfg config.LockConfig, logger *zap.Logger) *RedsyncLocker {
	pool := goredis.NewPool(client)
	return &RedsyncLocker{
		sync:      redsync.New(pool),
		cfg:       cfg,
		keyPrefix: "teamforge:lock:",
		logger:    logger,
	}
}

// Acquire takes the named mutex, waiting at most tries * retry_delay.
func (l *RedsyncLocker) Acquire(ctx context.Context, key string) (func(), error) {
	mutex := l.sync.NewMutex(
		l.keyPrefix+key,
		redsync.WithExpiry(l.cfg.Expiry),
		redsync.WithTries(l.cfg.Tries),
		redsync.WithRetryDelay(l.cfg.RetryDelay),
	)

	if err := mutex.LockContext(ctx); err != nil {
		return nil, fmt.Errorf("lock %q not acquired: %w", key, err)
	}

	release := func() {
		if _, err := mutex.UnlockContext(ctx); err != nil {
			l.logger.Error("Failed to release offer lock",
				zap.String("key", key),
				zap.Error(err))
		}
	}
	return release, nil
}
