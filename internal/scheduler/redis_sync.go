package scheduler

import (
	"context"

	"github.com/pindrop/pindrop/internal/index"
	"github.com/pindrop/pindrop/internal/logger"
	redisstore "github.com/pindrop/pindrop/internal/store/redis"
)

// RedisSyncer syncs shortcut records from Redis to the memory index on startup
type RedisSyncer struct {
	store  *redisstore.Store
	index  *index.MemoryIndex
	logger logger.Logger
}

// NewRedisSyncer creates a new Redis syncer
func NewRedisSyncer(
	store *redisstore.Store,
	idx *index.MemoryIndex,
	log logger.Logger,
) *RedisSyncer {
	return &RedisSyncer{
		store:  store,
		index:  idx,
		logger: log,
	}
}

// Sync loads shortcut records from Redis and updates the memory index
func (rs *RedisSyncer) Sync(ctx context.Context) error {
	rs.logger.Info("syncing shortcuts from redis to memory")

	records, err := rs.store.GetAllShortcuts(ctx)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		rs.logger.Info("no shortcuts found in redis")
		return nil
	}

	rs.index.UpdateShortcuts(records)

	rs.logger.Info("synced shortcuts from redis",
		logger.Int("count", len(records)))

	return nil
}
