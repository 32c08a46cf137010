package scheduler

import (
	"context"
	"time"

	"github.com/pindrop/pindrop/internal/index"
	"github.com/pindrop/pindrop/internal/logger"
	redisstore "github.com/pindrop/pindrop/internal/store/redis"
)

const (
	// DefaultGCThreshold is the duration after which disabled shortcuts are deleted
	DefaultGCThreshold = 30 * 24 * time.Hour // 30 days
)

// GarbageCollector handles cleanup of old disabled shortcuts
type GarbageCollector struct {
	store     *redisstore.Store
	index     *index.MemoryIndex
	logger    logger.Logger
	interval  time.Duration
	threshold time.Duration
	stopCh    chan struct{}
}

// NewGarbageCollector creates a new garbage collector
func NewGarbageCollector(
	store *redisstore.Store,
	idx *index.MemoryIndex,
	log logger.Logger,
	interval time.Duration,
	threshold time.Duration,
) *GarbageCollector {
	if threshold == 0 {
		threshold = DefaultGCThreshold
	}

	return &GarbageCollector{
		store:     store,
		index:     idx,
		logger:    log,
		interval:  interval,
		threshold: threshold,
		stopCh:    make(chan struct{}),
	}
}

// Start begins the periodic garbage collection process
func (gc *GarbageCollector) Start(ctx context.Context) error {
	// Run immediately on start
	if err := gc.Collect(ctx); err != nil {
		gc.logger.Warn("initial garbage collection failed",
			logger.Error(err))
	}

	ticker := time.NewTicker(gc.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := gc.Collect(ctx); err != nil {
					gc.logger.Error("garbage collection failed",
						logger.Error(err))
				}
			case <-gc.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the garbage collector
func (gc *GarbageCollector) Stop() {
	close(gc.stopCh)
}

// Collect removes shortcuts that have been disabled for longer than the threshold
func (gc *GarbageCollector) Collect(ctx context.Context) error {
	gc.logger.Info("running garbage collection for disabled shortcuts")

	now := time.Now()
	records := gc.index.GetAllShortcuts()
	deletedCount := 0

	for _, rec := range records {
		// Only collect disabled shortcuts
		if !rec.Disabled {
			continue
		}

		if rec.UpdatedAt.IsZero() {
			continue
		}

		disabledDuration := now.Sub(rec.UpdatedAt)
		if disabledDuration < gc.threshold {
			continue
		}

		// Delete from memory index
		gc.index.DeleteShortcut(rec.ID)

		// Delete from Redis store (best effort)
		if gc.store != nil {
			if err := gc.store.DeleteShortcut(ctx, rec.ID); err != nil {
				gc.logger.Warn("failed to delete shortcut from redis",
					logger.String("shortcut_id", rec.ID),
					logger.Error(err))
			}
		}

		gc.logger.Info("garbage collected disabled shortcut",
			logger.String("shortcut_id", rec.ID),
			logger.String("label", rec.Label),
			logger.String("disabled_for", disabledDuration.String()))

		deletedCount++
	}

	if deletedCount > 0 {
		gc.logger.Info("garbage collection completed",
			logger.Int("deleted", deletedCount))
	} else {
		gc.logger.Debug("no shortcuts to garbage collect")
	}

	return nil
}
