package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// The clipboard ledger is a sorted set of URLs scored by surface time.
// Entries older than the cooldown window are pruned at read time rather than
// by a background sweep, so the ledger is self-cleaning under normal use.

// SeenURL reports whether url was surfaced within the cooldown window.
// Expired entries are pruned before the membership check.
func (s *Store) SeenURL(ctx context.Context, url string, window time.Duration) (bool, error) {
	key := ClipboardLedgerKey()
	cutoff := time.Now().Add(-window).Unix()

	// Read-time pruning: drop everything older than the window.
	if err := s.client.ZRemRangeByScore(ctx, key, "-inf", strconv.FormatInt(cutoff, 10)).Err(); err != nil {
		return false, fmt.Errorf("failed to prune clipboard ledger: %w", err)
	}

	_, err := s.client.ZScore(ctx, key, url).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check clipboard ledger: %w", err)
	}
	return true, nil
}

// RecordURL appends a ledger entry for url stamped now. Entries are never
// updated; they simply expire out of the window.
func (s *Store) RecordURL(ctx context.Context, url string) error {
	key := ClipboardLedgerKey()
	entry := redis.Z{
		Score:  float64(time.Now().Unix()),
		Member: url,
	}
	if err := s.client.ZAdd(ctx, key, entry).Err(); err != nil {
		return fmt.Errorf("failed to record clipboard ledger entry: %w", err)
	}
	return nil
}
