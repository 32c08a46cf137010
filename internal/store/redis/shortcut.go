package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/pindrop/pindrop/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	// DefaultShortcutTTL is the default TTL for shortcut records. Records are
	// re-saved on every use, so active shortcuts never expire.
	DefaultShortcutTTL = 90 * 24 * time.Hour
)

// Store handles Redis operations for shortcut records and the clipboard ledger
type Store struct {
	client *redis.Client
}

// NewStore creates a new Redis store
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}

// SaveShortcut stores a shortcut record in Redis
func (s *Store) SaveShortcut(ctx context.Context, rec *domain.ShortcutData) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal shortcut: %w", err)
	}

	key := ShortcutKey(rec.ID)

	// Store record data
	if err := s.client.Set(ctx, key, data, DefaultShortcutTTL).Err(); err != nil {
		return fmt.Errorf("failed to save shortcut: %w", err)
	}

	// Add to set of all shortcuts
	if err := s.client.SAdd(ctx, AllShortcutsKey(), rec.ID).Err(); err != nil {
		return fmt.Errorf("failed to add shortcut to set: %w", err)
	}

	return nil
}

// GetShortcut retrieves a shortcut record from Redis by ID
func (s *Store) GetShortcut(ctx context.Context, id string) (*domain.ShortcutData, error) {
	key := ShortcutKey(id)
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("shortcut not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get shortcut: %w", err)
	}

	var rec domain.ShortcutData
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal shortcut: %w", err)
	}

	return &rec, nil
}

// GetAllShortcuts retrieves all shortcut records from Redis
func (s *Store) GetAllShortcuts(ctx context.Context) ([]*domain.ShortcutData, error) {
	ids, err := s.client.SMembers(ctx, AllShortcutsKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get shortcut IDs: %w", err)
	}

	if len(ids) == 0 {
		return []*domain.ShortcutData{}, nil
	}

	records := make([]*domain.ShortcutData, 0, len(ids))
	for _, id := range ids {
		rec, err := s.GetShortcut(ctx, id)
		if err != nil {
			// Skip records that couldn't be retrieved
			continue
		}
		records = append(records, rec)
	}

	return records, nil
}

// DeleteShortcut removes a shortcut record from Redis
func (s *Store) DeleteShortcut(ctx context.Context, id string) error {
	key := ShortcutKey(id)

	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete shortcut: %w", err)
	}

	if err := s.client.SRem(ctx, AllShortcutsKey(), id).Err(); err != nil {
		return fmt.Errorf("failed to remove shortcut from set: %w", err)
	}

	return nil
}

// IncrementUsage increments the launch counter for a shortcut
func (s *Store) IncrementUsage(ctx context.Context, id string) error {
	rec, err := s.GetShortcut(ctx, id)
	if err != nil {
		return err
	}

	rec.Counter++
	rec.UpdatedAt = time.Now()

	return s.SaveShortcut(ctx, rec)
}

// SaveShortcutsMany stores multiple shortcut records in Redis (bulk operation)
func (s *Store) SaveShortcutsMany(ctx context.Context, records []*domain.ShortcutData) error {
	pipe := s.client.Pipeline()

	for _, rec := range records {
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("failed to marshal shortcut %s: %w", rec.ID, err)
		}

		key := ShortcutKey(rec.ID)
		pipe.Set(ctx, key, data, DefaultShortcutTTL)
		pipe.SAdd(ctx, AllShortcutsKey(), rec.ID)
	}

	_, err := pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save shortcuts: %w", err)
	}

	return nil
}
