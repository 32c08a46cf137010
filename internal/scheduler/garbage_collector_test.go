package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/pindrop/pindrop/internal/domain"
	"github.com/pindrop/pindrop/internal/index"
	"github.com/pindrop/pindrop/internal/logger"
)

func TestGarbageCollector_Collect(t *testing.T) {
	log := logger.New("error", false)
	memIndex := index.NewMemoryIndex()

	now := time.Now()
	records := []*domain.ShortcutData{
		{
			ID:        "active",
			Label:     "active shortcut",
			Category:  domain.CategoryLink,
			Disabled:  false,
			UpdatedAt: now,
		},
		{
			ID:        "recently-disabled",
			Label:     "recently disabled",
			Category:  domain.CategoryFile,
			Disabled:  true,
			UpdatedAt: now.Add(-10 * 24 * time.Hour), // Disabled 10 days ago
		},
		{
			ID:        "old-disabled",
			Label:     "old disabled",
			Category:  domain.CategoryFile,
			Disabled:  true,
			UpdatedAt: now.Add(-35 * 24 * time.Hour), // Disabled 35 days ago
		},
	}

	memIndex.UpdateShortcuts(records)

	// Create GC with 30 day threshold, no Redis store for this test
	gc := NewGarbageCollector(
		nil,
		memIndex,
		log,
		24*time.Hour,
		30*24*time.Hour,
	)

	if err := gc.Collect(context.Background()); err != nil {
		t.Fatalf("Collect failed: %v", err)
	}

	if _, ok := memIndex.GetShortcut("active"); !ok {
		t.Error("active shortcut must not be collected")
	}
	if _, ok := memIndex.GetShortcut("recently-disabled"); !ok {
		t.Error("recently disabled shortcut must survive until the threshold")
	}
	if _, ok := memIndex.GetShortcut("old-disabled"); ok {
		t.Error("shortcut disabled past the threshold should be collected")
	}
}

func TestGarbageCollector_CollectSkipsZeroTimestamp(t *testing.T) {
	log := logger.New("error", false)
	memIndex := index.NewMemoryIndex()

	memIndex.UpdateShortcuts([]*domain.ShortcutData{
		{ID: "no-timestamp", Disabled: true},
	})

	gc := NewGarbageCollector(nil, memIndex, log, 24*time.Hour, 30*24*time.Hour)
	if err := gc.Collect(context.Background()); err != nil {
		t.Fatalf("Collect failed: %v", err)
	}

	if _, ok := memIndex.GetShortcut("no-timestamp"); !ok {
		t.Error("record without UpdatedAt must never be collected")
	}
}

func TestGarbageCollector_DefaultThreshold(t *testing.T) {
	gc := NewGarbageCollector(nil, index.NewMemoryIndex(), logger.New("error", false), time.Hour, 0)
	if gc.threshold != DefaultGCThreshold {
		t.Errorf("zero threshold should fall back to default, got %v", gc.threshold)
	}
}
