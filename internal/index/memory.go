package index

import (
	"sync"
	"time"

	"github.com/pindrop/pindrop/internal/domain"
)

// MemoryIndex provides in-memory storage and lookup for shortcut records.
// It acts as a fallback when Redis is unavailable.
type MemoryIndex struct {
	mu        sync.RWMutex
	shortcuts map[string]*domain.ShortcutData // ID -> record
	lastSync  time.Time                       // Timestamp of last full sync
}

// NewMemoryIndex creates a new memory index
func NewMemoryIndex() *MemoryIndex {
	return &MemoryIndex{
		shortcuts: make(map[string]*domain.ShortcutData),
	}
}

// UpdateShortcuts replaces all records in the index
func (idx *MemoryIndex) UpdateShortcuts(records []*domain.ShortcutData) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	// Clear and rebuild
	idx.shortcuts = make(map[string]*domain.ShortcutData, len(records))
	for _, rec := range records {
		idx.shortcuts[rec.ID] = rec
	}
	idx.lastSync = time.Now()
}

// GetShortcut retrieves a record by ID
func (idx *MemoryIndex) GetShortcut(id string) (*domain.ShortcutData, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	rec, ok := idx.shortcuts[id]
	return rec, ok
}

// GetAllShortcuts returns all records
func (idx *MemoryIndex) GetAllShortcuts() []*domain.ShortcutData {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	records := make([]*domain.ShortcutData, 0, len(idx.shortcuts))
	for _, rec := range idx.shortcuts {
		records = append(records, rec)
	}
	return records
}

// AddShortcut adds or updates a single record
func (idx *MemoryIndex) AddShortcut(rec *domain.ShortcutData) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.shortcuts[rec.ID] = rec
}

// DeleteShortcut removes a record from the index
func (idx *MemoryIndex) DeleteShortcut(id string) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	delete(idx.shortcuts, id)
}

// Count returns the number of records in the index
func (idx *MemoryIndex) Count() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return len(idx.shortcuts)
}

// IncrementCounter increments the launch counter for a record
func (idx *MemoryIndex) IncrementCounter(id string) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	if rec, ok := idx.shortcuts[id]; ok {
		rec.Counter++
	}
}

// GetLastSync returns the timestamp of the last full sync
func (idx *MemoryIndex) GetLastSync() time.Time {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.lastSync
}
