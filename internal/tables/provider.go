package tables

import (
	"sync"
	"time"

	"github.com/pindrop/pindrop/internal/classify"
)

// Provider hands out the current routing-tables snapshot. Snapshots are
// immutable; a reload swaps the pointer under the lock.
type Provider struct {
	mu         sync.RWMutex
	current    *classify.Tables
	lastReload time.Time
}

// NewProvider creates a provider seeded with the built-in tables.
func NewProvider() *Provider {
	return &Provider{current: classify.DefaultTables()}
}

// Current returns the active snapshot.
func (p *Provider) Current() *classify.Tables {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.current
}

// Set replaces the active snapshot.
func (p *Provider) Set(t *classify.Tables) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.current = t
	p.lastReload = time.Now()
}

// GetLastReload returns the timestamp of the last snapshot swap.
func (p *Provider) GetLastReload() time.Time {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.lastReload
}
