package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/pindrop/pindrop/internal/logger"
	"github.com/pindrop/pindrop/internal/tables"
)

// TablesReloader keeps the routing-tables snapshot fresh: it reloads on a
// periodic interval, on a manual trigger, and on file-change notifications.
type TablesReloader struct {
	loader        *tables.Loader
	provider      *tables.Provider
	filePath      string
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

// NewTablesReloader creates a new tables reloader
func NewTablesReloader(
	filePath string,
	provider *tables.Provider,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *TablesReloader {
	return &TablesReloader{
		loader:        tables.NewLoader(filePath),
		provider:      provider,
		filePath:      filePath,
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start loads the tables once, then begins the reload loop.
func (tr *TablesReloader) Start(ctx context.Context) error {
	if err := tr.Reload(); err != nil {
		return fmt.Errorf("initial tables load failed: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		tr.logger.Warn("file watching unavailable, falling back to interval reloads",
			logger.Error(err))
		watcher = nil
	} else if err := watcher.Add(tr.filePath); err != nil {
		tr.logger.Warn("failed to watch tables file",
			logger.String("file", tr.filePath),
			logger.Error(err))
		_ = watcher.Close()
		watcher = nil
	}

	var watchEvents chan fsnotify.Event
	var watchErrors chan error
	if watcher != nil {
		watchEvents = watcher.Events
		watchErrors = watcher.Errors
	}

	ticker := time.NewTicker(tr.interval)
	go func() {
		defer ticker.Stop()
		if watcher != nil {
			defer func() { _ = watcher.Close() }()
		}
		for {
			select {
			case <-ticker.C:
				tr.reloadLogged("interval")
			case <-tr.manualTrigger:
				tr.reloadLogged("manual")
			case ev := <-watchEvents:
				if ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) {
					tr.reloadLogged("file change")
				}
			case err := <-watchErrors:
				tr.logger.Warn("tables file watcher error", logger.Error(err))
			case <-tr.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the reloader
func (tr *TablesReloader) Stop() {
	close(tr.stopCh)
}

// Reload loads the tables file and swaps the provider snapshot
func (tr *TablesReloader) Reload() error {
	merged, err := tr.loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load tables: %w", err)
	}

	tr.provider.Set(merged)

	tr.logger.Info("routing tables reloaded",
		logger.String("file", tr.filePath),
		logger.Int("platforms", len(merged.Platforms)),
		logger.Int("extensions", len(merged.ExtMIME)))

	return nil
}

func (tr *TablesReloader) reloadLogged(reason string) {
	tr.logger.Info("tables reload triggered",
		logger.String("reason", reason))
	if err := tr.Reload(); err != nil {
		// Keep the previous snapshot on a bad reload.
		tr.logger.Error("failed to reload tables",
			logger.Error(err))
	}
}
