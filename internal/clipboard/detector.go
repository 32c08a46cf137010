// Package clipboard detects shareable URLs on the clipboard at lifecycle
// trigger points and suppresses repeat suggestions through a persisted
// cooldown ledger.
package clipboard

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/pindrop/pindrop/internal/bridge"
	"github.com/pindrop/pindrop/internal/logger"
	"github.com/pindrop/pindrop/internal/utils"
)

// Ledger is the persisted {url, timestamp} list behind cooldown suppression.
// Implementations prune expired entries at read time.
type Ledger interface {
	// SeenURL reports whether url has an unexpired entry within window.
	SeenURL(ctx context.Context, url string, window time.Duration) (bool, error)
	// RecordURL appends an entry for url stamped now.
	RecordURL(ctx context.Context, url string) error
}

// Detector polls the clipboard on trigger points: first mount (once) and
// every foreground resume.
type Detector struct {
	reader   bridge.ClipboardReader
	ledger   Ledger
	cooldown time.Duration
	logger   logger.Logger

	mu          sync.Mutex
	mountedOnce bool
}

func NewDetector(reader bridge.ClipboardReader, ledger Ledger, cooldown time.Duration, log logger.Logger) *Detector {
	return &Detector{
		reader:   reader,
		ledger:   ledger,
		cooldown: cooldown,
		logger:   log,
	}
}

// Check reads the clipboard and returns a URL suggestion, or "" when there is
// nothing to suggest. Read and permission failures are "no URL found", never
// an error surfaced to the user. foreground=false is the mount trigger and
// fires only once per process.
func (d *Detector) Check(ctx context.Context, foreground bool) string {
	if !foreground {
		d.mu.Lock()
		if d.mountedOnce {
			d.mu.Unlock()
			return ""
		}
		d.mountedOnce = true
		d.mu.Unlock()
	}

	text, err := d.reader.ReadClipboardText(ctx)
	if err != nil {
		d.logger.Debug("clipboard read failed", logger.Error(err))
		return ""
	}

	url := extractCandidate(text)
	if url == "" {
		return ""
	}

	seen, err := d.ledger.SeenURL(ctx, url, d.cooldown)
	if err != nil {
		// Without the ledger we cannot rule out a repeat; stay quiet.
		d.logger.Warn("clipboard ledger unavailable, suppressing suggestion",
			logger.Error(err))
		return ""
	}
	if seen {
		d.logger.Debug("clipboard url within cooldown window, suppressed",
			logger.String("url", url))
		return ""
	}

	// Append before surfacing so a second read before dismissal cannot
	// double-surface the same URL.
	if err := d.ledger.RecordURL(ctx, url); err != nil {
		d.logger.Warn("failed to record clipboard ledger entry",
			logger.String("url", url),
			logger.Error(err))
	}

	d.logger.Info("clipboard url detected",
		logger.String("url", url))
	return url
}

// extractCandidate normalizes clipboard text to a single URL candidate.
// Multi-line or spaced text goes through embedded-URL extraction; clean text
// is accepted as-is when well-formed, else coerced by prefixing a scheme when
// it looks host-like (contains a dot, lacks a scheme).
func extractCandidate(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	if strings.ContainsAny(text, " \t\n\r") {
		return utils.ExtractFirstURL(text)
	}

	if utils.IsWellFormedURL(text) {
		return text
	}
	return utils.CoerceURL(text)
}
