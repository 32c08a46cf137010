// Package ingest turns asynchronous "content became available" signals into
// at most one ContentSource or navigation outcome per physical share event.
package ingest

import (
	"context"
	"strings"
	"sync"

	"github.com/pindrop/pindrop/internal/bridge"
	"github.com/pindrop/pindrop/internal/domain"
	"github.com/pindrop/pindrop/internal/logger"
	"github.com/pindrop/pindrop/internal/utils"
)

// Trigger identifies the lifecycle signal driving a check.
type Trigger string

const (
	TriggerColdStart  Trigger = "cold_start"
	TriggerForeground Trigger = "foreground"
)

// Navigation is the short-circuit outcome for recognized internal action
// codes: the UI navigates straight to the viewer instead of the shortcut flow.
type Navigation struct {
	Action domain.ActionCode `json:"action"`
	URI    string            `json:"uri"`
}

// Outcome carries at most one of Source or Navigation. A nil Outcome is a
// no-op (nothing pending, or a duplicate of an already-processed event).
type Outcome struct {
	Source     *domain.ContentSource `json:"source,omitempty"`
	Navigation *Navigation           `json:"navigation,omitempty"`
}

// Ingestor deduplicates and classifies pending share events. Its only durable
// state per process lifetime is the fingerprint of the last processed event
// and a currently-checking flag, both constructor-injected rather than
// module-level so tests stay isolated.
type Ingestor struct {
	resolver  bridge.ShareResolver
	inlineMax int64
	logger    logger.Logger

	mu              sync.Mutex
	lastFingerprint string
	checking        bool
}

// New builds an ingestor. inlineMax is the inline byte payload ceiling:
// larger shared payloads are emitted as large-file sources without bytes.
func New(resolver bridge.ShareResolver, inlineMax int64, log logger.Logger) *Ingestor {
	return &Ingestor{resolver: resolver, inlineMax: inlineMax, logger: log}
}

// Check queries the bridge for pending shared content and classifies it.
// Overlapping lifecycle signals are safe: the checking flag collapses
// concurrent invocations and the fingerprint guard makes repeats a no-op.
// A foreground trigger clears the fingerprint first, so an explicit re-share
// of identical content after returning from background is a new event.
func (in *Ingestor) Check(ctx context.Context, trigger Trigger) (*Outcome, error) {
	in.mu.Lock()
	if in.checking {
		in.mu.Unlock()
		in.logger.Debug("ingestion check already in flight, skipping")
		return nil, nil
	}
	in.checking = true
	if trigger == TriggerForeground {
		in.lastFingerprint = ""
	}
	in.mu.Unlock()

	defer func() {
		in.mu.Lock()
		in.checking = false
		in.mu.Unlock()
	}()

	event, err := in.resolver.ResolveSharedContent(ctx)
	if err != nil {
		return nil, err
	}
	if event.IsEmpty() {
		return nil, nil
	}

	// Read-then-write before any further work makes processing idempotent
	// across overlapping signals.
	fp := event.Fingerprint()
	in.mu.Lock()
	if fp == in.lastFingerprint {
		in.mu.Unlock()
		in.logger.Debug("duplicate share event, ignoring",
			logger.String("trigger", string(trigger)))
		return nil, nil
	}
	in.lastFingerprint = fp
	in.mu.Unlock()

	return in.classify(event), nil
}

// classify maps one new share event to its single outcome.
func (in *Ingestor) classify(event *domain.ShareEvent) *Outcome {
	switch event.Action {
	case domain.ActionOpenPDF, domain.ActionPlayVideo:
		return &Outcome{Navigation: &Navigation{Action: event.Action, URI: event.Text}}
	}

	text := strings.TrimSpace(event.Text)

	if utils.IsWellFormedURL(text) {
		return &Outcome{Source: &domain.ContentSource{
			Kind: domain.SourceShare,
			URI:  text,
		}}
	}

	if len(event.Data) > 0 {
		src := &domain.ContentSource{
			Kind:     domain.SourceFile,
			MimeType: event.MimeType,
			FileSize: int64(len(event.Data)),
		}
		// Bytes are only inlined below the ceiling; above it the source
		// carries the large-file marker instead, never both.
		if src.FileSize > in.inlineMax {
			src.IsLargeFile = true
		} else {
			src.FileData = event.Data
		}
		return &Outcome{Source: src}
	}

	if u := utils.ExtractFirstURL(text); u != "" {
		return &Outcome{Source: &domain.ContentSource{Kind: domain.SourceShare, URI: u}}
	}
	if u := utils.CoerceURL(text); u != "" {
		return &Outcome{Source: &domain.ContentSource{Kind: domain.SourceShare, URI: u}}
	}

	// Nothing URL-like and no payload: drop silently.
	in.logger.Debug("share event carried no usable content")
	return nil
}
