// Package bridge defines the native-platform operations this pipeline
// consumes, and an HTTP client implementing them against the native gateway.
// All calls are asynchronous from the platform's point of view: the caller
// awaits them and the native layer resolves or rejects in bounded time.
package bridge

import (
	"context"

	"github.com/pindrop/pindrop/internal/domain"
)

// PickedFile is the result of a native file-picker invocation.
type PickedFile struct {
	URI      string `json:"uri"`
	MimeType string `json:"mimeType,omitempty"`
	Name     string `json:"name,omitempty"`
	Size     int64  `json:"size,omitempty"`
}

// PinRequest is the payload handed to the native pinning service.
type PinRequest struct {
	ID              string               `json:"id"`
	Label           string               `json:"label"`
	IconVariant     domain.IconTransport `json:"iconVariant"`
	IntentAction    string               `json:"intentAction"`
	IntentData      string               `json:"intentData"`
	IntentType      string               `json:"intentType,omitempty"`
	UseVideoProxy   bool                 `json:"useVideoProxy,omitempty"`
	UsePdfProxy     bool                 `json:"usePdfProxy,omitempty"`
	ResumeEnabled   bool                 `json:"resumeEnabled,omitempty"`
	InlineFileBytes []byte               `json:"inlineFileBytes,omitempty"`
}

// NewPinRequest flattens a record and its directive into the native payload.
func NewPinRequest(rec *domain.ShortcutData, d *domain.LaunchDirective) PinRequest {
	return PinRequest{
		ID:              rec.ID,
		Label:           rec.Label,
		IconVariant:     d.Icon,
		IntentAction:    d.Action,
		IntentData:      d.DataURI,
		IntentType:      d.MimeType,
		UseVideoProxy:   d.UseVideoProxy,
		UsePdfProxy:     d.UsePdfProxy,
		ResumeEnabled:   d.ResumeEnabled,
		InlineFileBytes: d.InlineFileBytes,
	}
}

// ShareResolver reports pending externally shared content.
// A nil event means nothing is pending.
type ShareResolver interface {
	ResolveSharedContent(ctx context.Context) (*domain.ShareEvent, error)
}

// ClipboardReader reads the current clipboard text. Empty string means the
// clipboard holds no text.
type ClipboardReader interface {
	ReadClipboardText(ctx context.Context) (string, error)
}

// PermissionChecker probes and requests the call permission.
type PermissionChecker interface {
	CheckCallPermission(ctx context.Context) (bool, error)
	RequestCallPermission(ctx context.Context) (bool, error)
}

// ShortcutPinner asks the native layer to pin a shortcut.
type ShortcutPinner interface {
	CreatePinnedShortcut(ctx context.Context, req PinRequest) error
}

// FilePicker opens the native file picker with optional MIME filters.
// A nil result means the user cancelled.
type FilePicker interface {
	PickFile(ctx context.Context, mimeFilters []string) (*PickedFile, error)
}

// Bridge is the full native surface.
type Bridge interface {
	ShareResolver
	ClipboardReader
	PermissionChecker
	ShortcutPinner
	FilePicker
}
