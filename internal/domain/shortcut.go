package domain

import "time"

// Category is the durable tag on a finalized shortcut.
type Category string

const (
	CategoryFile    Category = "file"
	CategoryLink    Category = "link"
	CategoryContact Category = "contact"
	CategoryMessage Category = "message"
)

// IconType describes how ShortcutIcon.Value must be interpreted.
type IconType string

const (
	IconThumbnail IconType = "thumbnail" // Value: data-URI or image reference
	IconEmoji     IconType = "emoji"     // Value: single glyph
	IconText      IconType = "text"      // Value: 1-2 character string
	IconPlatform  IconType = "platform"  // Value: platform key (ex: "youtube")
	IconFavicon   IconType = "favicon"   // Value: image URL
)

// ShortcutIcon is immutable once attached to a shortcut record; edits
// regenerate it rather than mutating it.
type ShortcutIcon struct {
	Type  IconType `json:"type"`
	Value string   `json:"value"`
}

// ShortcutData is the durable shortcut record.
// This pipeline constructs and validates it; persistence is delegated to the
// store, and the native layer owns the pinned artifact itself.
type ShortcutData struct {
	// ─────────────────────────────
	// Identity (immutable)
	// ─────────────────────────────

	// ID is the canonical unique identifier, minted when the record is
	// finalized.
	ID string `json:"id"`

	// Label is the display name shown under the pinned entry.
	Label string `json:"label"`

	// Category tags the launch semantics: file | link | contact | message.
	Category Category `json:"category"`

	// ─────────────────────────────
	// Content
	// ─────────────────────────────

	// URI is the resolved content reference the launch directive targets.
	URI string `json:"uri"`

	MimeType string       `json:"mimeType,omitempty"`
	FileName string       `json:"fileName,omitempty"`
	FileSize int64        `json:"fileSize,omitempty"`
	Icon     ShortcutIcon `json:"icon"`

	// ThumbnailData holds raw preview bytes carried over from the source,
	// used when the icon value itself is a non-persistent reference.
	ThumbnailData []byte `json:"thumbnailData,omitempty"`

	// ResumeEnabled asks the internal PDF viewer to reopen at the last page.
	ResumeEnabled bool `json:"resumeEnabled,omitempty"`

	// Messaging fields (Category == message only).
	MessagingApp string `json:"messagingApp,omitempty"`
	TeamID       string `json:"teamId,omitempty"`
	ChannelID    string `json:"channelId,omitempty"`

	// PhoneNumber backs contact and messaging deep links.
	PhoneNumber string `json:"phoneNumber,omitempty"`

	// ─────────────────────────────
	// Metadata
	// ─────────────────────────────

	// Counter tracks how often the shortcut was launched.
	Counter int64 `json:"counter"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// ─────────────────────────────
	// Liveness & cleanup
	// ─────────────────────────────

	// Disabled marks a shortcut as soft-deleted.
	// It may be garbage-collected later.
	Disabled bool `json:"disabled,omitempty"`
}
