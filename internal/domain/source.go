package domain

import "fmt"

// SourceKind discriminates the ContentSource tagged union.
type SourceKind string

const (
	SourceFile    SourceKind = "file"
	SourceURL     SourceKind = "url"
	SourceShare   SourceKind = "share"
	SourceContact SourceKind = "contact"
)

// ContentSource is the normalized description of inbound content before a
// shortcut is finalized. It is created by a picker/share/clipboard event,
// consumed once by the classification → customization → materialization flow,
// then discarded; it is never persisted as-is.
type ContentSource struct {
	// Kind tags the union: file | url | share | contact.
	Kind SourceKind `json:"kind"`

	// URI is an opaque reference to the content, possibly transient
	// (a blob-style handle that will not survive a restart).
	URI string `json:"uri,omitempty"`

	MimeType string `json:"mimeType,omitempty"`
	Name     string `json:"name,omitempty"`
	FileSize int64  `json:"fileSize,omitempty"`

	// FileData holds the inline byte payload for small files only.
	// Mutually exclusive with IsLargeFile.
	FileData []byte `json:"fileData,omitempty"`

	// IsLargeFile marks files whose bytes were deliberately not inlined.
	IsLargeFile bool `json:"isLargeFile,omitempty"`

	// ThumbnailData holds small preview bytes, if a preview was produced.
	ThumbnailData []byte `json:"thumbnailData,omitempty"`

	// Contact fields (Kind == contact only).
	ContactName string `json:"contactName,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// Validate enforces the inline-payload invariants: FileData and IsLargeFile
// are mutually exclusive signals, and FileData is only present when FileSize
// is below the inline-encoding ceiling.
func (s *ContentSource) Validate(inlineMaxBytes int64) error {
	switch s.Kind {
	case SourceFile, SourceURL, SourceShare, SourceContact:
	default:
		return fmt.Errorf("unknown source kind: %q", s.Kind)
	}

	if len(s.FileData) > 0 && s.IsLargeFile {
		return fmt.Errorf("source %q carries both inline bytes and the large-file flag", s.Name)
	}
	if len(s.FileData) > 0 && s.FileSize > inlineMaxBytes {
		return fmt.Errorf("source %q inlines %d bytes above the %d byte ceiling",
			s.Name, s.FileSize, inlineMaxBytes)
	}
	if s.Kind == SourceContact && s.PhoneNumber == "" {
		return fmt.Errorf("contact source %q has no phone number", s.ContactName)
	}
	return nil
}
