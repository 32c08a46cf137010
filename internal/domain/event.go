package domain

import "strings"

// ActionCode is an internal action carried on a share event. Recognized codes
// short-circuit ingestion straight to a navigation outcome instead of the
// generic classification path.
type ActionCode string

const (
	ActionNone      ActionCode = ""
	ActionOpenPDF   ActionCode = "open-pdf"
	ActionPlayVideo ActionCode = "play-video"
)

// ShareEvent is one pending piece of externally shared content as reported by
// the native bridge.
type ShareEvent struct {
	Action   ActionCode `json:"action,omitempty"`
	Text     string     `json:"text,omitempty"`
	Data     []byte     `json:"data,omitempty"`
	MimeType string     `json:"mimeType,omitempty"`
}

// IsEmpty reports whether the event carries no content at all.
func (e *ShareEvent) IsEmpty() bool {
	return e == nil || (e.Action == ActionNone && e.Text == "" && len(e.Data) == 0)
}

// Fingerprint derives the ephemeral identity key used to deduplicate one
// physical share event across overlapping lifecycle checks. It is never
// persisted.
func (e *ShareEvent) Fingerprint() string {
	var b strings.Builder
	b.WriteString(string(e.Action))
	b.WriteByte('\x1f')
	b.WriteString(e.Text)
	b.WriteByte('\x1f')
	b.Write(e.Data)
	b.WriteByte('\x1f')
	b.WriteString(e.MimeType)
	return b.String()
}
