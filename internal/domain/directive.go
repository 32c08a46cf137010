package domain

// Launch directive actions understood by the native layer.
const (
	ActionView      = "view"       // generic view of the target URI
	ActionDial      = "dial"       // open the OS dialer with the number prefilled
	ActionCallProxy = "call-proxy" // place the call through the app's own proxy
)

// IconTransport is the normalized form a thumbnail icon takes when handed to
// the native layer: exactly one of Bytes or Ref is set for thumbnails; emoji
// and text icons pass through as literal values in Ref.
type IconTransport struct {
	Type  IconType `json:"type"`
	Bytes []byte   `json:"bytes,omitempty"`
	Ref   string   `json:"ref,omitempty"`
}

// LaunchDirective is the platform launch description produced for a finalized
// shortcut: action, target URI, MIME type, and routing flags.
type LaunchDirective struct {
	Action   string `json:"action"`
	DataURI  string `json:"data"`
	MimeType string `json:"type,omitempty"`

	// UseVideoProxy routes playback through the app's internal player
	// instead of an arbitrary external handler.
	UseVideoProxy bool `json:"useVideoProxy,omitempty"`

	// UsePdfProxy routes the target through the internal PDF viewer.
	UsePdfProxy bool `json:"usePdfProxy,omitempty"`

	// ResumeEnabled is meaningful only when UsePdfProxy is set.
	ResumeEnabled bool `json:"resumeEnabled,omitempty"`

	// InlineFileBytes carries small file payloads to the native layer so the
	// pinned entry survives transient source URIs.
	InlineFileBytes []byte `json:"inlineFileBytes,omitempty"`

	Icon IconTransport `json:"icon"`
}
