package classify

import "testing"

func TestDetectPlatform(t *testing.T) {
	tables := DefaultTables()

	tests := []struct {
		name    string
		uri     string
		wantKey string
		wantOK  bool
	}{
		{
			name:    "youtube full url",
			uri:     "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			wantKey: "youtube",
			wantOK:  true,
		},
		{
			name:    "youtube short link",
			uri:     "https://youtu.be/dQw4w9WgXcQ",
			wantKey: "youtube",
			wantOK:  true,
		},
		{
			name:    "x dot com maps to twitter entry",
			uri:     "https://x.com/someone/status/123",
			wantKey: "twitter",
			wantOK:  true,
		},
		{
			name:    "scheme-less input still matches",
			uri:     "vimeo.com/12345",
			wantKey: "vimeo",
			wantOK:  true,
		},
		{
			name:   "unrecognized host",
			uri:    "https://example.com/page",
			wantOK: false,
		},
		{
			name:   "empty uri",
			uri:    "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := DetectPlatform(tt.uri, tables)
			if ok != tt.wantOK {
				t.Fatalf("DetectPlatform(%q) ok = %v, want %v", tt.uri, ok, tt.wantOK)
			}
			if ok && p.Key != tt.wantKey {
				t.Errorf("DetectPlatform(%q) key = %q, want %q", tt.uri, p.Key, tt.wantKey)
			}
		})
	}
}
