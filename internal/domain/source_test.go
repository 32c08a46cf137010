package domain

import "testing"

func TestContentSourceValidate(t *testing.T) {
	const inlineMax = 1024

	tests := []struct {
		name    string
		src     ContentSource
		wantErr bool
	}{
		{
			name: "valid small file with inline bytes",
			src:  ContentSource{Kind: SourceFile, Name: "a.png", FileData: []byte("x"), FileSize: 1},
		},
		{
			name: "valid large file without bytes",
			src:  ContentSource{Kind: SourceFile, Name: "big.mp4", IsLargeFile: true, FileSize: 5000},
		},
		{
			name: "valid url",
			src:  ContentSource{Kind: SourceURL, URI: "https://example.com"},
		},
		{
			name: "valid contact",
			src:  ContentSource{Kind: SourceContact, ContactName: "Ada", PhoneNumber: "+33612345678"},
		},
		{
			name:    "unknown kind",
			src:     ContentSource{Kind: "picture"},
			wantErr: true,
		},
		{
			name:    "inline bytes and large-file flag are exclusive",
			src:     ContentSource{Kind: SourceFile, FileData: []byte("x"), IsLargeFile: true},
			wantErr: true,
		},
		{
			name:    "inline bytes above the ceiling",
			src:     ContentSource{Kind: SourceFile, FileData: []byte("x"), FileSize: inlineMax + 1},
			wantErr: true,
		},
		{
			name:    "contact without phone number",
			src:     ContentSource{Kind: SourceContact, ContactName: "Ada"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.src.Validate(inlineMax)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestShareEventIsEmpty(t *testing.T) {
	var nilEvent *ShareEvent
	if !nilEvent.IsEmpty() {
		t.Error("nil event should be empty")
	}
	if !(&ShareEvent{}).IsEmpty() {
		t.Error("zero event should be empty")
	}
	if (&ShareEvent{Text: "hello"}).IsEmpty() {
		t.Error("event with text is not empty")
	}
	if (&ShareEvent{Data: []byte("x")}).IsEmpty() {
		t.Error("event with payload is not empty")
	}
	if (&ShareEvent{Action: ActionOpenPDF}).IsEmpty() {
		t.Error("event with action is not empty")
	}
}

func TestShareEventFingerprint(t *testing.T) {
	a := &ShareEvent{Text: "https://example.com", MimeType: "text/plain"}
	b := &ShareEvent{Text: "https://example.com", MimeType: "text/plain"}
	if a.Fingerprint() != b.Fingerprint() {
		t.Error("identical events must share a fingerprint")
	}

	// Field boundaries matter: shifting content between fields must change
	// the fingerprint.
	c := &ShareEvent{Text: "https://example.comtext/plain"}
	if a.Fingerprint() == c.Fingerprint() {
		t.Error("fingerprint must separate fields unambiguously")
	}

	d := &ShareEvent{Text: "https://example.com", MimeType: "text/html"}
	if a.Fingerprint() == d.Fingerprint() {
		t.Error("different events must differ in fingerprint")
	}
}
