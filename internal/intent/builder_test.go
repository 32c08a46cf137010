package intent

import (
	"encoding/base64"
	"errors"
	"testing"

	"github.com/pindrop/pindrop/internal/classify"
	"github.com/pindrop/pindrop/internal/domain"
	"github.com/pindrop/pindrop/internal/logger"
)

func newTestBuilder() *Builder {
	return NewBuilder(Policy{
		VideoMaxBytes:  50 * 1024 * 1024,
		InlineMaxBytes: 1 * 1024 * 1024,
	}, logger.New("error", false))
}

func TestBuildOversizedVideoRejected(t *testing.T) {
	b := newTestBuilder()
	tables := classify.DefaultTables()

	rec := &domain.ShortcutData{
		ID:       "v1",
		Label:    "big video",
		Category: domain.CategoryFile,
		URI:      "content://media/video/huge.mp4",
		MimeType: "video/mp4",
		FileSize: 51 * 1024 * 1024,
	}

	_, err := b.Build(rec, nil, tables, CallCapability{})
	var sizeErr *domain.SizeExceededError
	if !errors.As(err, &sizeErr) {
		t.Fatalf("expected SizeExceededError, got %v", err)
	}
	if sizeErr.Size != rec.FileSize {
		t.Errorf("error size = %d, want %d", sizeErr.Size, rec.FileSize)
	}
}

func TestBuildVideoUnderCeilingUsesProxy(t *testing.T) {
	b := newTestBuilder()
	tables := classify.DefaultTables()

	// 40MB video without an explicit MIME type: the extension table must
	// resolve it and the proxy flag must be set.
	rec := &domain.ShortcutData{
		ID:       "v2",
		Label:    "clip",
		Category: domain.CategoryFile,
		URI:      "content://media/video/clip.mp4",
		FileSize: 40 * 1024 * 1024,
	}

	d, err := b.Build(rec, nil, tables, CallCapability{})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if d.MimeType != "video/mp4" {
		t.Errorf("mime type = %q, want video/mp4", d.MimeType)
	}
	if !d.UseVideoProxy {
		t.Error("expected UseVideoProxy for a video shortcut")
	}
	if d.Action != domain.ActionView {
		t.Errorf("action = %q, want %q", d.Action, domain.ActionView)
	}
}

func TestBuildTransientURIWithoutPayloadRejected(t *testing.T) {
	b := newTestBuilder()
	tables := classify.DefaultTables()

	rec := &domain.ShortcutData{
		ID:       "f1",
		Label:    "ephemeral",
		Category: domain.CategoryFile,
		URI:      "blob:null/3f2a-11ee",
		MimeType: "image/png",
	}

	_, err := b.Build(rec, nil, tables, CallCapability{})
	if !errors.Is(err, domain.ErrDeadTransientURI) {
		t.Fatalf("expected ErrDeadTransientURI, got %v", err)
	}

	// With inline bytes the same record is acceptable.
	src := &domain.ContentSource{Kind: domain.SourceFile, FileData: []byte("png")}
	d, err := b.Build(rec, src, tables, CallCapability{})
	if err != nil {
		t.Fatalf("Build with inline payload failed: %v", err)
	}
	if len(d.InlineFileBytes) == 0 {
		t.Error("inline bytes should be carried on the directive")
	}
}

func TestBuildPDFProxy(t *testing.T) {
	b := newTestBuilder()
	tables := classify.DefaultTables()

	tests := []struct {
		name string
		rec  *domain.ShortcutData
	}{
		{
			name: "by mime type",
			rec:  &domain.ShortcutData{Category: domain.CategoryFile, URI: "content://docs/1", MimeType: "application/pdf"},
		},
		{
			name: "by uri extension",
			rec:  &domain.ShortcutData{Category: domain.CategoryFile, URI: "content://docs/report.pdf"},
		},
		{
			name: "by filename",
			rec:  &domain.ShortcutData{Category: domain.CategoryFile, URI: "content://docs/2", FileName: "Manual.PDF"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.rec.ResumeEnabled = true
			d, err := b.Build(tt.rec, nil, tables, CallCapability{})
			if err != nil {
				t.Fatalf("Build failed: %v", err)
			}
			if !d.UsePdfProxy {
				t.Error("expected UsePdfProxy")
			}
			if !d.ResumeEnabled {
				t.Error("resume flag should carry over for pdf shortcuts")
			}
			if d.UseVideoProxy {
				t.Error("video proxy must not be set for pdf")
			}
		})
	}
}

func TestBuildContactRouting(t *testing.T) {
	b := newTestBuilder()
	tables := classify.DefaultTables()

	rec := &domain.ShortcutData{
		Category:    domain.CategoryContact,
		Label:       "Ada",
		PhoneNumber: "+33 6 12 34 56 78",
	}

	d, err := b.Build(rec, nil, tables, CallCapability{Granted: true})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if d.Action != domain.ActionCallProxy {
		t.Errorf("granted capability should route through call proxy, got %q", d.Action)
	}

	d, err = b.Build(rec, nil, tables, CallCapability{Granted: false})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if d.Action != domain.ActionDial {
		t.Errorf("ungranted capability should fall back to dialer, got %q", d.Action)
	}
	if d.DataURI != "tel:+33 6 12 34 56 78" {
		t.Errorf("dial target = %q", d.DataURI)
	}
}

func TestBuildContactWithoutNumberFails(t *testing.T) {
	b := newTestBuilder()
	tables := classify.DefaultTables()

	rec := &domain.ShortcutData{Category: domain.CategoryContact, Label: "Nobody"}
	if _, err := b.Build(rec, nil, tables, CallCapability{}); err == nil {
		t.Fatal("expected error for contact without phone number")
	}
}

func TestBuildMessageDeepLinks(t *testing.T) {
	b := newTestBuilder()
	tables := classify.DefaultTables()

	tests := []struct {
		name string
		rec  *domain.ShortcutData
		want string
	}{
		{
			name: "whatsapp strips formatting",
			rec:  &domain.ShortcutData{Category: domain.CategoryMessage, MessagingApp: MessagingWhatsApp, PhoneNumber: "+33 6 12 34 56 78"},
			want: "https://wa.me/33612345678",
		},
		{
			name: "telegram",
			rec:  &domain.ShortcutData{Category: domain.CategoryMessage, MessagingApp: MessagingTelegram, PhoneNumber: "+1 (555) 000-1111"},
			want: "tg://resolve?phone=15550001111",
		},
		{
			name: "slack channel",
			rec:  &domain.ShortcutData{Category: domain.CategoryMessage, MessagingApp: MessagingSlack, TeamID: "T123", ChannelID: "C456"},
			want: "slack://channel?team=T123&id=C456",
		},
		{
			name: "slack without channel falls back to open",
			rec:  &domain.ShortcutData{Category: domain.CategoryMessage, MessagingApp: MessagingSlack, TeamID: "T123"},
			want: "slack://open",
		},
		{
			name: "sms default",
			rec:  &domain.ShortcutData{Category: domain.CategoryMessage, MessagingApp: MessagingSMS, PhoneNumber: "+33612345678"},
			want: "sms:+33612345678",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := b.Build(tt.rec, nil, tables, CallCapability{})
			if err != nil {
				t.Fatalf("Build failed: %v", err)
			}
			if d.DataURI != tt.want {
				t.Errorf("target = %q, want %q", d.DataURI, tt.want)
			}
		})
	}
}

func TestBuildLink(t *testing.T) {
	b := newTestBuilder()
	tables := classify.DefaultTables()

	rec := &domain.ShortcutData{
		Category: domain.CategoryLink,
		URI:      "https://example.com/page",
	}

	d, err := b.Build(rec, nil, tables, CallCapability{})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if d.Action != domain.ActionView || d.DataURI != rec.URI {
		t.Errorf("unexpected link directive: %+v", d)
	}
}

func TestPackageIcon(t *testing.T) {
	b := newTestBuilder()

	payload := []byte("iconbytes")
	dataURI := "data:image/png;base64," + base64.StdEncoding.EncodeToString(payload)

	tests := []struct {
		name      string
		rec       *domain.ShortcutData
		wantBytes []byte
		wantRef   string
	}{
		{
			name: "emoji passes through as literal",
			rec: &domain.ShortcutData{
				Icon: domain.ShortcutIcon{Type: domain.IconEmoji, Value: "🎬"},
			},
			wantRef: "🎬",
		},
		{
			name: "data uri decoded to bytes",
			rec: &domain.ShortcutData{
				Icon: domain.ShortcutIcon{Type: domain.IconThumbnail, Value: dataURI},
			},
			wantBytes: payload,
		},
		{
			name: "transient ref replaced by stored bytes",
			rec: &domain.ShortcutData{
				Icon:          domain.ShortcutIcon{Type: domain.IconThumbnail, Value: "blob:null/abcd"},
				ThumbnailData: payload,
			},
			wantBytes: payload,
		},
		{
			name: "plain uri kept as last resort",
			rec: &domain.ShortcutData{
				Icon: domain.ShortcutIcon{Type: domain.IconThumbnail, Value: "https://cdn.example.com/icon.png"},
			},
			wantRef: "https://cdn.example.com/icon.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.packageIcon(tt.rec)
			if tt.wantBytes != nil {
				if string(got.Bytes) != string(tt.wantBytes) {
					t.Errorf("bytes = %q, want %q", got.Bytes, tt.wantBytes)
				}
			} else if got.Ref != tt.wantRef {
				t.Errorf("ref = %q, want %q", got.Ref, tt.wantRef)
			}
		})
	}
}
