package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pindrop/pindrop/internal/bridge"
	"github.com/pindrop/pindrop/internal/clipboard"
	"github.com/pindrop/pindrop/internal/domain"
	"github.com/pindrop/pindrop/internal/httpserver/deps"
	"github.com/pindrop/pindrop/internal/index"
	"github.com/pindrop/pindrop/internal/ingest"
	"github.com/pindrop/pindrop/internal/intent"
	"github.com/pindrop/pindrop/internal/logger"
	"github.com/pindrop/pindrop/internal/tables"
)

// fakeBridge implements the full native surface with canned responses.
type fakeBridge struct {
	pending       *domain.ShareEvent
	clipboardText string
	pinErr        error
	pinned        []bridge.PinRequest
	picked        *bridge.PickedFile
	pickErr       error
}

func (f *fakeBridge) ResolveSharedContent(ctx context.Context) (*domain.ShareEvent, error) {
	return f.pending, nil
}

func (f *fakeBridge) ReadClipboardText(ctx context.Context) (string, error) {
	return f.clipboardText, nil
}

func (f *fakeBridge) CheckCallPermission(ctx context.Context) (bool, error)   { return true, nil }
func (f *fakeBridge) RequestCallPermission(ctx context.Context) (bool, error) { return true, nil }

func (f *fakeBridge) CreatePinnedShortcut(ctx context.Context, req bridge.PinRequest) error {
	if f.pinErr != nil {
		return f.pinErr
	}
	f.pinned = append(f.pinned, req)
	return nil
}

func (f *fakeBridge) PickFile(ctx context.Context, mimeFilters []string) (*bridge.PickedFile, error) {
	return f.picked, f.pickErr
}

// memoryLedger is a throwaway in-memory cooldown ledger.
type memoryLedger struct {
	entries map[string]time.Time
}

func (m *memoryLedger) SeenURL(ctx context.Context, url string, window time.Duration) (bool, error) {
	at, ok := m.entries[url]
	return ok && time.Since(at) < window, nil
}

func (m *memoryLedger) RecordURL(ctx context.Context, url string) error {
	m.entries[url] = time.Now()
	return nil
}

func newTestDeps(b *fakeBridge) deps.Deps {
	log := logger.New("error", false)
	ledger := &memoryLedger{entries: make(map[string]time.Time)}

	return deps.Deps{
		Logger:      log,
		StartTime:   time.Now(),
		TimeNow:     time.Now,
		MemoryIndex: index.NewMemoryIndex(),
		Tables:      tables.NewProvider(),
		Bridge:      b,
		Ingestor:    ingest.New(b, 1*1024*1024, log),
		Clipboard:   clipboard.NewDetector(b, ledger, time.Hour, log),
		IntentBuilder: intent.NewBuilder(intent.Policy{
			VideoMaxBytes:  50 * 1024 * 1024,
			InlineMaxBytes: 1 * 1024 * 1024,
		}, log),
		InlineMax: 1 * 1024 * 1024,
	}
}

func postJSON(t *testing.T, h http.HandlerFunc, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(raw))
	w := httptest.NewRecorder()
	h(w, req)
	return w
}

func TestLifecycleHandler(t *testing.T) {
	b := &fakeBridge{
		pending:       &domain.ShareEvent{Text: "https://youtu.be/abc123"},
		clipboardText: "https://example.com/article",
	}
	d := newTestDeps(b)

	w := postJSON(t, Lifecycle(d), lifecycleRequest{Signal: "foreground"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var resp lifecycleResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Ingestion == nil || resp.Ingestion.Source == nil {
		t.Fatalf("expected an ingested source, got %+v", resp)
	}
	if resp.Ingestion.Source.URI != "https://youtu.be/abc123" {
		t.Errorf("source uri = %q", resp.Ingestion.Source.URI)
	}
	if resp.ClipboardURL != "https://example.com/article" {
		t.Errorf("clipboard url = %q", resp.ClipboardURL)
	}
}

func TestLifecycleHandlerBadSignal(t *testing.T) {
	d := newTestDeps(&fakeBridge{})

	w := postJSON(t, Lifecycle(d), lifecycleRequest{Signal: "hibernate"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestCreateShortcutHandler(t *testing.T) {
	b := &fakeBridge{}
	d := newTestDeps(b)

	req := createShortcutRequest{
		Shortcut: domain.ShortcutData{
			Category: domain.CategoryLink,
			URI:      "https://youtu.be/abc123",
			Icon:     domain.ShortcutIcon{Type: domain.IconEmoji, Value: "▶️"},
		},
		Source: &domain.ContentSource{Kind: domain.SourceShare, URI: "https://youtu.be/abc123"},
	}

	w := postJSON(t, CreateShortcut(d), req)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}

	var resp createShortcutResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Shortcut.ID == "" {
		t.Error("an id should be minted")
	}
	if resp.Shortcut.Label != "YouTube" {
		t.Errorf("label = %q, want the platform friendly name", resp.Shortcut.Label)
	}
	if resp.Directive == nil || resp.Directive.Action != domain.ActionView {
		t.Errorf("unexpected directive: %+v", resp.Directive)
	}
	if len(b.pinned) != 1 {
		t.Fatalf("expected one pin request, got %d", len(b.pinned))
	}
	if _, ok := d.MemoryIndex.GetShortcut(resp.Shortcut.ID); !ok {
		t.Error("created shortcut should land in the memory index")
	}
}

func TestCreateShortcutOversizedVideo(t *testing.T) {
	d := newTestDeps(&fakeBridge{})

	req := createShortcutRequest{
		Shortcut: domain.ShortcutData{
			Category: domain.CategoryFile,
			URI:      "content://media/video/huge.mp4",
			MimeType: "video/mp4",
			FileSize: 60 * 1024 * 1024,
		},
	}

	w := postJSON(t, CreateShortcut(d), req)
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d, want 413: %s", w.Code, w.Body.String())
	}
}

func TestCreateShortcutDeadTransientURI(t *testing.T) {
	d := newTestDeps(&fakeBridge{})

	req := createShortcutRequest{
		Shortcut: domain.ShortcutData{
			Category: domain.CategoryFile,
			URI:      "blob:null/3f2a",
			MimeType: "image/png",
		},
	}

	w := postJSON(t, CreateShortcut(d), req)
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422: %s", w.Code, w.Body.String())
	}
}

func TestCreateShortcutNativeFailure(t *testing.T) {
	b := &fakeBridge{pinErr: &domain.NativeCreationError{Reason: "launcher refused"}}
	d := newTestDeps(b)

	req := createShortcutRequest{
		Shortcut: domain.ShortcutData{
			Category: domain.CategoryLink,
			URI:      "https://example.com",
		},
	}

	w := postJSON(t, CreateShortcut(d), req)
	if w.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502: %s", w.Code, w.Body.String())
	}
	if d.MemoryIndex.Count() != 0 {
		t.Error("failed pin must not leave a record behind")
	}
}

func TestCreateShortcutInvalidSource(t *testing.T) {
	d := newTestDeps(&fakeBridge{})

	req := createShortcutRequest{
		Shortcut: domain.ShortcutData{Category: domain.CategoryFile, URI: "content://x"},
		Source: &domain.ContentSource{
			Kind:        domain.SourceFile,
			FileData:    []byte("x"),
			IsLargeFile: true, // contradicts inline bytes
		},
	}

	w := postJSON(t, CreateShortcut(d), req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400: %s", w.Code, w.Body.String())
	}
}

func TestShortcutUsedHandler(t *testing.T) {
	d := newTestDeps(&fakeBridge{})
	d.MemoryIndex.AddShortcut(&domain.ShortcutData{ID: "s1", Label: "one"})

	r := chi.NewRouter()
	r.Post("/v1/shortcuts/{id}/used", ShortcutUsed(d))

	req := httptest.NewRequest(http.MethodPost, "/v1/shortcuts/s1/used", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", w.Code)
	}

	rec, _ := d.MemoryIndex.GetShortcut("s1")
	if rec.Counter != 1 {
		t.Errorf("counter = %d, want 1", rec.Counter)
	}

	req = httptest.NewRequest(http.MethodPost, "/v1/shortcuts/unknown/used", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestListShortcutsHandler(t *testing.T) {
	d := newTestDeps(&fakeBridge{})
	d.MemoryIndex.AddShortcut(&domain.ShortcutData{ID: "a", Label: "rarely", Counter: 1})
	d.MemoryIndex.AddShortcut(&domain.ShortcutData{ID: "b", Label: "often", Counter: 9})

	req := httptest.NewRequest(http.MethodGet, "/v1/shortcuts", nil)
	w := httptest.NewRecorder()
	ListShortcuts(d)(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp listShortcutsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Count != 2 {
		t.Fatalf("count = %d, want 2", resp.Count)
	}
	if resp.Shortcuts[0].ID != "b" {
		t.Errorf("most used should come first, got %q", resp.Shortcuts[0].ID)
	}
}

func TestPickFileHandler(t *testing.T) {
	b := &fakeBridge{picked: &bridge.PickedFile{
		URI:      "content://media/docs/report.pdf",
		MimeType: "application/pdf",
		Name:     "report.pdf",
		Size:     2 * 1024 * 1024,
	}}
	d := newTestDeps(b)

	w := postJSON(t, PickFile(d), pickFileRequest{MimeFilters: []string{"application/pdf"}})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var resp pickFileResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Source == nil || resp.Source.Kind != domain.SourceFile {
		t.Fatalf("expected a file source, got %+v", resp.Source)
	}
	if resp.Source.URI != "content://media/docs/report.pdf" {
		t.Errorf("uri = %q", resp.Source.URI)
	}
	if !resp.Source.IsLargeFile {
		t.Error("picked file above the inline ceiling should be marked large")
	}
}

func TestPickFileHandlerCancelled(t *testing.T) {
	d := newTestDeps(&fakeBridge{})

	// Nil picked file means the user dismissed the native picker.
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	w := httptest.NewRecorder()
	PickFile(d)(w, req)
	if w.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", w.Code)
	}
}

func TestIconCandidatesHandler(t *testing.T) {
	d := newTestDeps(&fakeBridge{})

	req := iconCandidatesRequest{
		Source: &domain.ContentSource{Kind: domain.SourceShare, URI: "https://youtu.be/abc123"},
	}

	w := postJSON(t, IconCandidates(d), req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var resp iconCandidatesResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Candidates) == 0 {
		t.Error("candidate list must never be empty")
	}
	if resp.DisplayName != "YouTube" {
		t.Errorf("display name = %q, want YouTube", resp.DisplayName)
	}

	// Missing source is a client error.
	w = postJSON(t, IconCandidates(d), iconCandidatesRequest{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
