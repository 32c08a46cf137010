package clipboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pindrop/pindrop/internal/logger"
)

type fakeReader struct {
	text string
	err  error
}

func (f *fakeReader) ReadClipboardText(ctx context.Context) (string, error) {
	return f.text, f.err
}

// fakeLedger keeps entries in memory with their record time.
type fakeLedger struct {
	entries map[string]time.Time
	err     error
	now     time.Time
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{entries: make(map[string]time.Time), now: time.Now()}
}

func (f *fakeLedger) SeenURL(ctx context.Context, url string, window time.Duration) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	at, ok := f.entries[url]
	if !ok {
		return false, nil
	}
	return f.now.Sub(at) < window, nil
}

func (f *fakeLedger) RecordURL(ctx context.Context, url string) error {
	if f.err != nil {
		return f.err
	}
	f.entries[url] = f.now
	return nil
}

func newTestDetector(r *fakeReader, l Ledger) *Detector {
	return NewDetector(r, l, time.Hour, logger.New("error", false))
}

func TestCheckSurfacesFreshURL(t *testing.T) {
	ledger := newFakeLedger()
	d := newTestDetector(&fakeReader{text: "https://example.com/article"}, ledger)

	got := d.Check(context.Background(), true)
	if got != "https://example.com/article" {
		t.Fatalf("Check() = %q, want the clipboard url", got)
	}
	if _, ok := ledger.entries[got]; !ok {
		t.Error("surfaced url should be recorded in the ledger")
	}
}

func TestCheckCooldownSuppressesRepeat(t *testing.T) {
	ledger := newFakeLedger()
	d := newTestDetector(&fakeReader{text: "https://example.com/article"}, ledger)

	if got := d.Check(context.Background(), true); got == "" {
		t.Fatal("first check should surface the url")
	}
	if got := d.Check(context.Background(), true); got != "" {
		t.Errorf("second check within cooldown should be suppressed, got %q", got)
	}
}

func TestCheckResurfacesAfterCooldown(t *testing.T) {
	ledger := newFakeLedger()
	d := newTestDetector(&fakeReader{text: "https://example.com/article"}, ledger)

	if got := d.Check(context.Background(), true); got == "" {
		t.Fatal("first check should surface the url")
	}

	// Age the ledger entry past the cooldown window.
	ledger.entries["https://example.com/article"] = ledger.now.Add(-2 * time.Hour)

	if got := d.Check(context.Background(), true); got == "" {
		t.Error("url should resurface once the cooldown has expired")
	}
}

func TestCheckMountFiresOnce(t *testing.T) {
	ledger := newFakeLedger()
	reader := &fakeReader{text: "https://first.example.com"}
	d := newTestDetector(reader, ledger)

	if got := d.Check(context.Background(), false); got == "" {
		t.Fatal("mount trigger should fire the first time")
	}

	reader.text = "https://second.example.com"
	if got := d.Check(context.Background(), false); got != "" {
		t.Errorf("mount trigger must not fire twice, got %q", got)
	}

	// Foreground triggers still work after mount.
	if got := d.Check(context.Background(), true); got != "https://second.example.com" {
		t.Errorf("foreground trigger should still fire, got %q", got)
	}
}

func TestCheckReadFailureIsSilent(t *testing.T) {
	d := newTestDetector(&fakeReader{err: errors.New("permission denied")}, newFakeLedger())

	if got := d.Check(context.Background(), true); got != "" {
		t.Errorf("read failure should yield no suggestion, got %q", got)
	}
}

func TestCheckLedgerFailureSuppresses(t *testing.T) {
	ledger := newFakeLedger()
	ledger.err = errors.New("redis down")
	d := newTestDetector(&fakeReader{text: "https://example.com"}, ledger)

	if got := d.Check(context.Background(), true); got != "" {
		t.Errorf("ledger failure should suppress the suggestion, got %q", got)
	}
}

func TestCheckExtractsAndCoerces(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "url inside prose",
			text: "look at this https://example.com/post now",
			want: "https://example.com/post",
		},
		{
			name: "bare host coerced",
			text: "example.com",
			want: "https://example.com",
		},
		{
			name: "plain prose ignored",
			text: "grocery list: milk eggs",
			want: "",
		},
		{
			name: "empty clipboard",
			text: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDetector(&fakeReader{text: tt.text}, newFakeLedger())
			if got := d.Check(context.Background(), true); got != tt.want {
				t.Errorf("Check(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
