// Package intent converts finalized shortcut records into native launch
// directives: action, target URI, MIME type, and proxy routing flags. It
// enforces the size and URI-lifetime policy and may reject a build with a
// typed failure.
package intent

import (
	"fmt"
	"strings"

	"github.com/pindrop/pindrop/internal/classify"
	"github.com/pindrop/pindrop/internal/domain"
	"github.com/pindrop/pindrop/internal/logger"
)

// Policy carries the hard constraints applied during directive construction.
type Policy struct {
	// VideoMaxBytes rejects video shortcuts above this size.
	VideoMaxBytes int64
	// InlineMaxBytes is the inline byte payload ceiling.
	InlineMaxBytes int64
	// TransientSchemes are process-local URI schemes that will not survive a
	// restart (blob-style references).
	TransientSchemes []string
}

// DefaultTransientSchemes lists the blob-style schemes rejected without an
// inline payload.
var DefaultTransientSchemes = []string{"blob"}

// Builder builds launch directives for finalized shortcuts.
type Builder struct {
	policy Policy
	logger logger.Logger
}

func NewBuilder(policy Policy, log logger.Logger) *Builder {
	if len(policy.TransientSchemes) == 0 {
		policy.TransientSchemes = DefaultTransientSchemes
	}
	return &Builder{policy: policy, logger: log}
}

// Build constructs the launch directive for rec. src is the original content
// payload for freshly created file shortcuts (nil otherwise); caps is the
// pre-flighted call capability, consumed as a pure input so routing stays
// side-effect free.
//
// Policy violations come back as typed errors: *domain.SizeExceededError for
// oversized videos, domain.ErrDeadTransientURI for blob-style references with
// no inline bytes.
func (b *Builder) Build(rec *domain.ShortcutData, src *domain.ContentSource, t *classify.Tables, caps CallCapability) (*domain.LaunchDirective, error) {
	if rec == nil {
		return nil, fmt.Errorf("nil shortcut record")
	}

	var d *domain.LaunchDirective
	var err error

	switch rec.Category {
	case domain.CategoryContact:
		d, err = b.buildContact(rec, caps)
	case domain.CategoryMessage:
		d, err = b.buildMessage(rec)
	case domain.CategoryLink:
		d = &domain.LaunchDirective{Action: domain.ActionView, DataURI: rec.URI}
	case domain.CategoryFile:
		d, err = b.buildFile(rec, src, t)
	default:
		return nil, fmt.Errorf("unknown shortcut category: %q", rec.Category)
	}
	if err != nil {
		return nil, err
	}

	d.Icon = b.packageIcon(rec)
	return d, nil
}

// buildContact routes a dial through the permission-checked proxy when call
// permission is granted, else through the OS dialer.
func (b *Builder) buildContact(rec *domain.ShortcutData, caps CallCapability) (*domain.LaunchDirective, error) {
	if rec.PhoneNumber == "" {
		return nil, fmt.Errorf("contact shortcut %q has no phone number", rec.Label)
	}
	action := domain.ActionDial
	if caps.Granted {
		action = domain.ActionCallProxy
	}
	return &domain.LaunchDirective{
		Action:  action,
		DataURI: "tel:" + strings.TrimSpace(rec.PhoneNumber),
	}, nil
}

// buildFile resolves the MIME type, applies the size/lifetime policy, and
// picks proxy routing for file shortcuts.
func (b *Builder) buildFile(rec *domain.ShortcutData, src *domain.ContentSource, t *classify.Tables) (*domain.LaunchDirective, error) {
	mimeType := b.resolveMIME(rec, t)

	// Hard constraint: no shortcut for oversized videos, regardless of flags.
	if strings.HasPrefix(mimeType, "video/") && rec.FileSize > b.policy.VideoMaxBytes {
		return nil, &domain.SizeExceededError{Size: rec.FileSize, Ceiling: b.policy.VideoMaxBytes}
	}

	// Hard constraint: a transient reference with no inline bytes would pin a
	// dead shortcut.
	var inline []byte
	if src != nil {
		inline = src.FileData
	}
	if b.isTransientURI(rec.URI) && len(inline) == 0 {
		return nil, domain.ErrDeadTransientURI
	}

	d := &domain.LaunchDirective{
		Action:          domain.ActionView,
		DataURI:         rec.URI,
		MimeType:        mimeType,
		InlineFileBytes: inline,
	}

	switch {
	case strings.HasPrefix(mimeType, "video/"):
		d.UseVideoProxy = true
	case b.isPDF(rec, mimeType):
		d.UsePdfProxy = true
		d.ResumeEnabled = rec.ResumeEnabled
	}
	return d, nil
}

// resolveMIME prefers the explicit record MIME type, then the extension
// table, then a coarse category wildcard.
func (b *Builder) resolveMIME(rec *domain.ShortcutData, t *classify.Tables) string {
	if mt := strings.TrimSpace(rec.MimeType); mt != "" {
		return mt
	}
	if mt := classify.MIMEForFilename(rec.URI, t); mt != "" {
		return mt
	}
	if mt := classify.MIMEForFilename(rec.FileName, t); mt != "" {
		return mt
	}
	name := rec.FileName
	if name == "" {
		name = rec.URI
	}
	return classify.WildcardForCategory(classify.ClassifyFile("", name, t))
}

// isPDF detects PDF targets by MIME string, URI extension, or filename
// extension; any one match is sufficient.
func (b *Builder) isPDF(rec *domain.ShortcutData, mimeType string) bool {
	if strings.Contains(strings.ToLower(mimeType), "pdf") {
		return true
	}
	return hasExt(rec.URI, "pdf") || hasExt(rec.FileName, "pdf")
}

func (b *Builder) isTransientURI(uri string) bool {
	lower := strings.ToLower(uri)
	for _, scheme := range b.policy.TransientSchemes {
		if strings.HasPrefix(lower, scheme+":") {
			return true
		}
	}
	return false
}

func hasExt(name, ext string) bool {
	if name == "" {
		return false
	}
	if i := strings.IndexAny(name, "?#"); i != -1 {
		name = name[:i]
	}
	return strings.HasSuffix(strings.ToLower(name), "."+ext)
}
