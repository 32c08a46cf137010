// Package icon resolves the ranked list of icon candidates for a content
// source. Consumers try candidates in order until one renders; the list is
// deduplicated and always ends in a glyph that cannot fail to render.
package icon

import (
	"encoding/base64"
	"strings"

	"github.com/pindrop/pindrop/internal/classify"
	"github.com/pindrop/pindrop/internal/domain"
)

// CandidateKind tells the consumer how to render a candidate.
type CandidateKind string

const (
	// KindImage is an image reference (data-URI or plain URI) to try loading.
	KindImage CandidateKind = "image"
	// KindGlyph is an emoji/glyph rendered directly; it never fails.
	KindGlyph CandidateKind = "glyph"
)

// Candidate is one icon option.
type Candidate struct {
	Kind  CandidateKind `json:"kind"`
	Value string        `json:"value"`
}

// Category glyph defaults; platform glyphs from the routing tables take
// precedence for recognized link platforms.
var categoryGlyphs = map[classify.FileCategory]string{
	classify.CategoryImage:    "🖼️",
	classify.CategoryVideo:    "🎬",
	classify.CategoryPDF:      "📄",
	classify.CategoryDocument: "📃",
	classify.CategoryAudio:    "🎵",
}

// LinkGlyph is the default glyph for unrecognized link destinations.
const LinkGlyph = "🔗"

type producer func() (Candidate, bool)

// Candidates returns the ranked, deduplicated icon candidates for a source.
// thumbnail is any already-produced data-URI preview. The result is never
// empty: the last entry is always a renderable glyph.
func Candidates(src *domain.ContentSource, thumbnail string, t *classify.Tables) []Candidate {
	producers := []producer{
		func() (Candidate, bool) { return embeddedThumbnail(thumbnail) },
		func() (Candidate, bool) { return storedBytesThumbnail(src) },
		func() (Candidate, bool) { return originalImageURI(src, t) },
		func() (Candidate, bool) { return platformGlyph(src, t) },
		func() (Candidate, bool) { return Candidate{Kind: KindGlyph, Value: FallbackGlyph(src, t)}, true },
	}

	out := make([]Candidate, 0, len(producers))
	seen := make(map[string]bool, len(producers))
	for _, produce := range producers {
		c, ok := produce()
		if !ok || c.Value == "" || seen[c.Value] {
			continue
		}
		seen[c.Value] = true
		out = append(out, c)
	}
	return out
}

// embeddedThumbnail surfaces a thumbnail already wrapped as a data-URI.
func embeddedThumbnail(thumbnail string) (Candidate, bool) {
	if !strings.HasPrefix(thumbnail, "data:") {
		return Candidate{}, false
	}
	return Candidate{Kind: KindImage, Value: thumbnail}, true
}

// storedBytesThumbnail wraps raw preview bytes held on the record as a
// data-URI.
func storedBytesThumbnail(src *domain.ContentSource) (Candidate, bool) {
	if src == nil || len(src.ThumbnailData) == 0 {
		return Candidate{}, false
	}
	encoded := base64.StdEncoding.EncodeToString(src.ThumbnailData)
	return Candidate{Kind: KindImage, Value: "data:image/jpeg;base64," + encoded}, true
}

// originalImageURI offers the content URI itself, but only for image MIME
// types: anything else would be unloadable as an icon.
func originalImageURI(src *domain.ContentSource, t *classify.Tables) (Candidate, bool) {
	if src == nil || src.URI == "" {
		return Candidate{}, false
	}
	if classify.ClassifyFile(src.MimeType, src.Name, t) != classify.CategoryImage {
		return Candidate{}, false
	}
	return Candidate{Kind: KindImage, Value: src.URI}, true
}

// platformGlyph surfaces the platform-specific glyph for recognized link
// destinations.
func platformGlyph(src *domain.ContentSource, t *classify.Tables) (Candidate, bool) {
	if src == nil || (src.Kind != domain.SourceURL && src.Kind != domain.SourceShare) {
		return Candidate{}, false
	}
	p, ok := classify.DetectPlatform(src.URI, t)
	if !ok || p.Glyph == "" {
		return Candidate{}, false
	}
	return Candidate{Kind: KindGlyph, Value: p.Glyph}, true
}

// FallbackGlyph returns the terminal glyph for a source: the category emoji
// for files, the chain-link glyph for links and anything unrecognized.
func FallbackGlyph(src *domain.ContentSource, t *classify.Tables) string {
	if src == nil {
		return LinkGlyph
	}
	switch src.Kind {
	case domain.SourceFile:
		if g, ok := categoryGlyphs[classify.ClassifyFile(src.MimeType, src.Name, t)]; ok {
			return g
		}
	case domain.SourceContact:
		return "👤"
	}
	return LinkGlyph
}
