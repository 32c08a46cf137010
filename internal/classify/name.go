package classify

import (
	"path"
	"strings"

	"github.com/pindrop/pindrop/internal/domain"
)

// DefaultDisplayName is the generic placeholder used when nothing better can
// be derived from a source.
const DefaultDisplayName = "Shortcut"

// ExtractDisplayName derives a display name for a source. It prefers an
// explicit name; for links it uses a recognized platform's friendly name,
// else the bare hostname; for files, the filename stem. Never fails: any
// parse problem falls back to the generic placeholder.
func ExtractDisplayName(src *domain.ContentSource, t *Tables) string {
	if src == nil {
		return DefaultDisplayName
	}

	if name := strings.TrimSpace(src.Name); name != "" {
		if src.Kind == domain.SourceFile {
			return stem(name)
		}
		return name
	}

	switch src.Kind {
	case domain.SourceURL, domain.SourceShare:
		if p, ok := DetectPlatform(src.URI, t); ok {
			return p.FriendlyName
		}
		if host := hostOf(src.URI); host != "" {
			return host
		}
	case domain.SourceFile:
		if base := path.Base(strings.TrimSpace(src.URI)); base != "" && base != "." && base != "/" {
			if s := stem(base); s != "" {
				return s
			}
		}
	case domain.SourceContact:
		if name := strings.TrimSpace(src.ContactName); name != "" {
			return name
		}
		if src.PhoneNumber != "" {
			return src.PhoneNumber
		}
	}

	return DefaultDisplayName
}

// stem strips the extension from a filename.
func stem(name string) string {
	if ext := path.Ext(name); ext != "" && ext != name {
		return strings.TrimSuffix(name, ext)
	}
	return name
}
