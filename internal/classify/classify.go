package classify

import (
	"path"
	"strings"
)

// CategoryForMIME maps a MIME type to a file category by prefix.
// Returns ("", false) when the MIME type alone is not decisive.
func CategoryForMIME(mimeType string) (FileCategory, bool) {
	mt := strings.ToLower(strings.TrimSpace(mimeType))
	switch {
	case mt == "":
		return "", false
	case strings.HasPrefix(mt, "image/"):
		return CategoryImage, true
	case strings.HasPrefix(mt, "video/"):
		return CategoryVideo, true
	case strings.HasPrefix(mt, "audio/"):
		return CategoryAudio, true
	case mt == "application/pdf" || strings.Contains(mt, "pdf"):
		return CategoryPDF, true
	case strings.HasPrefix(mt, "text/"):
		return CategoryDocument, true
	}
	return "", false
}

// ClassifyFile derives a file category from the MIME type first, falling back
// to the extension table. Unknown inputs default to document. Total: never
// fails, only returns a safe default.
func ClassifyFile(mimeType, filename string, t *Tables) FileCategory {
	if cat, ok := CategoryForMIME(mimeType); ok {
		return cat
	}
	if mt := MIMEForFilename(filename, t); mt != "" {
		if cat, ok := CategoryForMIME(mt); ok {
			return cat
		}
	}
	return CategoryDocument
}

// MIMEForFilename resolves a MIME type from a filename or URI extension,
// case-insensitively. Returns "" for unknown extensions.
func MIMEForFilename(filename string, t *Tables) string {
	ext := extOf(filename)
	if ext == "" {
		return ""
	}
	return t.ExtMIME[ext]
}

// WildcardForCategory returns the coarse wildcard MIME type used when no
// exact type can be resolved for a file shortcut.
func WildcardForCategory(cat FileCategory) string {
	switch cat {
	case CategoryImage:
		return "image/*"
	case CategoryVideo:
		return "video/*"
	case CategoryPDF:
		return "application/pdf"
	default:
		return "*/*"
	}
}

// extOf extracts the lowercased extension (without dot) from a filename or
// URI, stripping any query/fragment noise first.
func extOf(name string) string {
	if name == "" {
		return ""
	}
	if i := strings.IndexAny(name, "?#"); i != -1 {
		name = name[:i]
	}
	ext := path.Ext(path.Base(name))
	if ext == "" {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
