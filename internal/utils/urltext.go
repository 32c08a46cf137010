package utils

import (
	"net/url"
	"strings"
)

// DefaultURLScheme is prepended when coercing bare host-like text into a URL.
const DefaultURLScheme = "https"

// urlBoundary reports whether r terminates a URL token embedded in free text.
func urlBoundary(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '"', '\'', '<', '>', '(', ')', '[', ']', '{', '}':
		return true
	}
	return false
}

// ExtractFirstURL scans free-form text for the first http(s) token and returns
// it, cut at the first whitespace/quote/bracket boundary. Returns "" when the
// text contains no well-formed URL.
func ExtractFirstURL(text string) string {
	// Scheme matching must stay on the original bytes: folding the whole
	// text can change byte offsets when multi-byte runes case-fold.
	idx := indexFold(text, "http://")
	if hs := indexFold(text, "https://"); hs != -1 && (idx == -1 || hs < idx) {
		idx = hs
	}
	if idx == -1 {
		return ""
	}

	candidate := text[idx:]
	if end := strings.IndexFunc(candidate, urlBoundary); end != -1 {
		candidate = candidate[:end]
	}
	// Trailing punctuation is almost always sentence punctuation, not URL.
	candidate = strings.TrimRight(candidate, ".,;")

	if !IsWellFormedURL(candidate) {
		return ""
	}
	return candidate
}

// CoerceURL turns bare host-like text (contains a dot, no scheme) into a URL
// by prefixing the default scheme. Only a result that parses as a valid URL is
// accepted; anything else yields "".
func CoerceURL(text string) string {
	text = strings.TrimSpace(text)
	if text == "" || strings.ContainsAny(text, " \t\n\r") {
		return ""
	}
	if !strings.Contains(text, ".") || strings.Contains(text, "://") {
		return ""
	}

	candidate := DefaultURLScheme + "://" + text
	if !IsWellFormedURL(candidate) {
		return ""
	}
	return candidate
}

// indexFold returns the byte index of the first case-insensitive occurrence
// of sub in s, or -1. sub is expected to be plain ASCII.
func indexFold(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if strings.EqualFold(s[i:i+len(sub)], sub) {
			return i
		}
	}
	return -1
}

// IsWellFormedURL reports whether s parses as an absolute http(s) URL with a host.
func IsWellFormedURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}
