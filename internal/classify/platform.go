package classify

import (
	"net/url"
	"strings"
)

// DetectPlatform matches a URL's hostname against the platform table.
// Invalid or unparseable URLs yield (zero, false); never an error.
func DetectPlatform(rawURL string, t *Tables) (Platform, bool) {
	host := hostOf(rawURL)
	if host == "" {
		return Platform{}, false
	}

	for _, p := range t.Platforms {
		for _, pattern := range p.HostPatterns {
			if strings.Contains(host, pattern) {
				return p, true
			}
		}
	}
	return Platform{}, false
}

// hostOf extracts the lowercased hostname from a raw URL, tolerating missing
// schemes. Returns "" on any parse failure.
func hostOf(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return ""
	}
	if !strings.Contains(rawURL, "://") {
		rawURL = "https://" + rawURL
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Hostname())
}
