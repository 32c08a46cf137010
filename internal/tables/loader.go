package tables

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pindrop/pindrop/internal/classify"
)

// Loader handles loading and parsing of the routing tables YAML
type Loader struct {
	filePath string
}

// NewLoader creates a new tables loader
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
	}
}

// Load reads the tables file and merges it over the built-in defaults.
// Platform entries with a known key replace the default entry; new keys are
// appended. Extension entries override or extend the default MIME table.
func (l *Loader) Load() (*classify.Tables, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read tables file: %w", err)
	}

	var config FileConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse tables yaml: %w", err)
	}

	return Merge(config)
}

// Merge validates a file config and applies it over the built-in tables.
func Merge(config FileConfig) (*classify.Tables, error) {
	merged := classify.DefaultTables()

	for i, p := range config.Platforms {
		if p.Key == "" {
			return nil, fmt.Errorf("platform entry %d has no key", i)
		}
		if len(p.Hosts) == 0 {
			return nil, fmt.Errorf("platform %q has no host patterns", p.Key)
		}
		entry := classify.Platform{
			Key:          p.Key,
			HostPatterns: lowerAll(p.Hosts),
			FriendlyName: p.Name,
			Glyph:        p.Glyph,
		}
		if entry.FriendlyName == "" {
			entry.FriendlyName = p.Key
		}

		if at := platformIndex(merged.Platforms, p.Key); at != -1 {
			if entry.Glyph == "" {
				entry.Glyph = merged.Platforms[at].Glyph
			}
			merged.Platforms[at] = entry
		} else {
			merged.Platforms = append(merged.Platforms, entry)
		}
	}

	for ext, mimeType := range config.Extensions {
		ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if ext == "" || mimeType == "" {
			return nil, fmt.Errorf("invalid extension mapping %q -> %q", ext, mimeType)
		}
		merged.ExtMIME[ext] = mimeType
	}

	return merged, nil
}

func platformIndex(platforms []classify.Platform, key string) int {
	for i, p := range platforms {
		if p.Key == key {
			return i
		}
	}
	return -1
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
