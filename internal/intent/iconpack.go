package intent

import (
	"encoding/base64"
	"strings"

	"github.com/pindrop/pindrop/internal/domain"
	"github.com/pindrop/pindrop/internal/logger"
)

// packageIcon normalizes the record's icon to exactly one transport form
// before handoff: inline bytes extracted from a data-URI, raw record bytes
// when the icon value is itself a non-persistent reference, or a plain URI
// string as a last resort. Emoji and text icons pass through as literals.
func (b *Builder) packageIcon(rec *domain.ShortcutData) domain.IconTransport {
	ic := rec.Icon

	if ic.Type != domain.IconThumbnail {
		return domain.IconTransport{Type: ic.Type, Ref: ic.Value}
	}

	if data, ok := decodeDataURI(ic.Value); ok {
		return domain.IconTransport{Type: ic.Type, Bytes: data}
	}

	if len(rec.ThumbnailData) > 0 && b.isTransientURI(ic.Value) {
		return domain.IconTransport{Type: ic.Type, Bytes: rec.ThumbnailData}
	}

	b.logger.Warn("passing icon as plain URI, reference may not survive restart",
		logger.String("shortcut_id", rec.ID),
		logger.String("icon_ref", ic.Value))
	return domain.IconTransport{Type: ic.Type, Ref: ic.Value}
}

// decodeDataURI extracts the byte payload of a base64 data-URI.
func decodeDataURI(value string) ([]byte, bool) {
	if !strings.HasPrefix(value, "data:") {
		return nil, false
	}
	comma := strings.IndexByte(value, ',')
	if comma == -1 {
		return nil, false
	}
	meta := value[:comma]
	if !strings.HasSuffix(meta, ";base64") {
		return nil, false
	}
	data, err := base64.StdEncoding.DecodeString(value[comma+1:])
	if err != nil {
		return nil, false
	}
	return data, true
}
