package classify

// FileCategory is the coarse content category derived from MIME type or
// file extension.
type FileCategory string

const (
	CategoryImage    FileCategory = "image"
	CategoryVideo    FileCategory = "video"
	CategoryPDF      FileCategory = "pdf"
	CategoryDocument FileCategory = "document"
	CategoryAudio    FileCategory = "audio"
)

// Platform is one recognized link destination (video/social/OTT service).
type Platform struct {
	// Key is the stable platform identifier (ex: "youtube").
	Key string
	// HostPatterns are hostname substrings that identify the platform.
	HostPatterns []string
	// FriendlyName is the display name used for link shortcuts.
	FriendlyName string
	// Glyph overrides the category emoji for this platform's icons.
	Glyph string
}

// Tables is an immutable snapshot of the routing tables the classifier and
// intent builder consult. Reloads swap the whole snapshot; a snapshot is never
// mutated after construction.
type Tables struct {
	// Platforms are matched in order; the first hostname hit wins.
	Platforms []Platform
	// ExtMIME maps lowercased file extensions (without dot) to MIME types.
	ExtMIME map[string]string
}

// DefaultTables returns the built-in routing tables.
func DefaultTables() *Tables {
	return &Tables{
		Platforms: []Platform{
			{Key: "youtube", HostPatterns: []string{"youtube.com", "youtu.be"}, FriendlyName: "YouTube", Glyph: "▶️"},
			{Key: "vimeo", HostPatterns: []string{"vimeo.com"}, FriendlyName: "Vimeo", Glyph: "▶️"},
			{Key: "dailymotion", HostPatterns: []string{"dailymotion.com"}, FriendlyName: "Dailymotion", Glyph: "▶️"},
			{Key: "twitch", HostPatterns: []string{"twitch.tv"}, FriendlyName: "Twitch", Glyph: "🎮"},
			{Key: "netflix", HostPatterns: []string{"netflix.com"}, FriendlyName: "Netflix", Glyph: "🎬"},
			{Key: "primevideo", HostPatterns: []string{"primevideo.com"}, FriendlyName: "Prime Video", Glyph: "🎬"},
			{Key: "disneyplus", HostPatterns: []string{"disneyplus.com", "hotstar.com"}, FriendlyName: "Disney+", Glyph: "🎬"},
			{Key: "spotify", HostPatterns: []string{"spotify.com"}, FriendlyName: "Spotify", Glyph: "🎵"},
			{Key: "soundcloud", HostPatterns: []string{"soundcloud.com"}, FriendlyName: "SoundCloud", Glyph: "🎵"},
			{Key: "instagram", HostPatterns: []string{"instagram.com"}, FriendlyName: "Instagram", Glyph: "📷"},
			{Key: "facebook", HostPatterns: []string{"facebook.com", "fb.watch"}, FriendlyName: "Facebook", Glyph: "👥"},
			{Key: "twitter", HostPatterns: []string{"twitter.com", "x.com"}, FriendlyName: "X", Glyph: "🐦"},
			{Key: "tiktok", HostPatterns: []string{"tiktok.com"}, FriendlyName: "TikTok", Glyph: "🎵"},
			{Key: "reddit", HostPatterns: []string{"reddit.com"}, FriendlyName: "Reddit", Glyph: "🤖"},
			{Key: "linkedin", HostPatterns: []string{"linkedin.com"}, FriendlyName: "LinkedIn", Glyph: "💼"},
			{Key: "whatsapp", HostPatterns: []string{"wa.me", "whatsapp.com"}, FriendlyName: "WhatsApp", Glyph: "💬"},
			{Key: "telegram", HostPatterns: []string{"t.me", "telegram.org"}, FriendlyName: "Telegram", Glyph: "💬"},
		},
		ExtMIME: map[string]string{
			// images
			"jpg":  "image/jpeg",
			"jpeg": "image/jpeg",
			"png":  "image/png",
			"gif":  "image/gif",
			"webp": "image/webp",
			"bmp":  "image/bmp",
			"heic": "image/heic",
			"svg":  "image/svg+xml",
			// video
			"mp4":  "video/mp4",
			"mkv":  "video/x-matroska",
			"avi":  "video/x-msvideo",
			"mov":  "video/quicktime",
			"webm": "video/webm",
			"3gp":  "video/3gpp",
			// audio
			"mp3":  "audio/mpeg",
			"wav":  "audio/wav",
			"ogg":  "audio/ogg",
			"m4a":  "audio/mp4",
			"flac": "audio/flac",
			// documents
			"pdf":  "application/pdf",
			"doc":  "application/msword",
			"docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
			"xls":  "application/vnd.ms-excel",
			"xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			"ppt":  "application/vnd.ms-powerpoint",
			"pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
			"txt":  "text/plain",
			"csv":  "text/csv",
			"rtf":  "application/rtf",
			"odt":  "application/vnd.oasis.opendocument.text",
		},
	}
}
