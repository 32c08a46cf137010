package intent

import (
	"fmt"
	"strings"

	"github.com/pindrop/pindrop/internal/domain"
)

// Messaging apps with dedicated deep-link schemes.
const (
	MessagingWhatsApp = "whatsapp"
	MessagingTelegram = "telegram"
	MessagingSlack    = "slack"
	MessagingSMS      = "sms"
)

// buildMessage builds a deep link into the selected messaging app using its
// own URI scheme. The workspace variant (Slack) needs team and channel
// identifiers and falls back to opening the bare app if either is missing.
func (b *Builder) buildMessage(rec *domain.ShortcutData) (*domain.LaunchDirective, error) {
	app := strings.ToLower(strings.TrimSpace(rec.MessagingApp))

	var target string
	switch app {
	case MessagingWhatsApp:
		number := phoneDigits(rec.PhoneNumber)
		if number == "" {
			return nil, fmt.Errorf("whatsapp shortcut %q has no phone number", rec.Label)
		}
		target = "https://wa.me/" + number
	case MessagingTelegram:
		number := phoneDigits(rec.PhoneNumber)
		if number == "" {
			return nil, fmt.Errorf("telegram shortcut %q has no phone number", rec.Label)
		}
		target = "tg://resolve?phone=" + number
	case MessagingSlack:
		if rec.TeamID == "" || rec.ChannelID == "" {
			// Workspace identifiers incomplete: open the app itself.
			target = "slack://open"
		} else {
			target = fmt.Sprintf("slack://channel?team=%s&id=%s", rec.TeamID, rec.ChannelID)
		}
	case MessagingSMS, "":
		if rec.PhoneNumber == "" {
			return nil, fmt.Errorf("message shortcut %q has no phone number", rec.Label)
		}
		target = "sms:" + strings.TrimSpace(rec.PhoneNumber)
	default:
		return nil, fmt.Errorf("unknown messaging app: %q", rec.MessagingApp)
	}

	return &domain.LaunchDirective{Action: domain.ActionView, DataURI: target}, nil
}

// phoneDigits keeps digits only; deep-link schemes reject formatting.
func phoneDigits(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
