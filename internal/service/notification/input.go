package notification

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/studio-backend/internal/domain"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const maxDescriptionLen = 200

// ValidEmail reports whether s looks like a deliverable address.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// RecipientEntry is one element of a bulk replace. Clients send either a bare
// address or an object; both end up here.
type RecipientEntry struct {
	Email       string
	IsEnabled   *bool
	Description string
}

// UpdateInput holds the keys of a settings update. Nil means "not provided".
type UpdateInput struct {
	Emails  *[]RecipientEntry
	Enabled *bool
}

// Validate rejects an update that provides nothing.
func (i UpdateInput) Validate() error {
	if i.Emails == nil && i.Enabled == nil {
		return domain.NewValidationError("settings", "未提供任何有效的更新数据")
	}
	return nil
}

// NormalizeRecipients trims entries, drops invalid or empty addresses and
// keeps only the first of duplicate addresses. is_enabled defaults to true.
func NormalizeRecipients(entries []RecipientEntry) []domain.RecipientInput {
	seen := make(map[string]bool, len(entries))
	out := make([]domain.RecipientInput, 0, len(entries))
	for _, e := range entries {
		email := strings.TrimSpace(e.Email)
		if email == "" || !ValidEmail(email) {
			continue
		}
		key := domain.NormalizeText(email)
		if seen[key] {
			continue
		}
		seen[key] = true

		enabled := true
		if e.IsEnabled != nil {
			enabled = *e.IsEnabled
		}
		desc := strings.TrimSpace(e.Description)
		if utf8.RuneCountInString(desc) > maxDescriptionLen {
			desc = string([]rune(desc)[:maxDescriptionLen])
		}
		out = append(out, domain.RecipientInput{Email: email, IsEnabled: enabled, Description: desc})
	}
	return out
}
