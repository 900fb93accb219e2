package models

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/iudanet/lmsdesk/pkg/api"
)

const (
	// DefaultDisplayName is shown when the profile carries no name at all.
	DefaultDisplayName = "User"
	// DefaultInitials are shown in the avatar badge before the profile is loaded.
	DefaultInitials = "JP"
)

// Profile представляет профиль студента
type Profile struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Avatar    string
}

// ProfileFromRecord конвертирует запись API в модель клиента
func ProfileFromRecord(rec api.ProfileRecord) Profile {
	return Profile{
		ID:        rec.ID,
		FirstName: rec.FirstName,
		LastName:  rec.LastName,
		Email:     rec.Email,
		Avatar:    rec.Avatar,
	}
}

// DisplayName returns the first name, falling back to the last name
// and then to DefaultDisplayName.
func (p Profile) DisplayName() string {
	if p.FirstName != "" {
		return p.FirstName
	}
	if full := strings.TrimSpace(p.LastName); full != "" {
		return full
	}
	return DefaultDisplayName
}

// Initials строит до двух заглавных инициалов из имени
func Initials(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultInitials
	}

	var b strings.Builder
	for _, part := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(part)
		b.WriteRune(unicode.ToUpper(r))
		if utf8.RuneCountInString(b.String()) == 2 {
			break
		}
	}
	return b.String()
}
