package content

import (
	"strings"
	"time"
)

// GlobalPage is the page name under which cross-page records
// (navigation, footer, common labels) are stored.
const GlobalPage = "global"

// Text is the bilingual body of a content record. English is always
// populated; Tamil is optional.
type Text struct {
	English string `gorm:"not null" json:"english"`
	Tamil   string `json:"tamil,omitempty"`
}

// Record is a single localized piece of display copy, addressed by a
// dotted section key such as "home.heroTitle". Page and Section are the
// decomposed form kept for legacy lookups.
type Record struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"-"`

	SectionKey string `gorm:"not null;uniqueIndex" json:"sectionKey"`
	Page       string `gorm:"not null;index" json:"page"`
	Section    string `gorm:"not null" json:"section"`

	Content Text `gorm:"embedded;embeddedPrefix:content_" json:"content"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// SplitKey decomposes a dotted key into (page, section). The section may
// itself contain dots ("home.hero.title" → "home", "hero.title").
func SplitKey(key string) (page, section string, ok bool) {
	i := strings.Index(key, ".")
	if i <= 0 || i == len(key)-1 {
		return "", "", false
	}
	return key[:i], key[i+1:], true
}
