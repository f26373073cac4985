package content

// DefaultLegacyKeyMap translates HTML-attribute-style keys from the old
// static site to canonical dotted keys. The resolver applies it at most
// once per lookup.
var DefaultLegacyKeyMap = map[string]string{
	"nav-home":      "navigation.homeLink",
	"nav-about":     "navigation.aboutLink",
	"nav-ebooks":    "navigation.ebooksLink",
	"nav-posters":   "navigation.postersLink",
	"nav-contact":   "navigation.contactLink",
	"hero-title":    "home.heroTitle",
	"hero-subtitle": "home.heroSubtitle",
	"footer-text":   "global.footerText",
}
