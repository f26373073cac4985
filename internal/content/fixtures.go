package content

import domain "tamilsangam-app/internal/domain/content"

// fixtureSets are the built-in degraded-mode record sets, scoped per
// page. Only home and navigation ship fixtures; other pages degrade to
// an empty set and rely on caller fallbacks.
var fixtureSets = map[string][]domain.Record{
	"home": {
		{
			SectionKey: "home.heroTitle",
			Page:       "home", Section: "heroTitle",
			Content: domain.Text{English: "Preserving Tamil Arts and Culture", Tamil: "தமிழ் கலை பண்பாட்டைக் காப்போம்"},
		},
		{
			SectionKey: "home.heroSubtitle",
			Page:       "home", Section: "heroSubtitle",
			Content: domain.Text{English: "Ebooks, posters and events from our community", Tamil: "எங்கள் சமூகத்தின் மின்னூல்கள், சுவரொட்டிகள் மற்றும் நிகழ்வுகள்"},
		},
	},
	"navigation": {
		{
			SectionKey: "navigation.homeLink",
			Page:       "navigation", Section: "homeLink",
			Content: domain.Text{English: "Home", Tamil: "முகப்பு"},
		},
		{
			SectionKey: "navigation.aboutLink",
			Page:       "navigation", Section: "aboutLink",
			Content: domain.Text{English: "About Us", Tamil: "எங்களைப் பற்றி"},
		},
		{
			SectionKey: "navigation.contactLink",
			Page:       "navigation", Section: "contactLink",
			Content: domain.Text{English: "Contact", Tamil: "தொடர்பு"},
		},
	},
}

func fixtureSet(page string) *PageSet {
	records := fixtureSets[page]
	if records == nil {
		records = []domain.Record{}
	}
	return &PageSet{Page: page, Records: records}
}
