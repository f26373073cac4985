package catalog

import (
	"time"

	domain "tamilsangam-app/internal/domain/catalog"
)

// FixturePosters is the small dataset served when Postgres is
// unreachable or mock mode is on. Kept deliberately tiny.
func FixturePosters() []domain.Poster {
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	return []domain.Poster{
		{
			ID:          "fixture-bharatanatyam",
			Title:       domain.LocalizedText{En: "Bharatanatyam Dancer", Ta: "பரதநாட்டிய நடனமணி"},
			Description: domain.LocalizedText{En: "Classical dance pose in temple setting", Ta: "கோயில் பின்னணியில் பாரம்பரிய நடனம்"},
			Artist:      "Meenakshi Raman",
			Category:    "traditional",
			Tags:        []string{"dance", "temple", "classical"},
			Dimensions:  domain.Dimensions{Width: 18, Height: 24, Unit: "inches"},
			File:        domain.FileAsset{URL: "/fixtures/bharatanatyam.jpg", Format: "jpg", Resolution: "300dpi", ColorSpace: "sRGB"},
			Pricing:     domain.Pricing{BasePrice: 25, PrintPrice: 40, Discount: 20, Currency: "INR"},
			IsActive:    true,
			IsFeatured:  true,
			Stock:       10,
			Stats:       domain.Stats{Views: 420, Downloads: 12, Likes: 35, Sales: 8},
			CreatedAt:   base,
			UpdatedAt:   base,
		},
		{
			ID:          "fixture-thirukkural",
			Title:       domain.LocalizedText{En: "Thirukkural Verses", Ta: "திருக்குறள் வரிகள்"},
			Description: domain.LocalizedText{En: "Calligraphy of selected couplets", Ta: "தேர்ந்தெடுத்த குறள்களின் எழுத்தோவியம்"},
			Artist:      "Arjun Selvan",
			Category:    "traditional",
			Tags:        []string{"literature", "calligraphy"},
			Dimensions:  domain.Dimensions{Width: 12, Height: 18, Unit: "inches"},
			File:        domain.FileAsset{URL: "/fixtures/thirukkural.png", Format: "png", Resolution: "300dpi", ColorSpace: "sRGB"},
			Pricing:     domain.Pricing{BasePrice: 15, PrintPrice: 25, Discount: 0, Currency: "INR"},
			IsActive:    true,
			Stock:       25,
			Stats:       domain.Stats{Views: 210, Downloads: 30, Likes: 18, Sales: 4},
			CreatedAt:   base.AddDate(0, 0, 7),
			UpdatedAt:   base.AddDate(0, 0, 7),
		},
		{
			ID:          "fixture-pongal",
			Title:       domain.LocalizedText{En: "Pongal Celebration", Ta: "பொங்கல் கொண்டாட்டம்"},
			Description: domain.LocalizedText{En: "Harvest festival morning scene", Ta: "அறுவடைத் திருநாள் காலைக்காட்சி"},
			Artist:      "Meenakshi Raman",
			Category:    "festival",
			Tags:        []string{"pongal", "harvest"},
			Dimensions:  domain.Dimensions{Width: 24, Height: 36, Unit: "inches"},
			File:        domain.FileAsset{URL: "/fixtures/pongal.jpg", Format: "jpg", Resolution: "300dpi", ColorSpace: "sRGB"},
			Pricing:     domain.Pricing{BasePrice: 35, PrintPrice: 55, Discount: 10, Currency: "INR"},
			IsActive:    true,
			IsFeatured:  true,
			Stock:       5,
			Stats:       domain.Stats{Views: 890, Downloads: 22, Likes: 60, Sales: 15},
			CreatedAt:   base.AddDate(0, 1, 0),
			UpdatedAt:   base.AddDate(0, 1, 0),
		},
		{
			ID:          "fixture-chennai-skyline",
			Title:       domain.LocalizedText{En: "Chennai Skyline"},
			Description: domain.LocalizedText{En: "Modern cityscape at dusk"},
			Artist:      "Priya Natarajan",
			Category:    "modern",
			Tags:        []string{"city", "skyline"},
			Dimensions:  domain.Dimensions{Width: 36, Height: 24, Unit: "inches"},
			File:        domain.FileAsset{URL: "/fixtures/chennai.webp", Format: "webp", Resolution: "150dpi", ColorSpace: "sRGB"},
			Pricing:     domain.Pricing{BasePrice: 45, PrintPrice: 70, Discount: 0, Currency: "INR"},
			IsActive:    true,
			Stock:       12,
			Stats:       domain.Stats{Views: 150, Downloads: 5, Likes: 9, Sales: 1},
			CreatedAt:   base.AddDate(0, 1, 15),
			UpdatedAt:   base.AddDate(0, 1, 15),
		},
	}
}

// NewFixtureRepository returns a memory repository pre-seeded with the
// fixture dataset.
func NewFixtureRepository() *MemoryRepository {
	return NewMemoryRepository(FixturePosters())
}
