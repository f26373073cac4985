package catalog

import (
	"math"
	"time"
)

// LocalizedText holds the English and Tamil variants of a display string.
// English is always populated; Tamil is optional.
type LocalizedText struct {
	En string `json:"en"`
	Ta string `json:"ta,omitempty"`
}

// In returns the variant for lang ("en" | "ta"), falling back to English
// when no Tamil text exists.
func (t LocalizedText) In(lang string) string {
	if lang == "ta" && t.Ta != "" {
		return t.Ta
	}
	return t.En
}

type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Unit   string  `json:"unit"`
}

type FileAsset struct {
	URL        string `json:"url"`
	Format     string `json:"format"`
	Resolution string `json:"resolution"`
	Size       int64  `json:"size"`
	ColorSpace string `gorm:"column:color_space" json:"colorSpace"`
}

type Pricing struct {
	BasePrice  float64 `gorm:"not null;default:0" json:"basePrice"`
	PrintPrice float64 `gorm:"not null;default:0" json:"printPrice"`
	// Percentage, 0–100.
	Discount float64 `gorm:"not null;default:0" json:"discount"`
	Currency string  `gorm:"not null;default:'INR'" json:"currency"`
}

// DiscountedPrice applies the percentage discount to the base price,
// rounded to 2 decimals for display.
func (p Pricing) DiscountedPrice() float64 {
	if p.Discount > 0 {
		return round2(p.BasePrice * (1 - p.Discount/100))
	}
	return p.BasePrice
}

// Savings is the display difference between base and discounted price.
func (p Pricing) Savings() float64 {
	if p.Discount > 0 {
		return round2(p.BasePrice - p.DiscountedPrice())
	}
	return 0
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

type PrintOptions struct {
	PaperTypes []string `json:"paperTypes"`
	Sizes      []string `json:"sizes"`
	Finishes   []string `json:"finishes"`
}

type SEO struct {
	MetaTitle       string   `json:"metaTitle,omitempty"`
	MetaDescription string   `json:"metaDescription,omitempty"`
	Keywords        []string `json:"keywords,omitempty"`
}

// Stats are engagement counters incremented elsewhere; the catalog only
// reads them for popularity ranking.
type Stats struct {
	Views     int64 `gorm:"not null;default:0" json:"views"`
	Downloads int64 `gorm:"not null;default:0" json:"downloads"`
	Likes     int64 `gorm:"not null;default:0" json:"likes"`
	Sales     int64 `gorm:"not null;default:0" json:"sales"`
}

// PopularityScore weighs purchases highest and raw views lowest,
// reflecting business value rather than traffic.
func (s Stats) PopularityScore() float64 {
	return float64(s.Views)*0.1 + float64(s.Downloads)*2 + float64(s.Likes)*1.5 + float64(s.Sales)*5
}

type Poster struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Title       LocalizedText `gorm:"embedded;embeddedPrefix:title_" json:"title"`
	Description LocalizedText `gorm:"embedded;embeddedPrefix:description_" json:"description"`

	Artist string `gorm:"not null;index" json:"artist"`
	// Normalized to lowercase on write.
	Category string   `gorm:"not null;index" json:"category"`
	Tags     []string `gorm:"type:jsonb;serializer:json" json:"tags"`

	Dimensions Dimensions `gorm:"embedded;embeddedPrefix:dim_" json:"dimensions"`
	File       FileAsset  `gorm:"embedded;embeddedPrefix:file_" json:"file"`
	Pricing    Pricing    `gorm:"embedded;embeddedPrefix:pricing_" json:"pricing"`

	IsActive   bool `gorm:"not null;default:true" json:"isActive"`
	IsFeatured bool `gorm:"not null;default:false" json:"isFeatured"`
	Stock      int  `gorm:"not null;default:0" json:"stock"`

	PrintOptions PrintOptions `gorm:"type:jsonb;serializer:json" json:"printOptions"`
	SEO          SEO          `gorm:"type:jsonb;serializer:json" json:"seo"`

	Stats Stats `gorm:"embedded;embeddedPrefix:stats_" json:"stats"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
