package catalog

import (
	"strings"

	domain "tamilsangam-app/internal/domain/catalog"
)

// CreateInput carries all fields an admin may set when creating a
// poster. Missing optional fields get catalog defaults.
type CreateInput struct {
	Title       domain.LocalizedText `json:"title"`
	Description domain.LocalizedText `json:"description"`
	Artist      string               `json:"artist"`
	Category    string               `json:"category"`
	Tags        []string             `json:"tags"`

	Dimensions domain.Dimensions `json:"dimensions"`
	File       domain.FileAsset  `json:"file"`
	Pricing    domain.Pricing    `json:"pricing"`

	IsActive   *bool `json:"isActive"`
	IsFeatured bool  `json:"isFeatured"`
	Stock      int   `json:"stock"`

	PrintOptions *domain.PrintOptions `json:"printOptions"`
	SEO          domain.SEO           `json:"seo"`
}

// validate reports every missing required field at once.
func (in CreateInput) validate() *ValidationError {
	var missing []string
	if in.Title.En == "" {
		missing = append(missing, "title")
	}
	if in.Description.En == "" {
		missing = append(missing, "description")
	}
	if in.Artist == "" {
		missing = append(missing, "artist")
	}
	if in.Category == "" {
		missing = append(missing, "category")
	}
	if in.Dimensions.Width <= 0 {
		missing = append(missing, "dimensions.width")
	}
	if in.Dimensions.Height <= 0 {
		missing = append(missing, "dimensions.height")
	}
	if in.Pricing.BasePrice <= 0 {
		missing = append(missing, "pricing.basePrice")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

var defaultPrintOptions = domain.PrintOptions{
	PaperTypes: []string{"matte", "glossy", "art-paper"},
	Sizes:      []string{"A4", "A3", "13x19"},
	Finishes:   []string{"standard", "laminated"},
}

// toPoster normalizes the input into a full entity: category lowercased,
// defaults filled, stats zeroed. Identity and timestamps are assigned by
// the service.
func (in CreateInput) toPoster() domain.Poster {
	p := domain.Poster{
		Title:       in.Title,
		Description: in.Description,
		Artist:      in.Artist,
		Category:    strings.ToLower(in.Category),
		Tags:        in.Tags,
		Dimensions:  in.Dimensions,
		File:        in.File,
		Pricing:     in.Pricing,
		IsActive:    true,
		IsFeatured:  in.IsFeatured,
		Stock:       in.Stock,
		SEO:         in.SEO,
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if p.Dimensions.Unit == "" {
		p.Dimensions.Unit = "inches"
	}
	if p.Pricing.Currency == "" {
		p.Pricing.Currency = "INR"
	}
	if in.PrintOptions != nil {
		p.PrintOptions = *in.PrintOptions
	} else {
		p.PrintOptions = defaultPrintOptions
	}
	return p
}

// UpdateInput is a partial update: nil fields are left untouched, set
// fields replace the whole top-level value. Nested objects are never
// deep-merged; callers resend the entire nested object they change.
type UpdateInput struct {
	Title       *domain.LocalizedText `json:"title"`
	Description *domain.LocalizedText `json:"description"`
	Artist      *string               `json:"artist"`
	Category    *string               `json:"category"`
	Tags        *[]string             `json:"tags"`

	Dimensions *domain.Dimensions `json:"dimensions"`
	File       *domain.FileAsset  `json:"file"`
	Pricing    *domain.Pricing    `json:"pricing"`

	IsActive   *bool `json:"isActive"`
	IsFeatured *bool `json:"isFeatured"`
	Stock      *int  `json:"stock"`

	PrintOptions *domain.PrintOptions `json:"printOptions"`
	SEO          *domain.SEO          `json:"seo"`
}

func (in UpdateInput) apply(p *domain.Poster) {
	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Artist != nil {
		p.Artist = *in.Artist
	}
	if in.Category != nil {
		p.Category = strings.ToLower(*in.Category)
	}
	if in.Tags != nil {
		p.Tags = *in.Tags
	}
	if in.Dimensions != nil {
		p.Dimensions = *in.Dimensions
	}
	if in.File != nil {
		p.File = *in.File
	}
	if in.Pricing != nil {
		p.Pricing = *in.Pricing
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	if in.IsFeatured != nil {
		p.IsFeatured = *in.IsFeatured
	}
	if in.Stock != nil {
		p.Stock = *in.Stock
	}
	if in.PrintOptions != nil {
		p.PrintOptions = *in.PrintOptions
	}
	if in.SEO != nil {
		p.SEO = *in.SEO
	}
}
