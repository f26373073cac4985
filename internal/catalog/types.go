package catalog

import (
	"math"

	domain "tamilsangam-app/internal/domain/catalog"
)

const (
	DefaultLimit = 12

	SortByPrice      = "price"
	SortByPopularity = "popularity"
	SortByTitle      = "title"
	SortByArtist     = "artist"
	SortByCreatedAt  = "createdAt"
)

// ListParams is the filter/sort/pagination spec built from the query
// string. Zero values mean "not set" except where noted.
type ListParams struct {
	Page  int
	Limit int

	Category string
	Artist   string
	Search   string
	Tags     []string

	MinPrice *float64
	MaxPrice *float64

	SortBy    string // price | popularity | title | artist | createdAt
	SortOrder string // asc | desc

	Featured     bool
	ShowInactive bool

	Language string // en | ta
}

// normalize fills defaults in place and clamps page/limit.
func (p *ListParams) normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	// Keep (page-1)*limit from overflowing; any page this large is past
	// the end of the collection anyway.
	if p.Page > math.MaxInt/p.Limit {
		p.Page = math.MaxInt / p.Limit
	}
	switch p.SortBy {
	case SortByPrice, SortByPopularity, SortByTitle, SortByArtist:
	default:
		p.SortBy = SortByCreatedAt
	}
	if p.SortOrder != "asc" {
		p.SortOrder = "desc"
	}
	if p.Language != "ta" {
		p.Language = "en"
	}
}

type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalItems  int64 `json:"totalItems"`
	Limit       int   `json:"limit"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Facets summarize the whole collection (not the filtered set) for the
// filter UI: distinct categories, distinct artists, base-price bounds.
type Facets struct {
	Categories []string   `json:"categories"`
	Artists    []string   `json:"artists"`
	PriceRange PriceRange `json:"priceRange"`
}

// PosterView is a Poster plus the display-only computed price fields.
type PosterView struct {
	domain.Poster
	DiscountedPrice float64 `json:"discountedPrice"`
	Savings         float64 `json:"savings"`
}

type ListResult struct {
	Items      []PosterView `json:"items"`
	Pagination Pagination   `json:"pagination"`
	Facets     Facets       `json:"facets"`
}
