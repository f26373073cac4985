package catalog

import (
	"context"
	"sort"
	"strings"
	"sync"

	domain "tamilsangam-app/internal/domain/catalog"
)

// MemoryRepository keeps posters in a slice. It backs fixture mode and
// tests, and implements the same operator set as the Postgres store.
type MemoryRepository struct {
	mu      sync.RWMutex
	posters []domain.Poster
}

func NewMemoryRepository(seed []domain.Poster) *MemoryRepository {
	r := &MemoryRepository{posters: make([]domain.Poster, len(seed))}
	copy(r.posters, seed)
	return r
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func matches(p domain.Poster, params ListParams) bool {
	if !params.ShowInactive && !p.IsActive {
		return false
	}
	if params.Featured && !p.IsFeatured {
		return false
	}
	if params.Category != "" && !containsFold(p.Category, params.Category) {
		return false
	}
	if params.Artist != "" && !containsFold(p.Artist, params.Artist) {
		return false
	}
	if params.MinPrice != nil && p.Pricing.BasePrice < *params.MinPrice {
		return false
	}
	if params.MaxPrice != nil && p.Pricing.BasePrice > *params.MaxPrice {
		return false
	}

	if len(params.Tags) > 0 {
		found := false
	tags:
		for _, want := range params.Tags {
			for _, tag := range p.Tags {
				if strings.EqualFold(tag, want) {
					found = true
					break tags
				}
			}
		}
		if !found {
			return false
		}
	}

	if params.Search != "" {
		if !searchMatches(p, params.Search, params.Language) {
			return false
		}
	}
	return true
}

func searchMatches(p domain.Poster, needle, lang string) bool {
	if containsFold(p.Title.In(lang), needle) ||
		containsFold(p.Description.In(lang), needle) ||
		containsFold(p.Artist, needle) {
		return true
	}
	for _, tag := range p.Tags {
		if containsFold(tag, needle) {
			return true
		}
	}
	return false
}

func sortPosters(items []domain.Poster, params ListParams) {
	asc := params.SortOrder == "asc"

	less := func(a, b domain.Poster) bool {
		switch params.SortBy {
		case SortByPrice:
			return a.Pricing.BasePrice < b.Pricing.BasePrice
		case SortByPopularity:
			return a.Stats.PopularityScore() < b.Stats.PopularityScore()
		case SortByTitle:
			return strings.ToLower(a.Title.In(params.Language)) < strings.ToLower(b.Title.In(params.Language))
		case SortByArtist:
			return strings.ToLower(a.Artist) < strings.ToLower(b.Artist)
		default:
			return a.CreatedAt.Before(b.CreatedAt)
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		if asc {
			return less(items[i], items[j])
		}
		return less(items[j], items[i])
	})
}

func (r *MemoryRepository) List(ctx context.Context, params ListParams) ([]domain.Poster, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	filtered := make([]domain.Poster, 0, len(r.posters))
	for _, p := range r.posters {
		if matches(p, params) {
			filtered = append(filtered, p)
		}
	}

	sortPosters(filtered, params)

	total := int64(len(filtered))
	start := (params.Page - 1) * params.Limit
	// start goes negative when page*limit overflows; either way the
	// requested page is past the end.
	if start < 0 || start >= len(filtered) {
		return []domain.Poster{}, total, nil
	}
	end := start + params.Limit
	if end > len(filtered) {
		end = len(filtered)
	}

	page := make([]domain.Poster, end-start)
	copy(page, filtered[start:end])
	return page, total, nil
}

func (r *MemoryRepository) Facets(ctx context.Context) (Facets, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	facets := Facets{Categories: []string{}, Artists: []string{}}
	catSeen := map[string]bool{}
	artistSeen := map[string]bool{}

	for i, p := range r.posters {
		if !catSeen[p.Category] {
			catSeen[p.Category] = true
			facets.Categories = append(facets.Categories, p.Category)
		}
		if !artistSeen[p.Artist] {
			artistSeen[p.Artist] = true
			facets.Artists = append(facets.Artists, p.Artist)
		}
		price := p.Pricing.BasePrice
		if i == 0 || price < facets.PriceRange.Min {
			facets.PriceRange.Min = price
		}
		if price > facets.PriceRange.Max {
			facets.PriceRange.Max = price
		}
	}

	sort.Strings(facets.Categories)
	sort.Strings(facets.Artists)
	return facets, nil
}

func (r *MemoryRepository) Get(ctx context.Context, id string) (*domain.Poster, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.posters {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryRepository) Create(ctx context.Context, p *domain.Poster) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.posters = append(r.posters, *p)
	return nil
}

func (r *MemoryRepository) Save(ctx context.Context, p *domain.Poster) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.posters {
		if r.posters[i].ID == p.ID {
			r.posters[i] = *p
			return nil
		}
	}
	return ErrNotFound
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.posters {
		if r.posters[i].ID == id {
			r.posters = append(r.posters[:i], r.posters[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
