package catalog

import (
	"context"
	"math"
	"testing"
	"time"

	domain "tamilsangam-app/internal/domain/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedRepo() *MemoryRepository {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	p1 := testPoster("p1", "traditional", "Meenakshi Raman", 25, 0)
	p1.Title = domain.LocalizedText{En: "Temple Dancer", Ta: "கோயில் நடனமணி"}
	p1.Tags = []string{"dance", "temple"}
	p1.CreatedAt = base

	p2 := testPoster("p2", "modern", "Priya Natarajan", 45, 0)
	p2.Title = domain.LocalizedText{En: "City Lights"}
	p2.Tags = []string{"city"}
	p2.IsFeatured = true
	p2.CreatedAt = base.AddDate(0, 0, 1)

	p3 := testPoster("p3", "festival", "Arjun Selvan", 35, 0)
	p3.Title = domain.LocalizedText{En: "Pongal Morning", Ta: "பொங்கல் காலை"}
	p3.Tags = []string{"pongal", "Harvest"}
	p3.IsActive = false
	p3.CreatedAt = base.AddDate(0, 0, 2)

	return NewMemoryRepository([]domain.Poster{p1, p2, p3})
}

func listAll(t *testing.T, repo *MemoryRepository, params ListParams) []domain.Poster {
	t.Helper()
	params.normalize()
	items, _, err := repo.List(context.Background(), params)
	require.NoError(t, err)
	return items
}

func ids(items []domain.Poster) []string {
	out := make([]string, len(items))
	for i, p := range items {
		out[i] = p.ID
	}
	return out
}

func TestMemoryRepoExcludesInactiveByDefault(t *testing.T) {
	repo := seedRepo()

	assert.ElementsMatch(t, []string{"p1", "p2"}, ids(listAll(t, repo, ListParams{})))
	assert.ElementsMatch(t, []string{"p1", "p2", "p3"}, ids(listAll(t, repo, ListParams{ShowInactive: true})))
}

func TestMemoryRepoFilters(t *testing.T) {
	repo := seedRepo()

	assert.Equal(t, []string{"p1"}, ids(listAll(t, repo, ListParams{Category: "trad"})), "substring category match")
	assert.Equal(t, []string{"p2"}, ids(listAll(t, repo, ListParams{Artist: "priya"})), "case-insensitive artist match")
	assert.Equal(t, []string{"p2"}, ids(listAll(t, repo, ListParams{Featured: true})))

	min, max := 30.0, 50.0
	assert.Equal(t, []string{"p2"}, ids(listAll(t, repo, ListParams{MinPrice: &min, MaxPrice: &max})))

	assert.Equal(t, []string{"p3"}, ids(listAll(t, repo, ListParams{ShowInactive: true, Tags: []string{"harvest"}})), "tag match ignores case")
}

func TestMemoryRepoSearch(t *testing.T) {
	repo := seedRepo()

	assert.Equal(t, []string{"p1"}, ids(listAll(t, repo, ListParams{Search: "dancer"})), "matches English title")
	assert.Equal(t, []string{"p1"}, ids(listAll(t, repo, ListParams{Search: "கோயில்", Language: "ta"})), "matches Tamil title")
	assert.Equal(t, []string{"p1"}, ids(listAll(t, repo, ListParams{Search: "temple"})), "matches tags")
	assert.Empty(t, listAll(t, repo, ListParams{Search: "no-such-thing"}))
}

func TestMemoryRepoSorting(t *testing.T) {
	repo := seedRepo()

	assert.Equal(t, []string{"p1", "p2"}, ids(listAll(t, repo, ListParams{SortBy: SortByPrice, SortOrder: "asc"})))
	assert.Equal(t, []string{"p2", "p1"}, ids(listAll(t, repo, ListParams{SortBy: SortByPrice, SortOrder: "desc"})))
	assert.Equal(t, []string{"p2", "p1"}, ids(listAll(t, repo, ListParams{SortBy: SortByTitle, SortOrder: "asc"})), "City Lights before Temple Dancer")
	assert.Equal(t, []string{"p2", "p1"}, ids(listAll(t, repo, ListParams{})), "default is newest first")
}

func TestMemoryRepoHugePageDoesNotPanic(t *testing.T) {
	repo := NewFixtureRepository()

	// (page-1)*limit wraps negative here without the slice guard.
	items, total, err := repo.List(context.Background(), ListParams{Page: math.MaxInt / 6, Limit: 12})
	require.NoError(t, err)

	assert.Empty(t, items)
	assert.Equal(t, int64(len(FixturePosters())), total)
}

func TestMemoryRepoFacets(t *testing.T) {
	repo := seedRepo()

	facets, err := repo.Facets(context.Background())
	require.NoError(t, err)

	// Facets span the whole collection, inactive included.
	assert.Equal(t, []string{"festival", "modern", "traditional"}, facets.Categories)
	assert.Equal(t, []string{"Arjun Selvan", "Meenakshi Raman", "Priya Natarajan"}, facets.Artists)
	assert.Equal(t, PriceRange{Min: 25, Max: 45}, facets.PriceRange)
}
