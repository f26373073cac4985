package content

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	domain "tamilsangam-app/internal/domain/content"
	"tamilsangam-app/internal/prefs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStore struct {
	pageRecords   map[string][]domain.Record
	globalRecords []domain.Record
	err           error

	pageCalls   int
	globalCalls int
}

func (s *stubStore) FetchPage(ctx context.Context, page string) ([]domain.Record, error) {
	s.pageCalls++
	if s.err != nil {
		return nil, s.err
	}
	return s.pageRecords[page], nil
}

func (s *stubStore) FetchGlobal(ctx context.Context) ([]domain.Record, error) {
	s.globalCalls++
	if s.err != nil {
		return nil, s.err
	}
	return s.globalRecords, nil
}

func record(key, english, tamil string) domain.Record {
	page, section, _ := domain.SplitKey(key)
	return domain.Record{
		SectionKey: key,
		Page:       page,
		Section:    section,
		Content:    domain.Text{English: english, Tamil: tamil},
	}
}

func homeStore() *stubStore {
	return &stubStore{
		pageRecords: map[string][]domain.Record{
			"home": {
				record("home.heroTitle", "Welcome", "வரவேற்பு"),
			},
		},
		globalRecords: []domain.Record{
			record("navigation.homeLink", "Home", "முகப்பு"),
		},
	}
}

func TestResolveLocalization(t *testing.T) {
	r := NewResolver(homeStore(), WithRetryDelay(time.Millisecond))
	r.LoadPage(context.Background(), "home")

	assert.Equal(t, "Welcome", r.Resolve("home.heroTitle", "fallback"))

	r.SetLanguage(LangTamil)
	assert.Equal(t, "வரவேற்பு", r.Resolve("home.heroTitle", "fallback"))

	// Tamil missing falls back to English, not the caller fallback.
	store := homeStore()
	store.pageRecords["home"] = []domain.Record{record("home.aboutText", "About us", "")}
	r2 := NewResolver(store, WithRetryDelay(time.Millisecond))
	r2.LoadPage(context.Background(), "home")
	r2.SetLanguage(LangTamil)
	assert.Equal(t, "About us", r2.Resolve("home.aboutText", "fallback"))
}

func TestResolveAbsentKeyReturnsFallback(t *testing.T) {
	r := NewResolver(homeStore(), WithRetryDelay(time.Millisecond))
	r.LoadPage(context.Background(), "home")

	assert.Equal(t, "fallback", r.Resolve("home.noSuchKey", "fallback"))
	assert.Equal(t, "", r.Resolve("home.noSuchKey", ""))
}

func TestResolveGlobalRecordsIncluded(t *testing.T) {
	r := NewResolver(homeStore(), WithRetryDelay(time.Millisecond))
	r.LoadPage(context.Background(), "home")

	assert.Equal(t, "Home", r.Resolve("navigation.homeLink", "fallback"))
}

func TestResolvePageSectionSplit(t *testing.T) {
	store := homeStore()
	// Record whose sectionKey doesn't match but whose decomposed
	// page/section fields do.
	store.pageRecords["home"] = []domain.Record{{
		SectionKey: "legacy_home_subtitle",
		Page:       "home",
		Section:    "heroSubtitle",
		Content:    domain.Text{English: "Our community"},
	}}

	r := NewResolver(store, WithRetryDelay(time.Millisecond))
	r.LoadPage(context.Background(), "home")

	assert.Equal(t, "Our community", r.Resolve("home.heroSubtitle", "fallback"))
}

func TestLegacyRemapAppliedOnce(t *testing.T) {
	r := NewResolver(homeStore(), WithRetryDelay(time.Millisecond))
	r.LoadPage(context.Background(), "home")

	assert.Equal(t, "Home", r.Resolve("nav-home", "fallback"))

	// A remap chain never recurses more than one hop.
	looping := NewResolver(homeStore(),
		WithRetryDelay(time.Millisecond),
		WithRemap(map[string]string{"loop": "loop", "hop": "loop"}),
	)
	looping.LoadPage(context.Background(), "home")
	assert.Equal(t, "fallback", looping.Resolve("loop", "fallback"))
	assert.Equal(t, "fallback", looping.Resolve("hop", "fallback"))
}

func TestLoadPageRetriesThenServesFixtures(t *testing.T) {
	store := &stubStore{err: errors.New("connection refused")}
	r := NewResolver(store, WithRetryDelay(time.Millisecond))

	set := r.LoadPage(context.Background(), "home")

	require.NotNil(t, set)
	assert.Equal(t, 3, store.pageCalls, "two retries after the initial attempt")
	assert.NotEmpty(t, set.Records)
	assert.Equal(t, "Preserving Tamil Arts and Culture", r.Resolve("home.heroTitle", "fallback"))
}

func TestLoadPageFixtureForUnknownPageIsEmpty(t *testing.T) {
	store := &stubStore{err: errors.New("connection refused")}
	r := NewResolver(store, WithRetryDelay(time.Millisecond))

	set := r.LoadPage(context.Background(), "ebooks")

	require.NotNil(t, set)
	assert.Empty(t, set.Records)
	assert.Equal(t, "fallback", r.Resolve("ebooks.title", "fallback"))
}

func TestLoadPageOverwritesCacheEntry(t *testing.T) {
	store := homeStore()
	cache := NewMapCache()
	r := NewResolver(store, WithRetryDelay(time.Millisecond), WithCache(cache))

	r.LoadPage(context.Background(), "home")
	assert.Equal(t, "Welcome", r.Resolve("home.heroTitle", "fallback"))

	store.pageRecords["home"] = []domain.Record{record("home.heroTitle", "Updated welcome", "")}
	r.LoadPage(context.Background(), "home")
	assert.Equal(t, "Updated welcome", r.Resolve("home.heroTitle", "fallback"))
}

func TestInvalidateDropsCachedPage(t *testing.T) {
	r := NewResolver(homeStore(), WithRetryDelay(time.Millisecond))
	r.LoadPage(context.Background(), "home")
	require.Equal(t, "Welcome", r.Resolve("home.heroTitle", "fallback"))

	r.Invalidate("home")
	assert.Equal(t, "fallback", r.Resolve("home.heroTitle", "fallback"))
}

func TestLanguagePreferencePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.json")

	store, err := prefs.Open(path)
	require.NoError(t, err)

	r := NewResolver(homeStore(), WithRetryDelay(time.Millisecond), WithPrefs(store))
	assert.Equal(t, LangEnglish, r.Language())

	r.SetLanguage(LangTamil)

	reopened, err := prefs.Open(path)
	require.NoError(t, err)
	r2 := NewResolver(homeStore(), WithRetryDelay(time.Millisecond), WithPrefs(reopened))
	assert.Equal(t, LangTamil, r2.Language())
}

func TestSetLanguageRejectsUnknownValues(t *testing.T) {
	r := NewResolver(homeStore(), WithRetryDelay(time.Millisecond))
	r.SetLanguage("french")
	assert.Equal(t, LangEnglish, r.Language())
}
