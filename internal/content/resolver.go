package content

import (
	"context"
	"sync"
	"time"

	domain "tamilsangam-app/internal/domain/content"
	"tamilsangam-app/internal/prefs"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"
)

const (
	LangEnglish = "english"
	LangTamil   = "tamil"
)

// Resolver answers point lookups of display copy by dotted key against
// the page set loaded by LoadPage, with localization and a deterministic
// fallback chain. Lookups never fail: missing copy degrades to the
// caller-supplied fallback string so rendering can't break.
type Resolver struct {
	store Store
	cache Cache
	remap map[string]string
	prefs *prefs.Store

	retryDelay time.Duration

	mu       sync.RWMutex
	current  string
	language string
}

type Option func(*Resolver)

func WithCache(c Cache) Option {
	return func(r *Resolver) { r.cache = c }
}

// WithRemap replaces the legacy key table.
func WithRemap(m map[string]string) Option {
	return func(r *Resolver) { r.remap = m }
}

// WithPrefs persists the language choice and restores it at startup.
func WithPrefs(p *prefs.Store) Option {
	return func(r *Resolver) { r.prefs = p }
}

// WithRetryDelay shortens the fetch backoff; tests use this.
func WithRetryDelay(d time.Duration) Option {
	return func(r *Resolver) { r.retryDelay = d }
}

func NewResolver(store Store, opts ...Option) *Resolver {
	r := &Resolver{
		store:      store,
		cache:      NewMapCache(),
		remap:      DefaultLegacyKeyMap,
		retryDelay: time.Second,
		language:   LangEnglish,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.prefs != nil && r.prefs.Get(prefs.KeyLanguage, LangEnglish) == LangTamil {
		r.language = LangTamil
	}
	return r
}

// LoadPage fetches the page-scoped and global record sets, caches the
// combined result under the page name, and makes it current. On fetch
// failure it retries with backoff (1s then 2s) and finally serves the
// built-in fixture set; it never returns an error.
func (r *Resolver) LoadPage(ctx context.Context, page string) *PageSet {
	pageRecords, pageErr := r.fetchWithRetry(ctx, func(ctx context.Context) ([]domain.Record, error) {
		return r.store.FetchPage(ctx, page)
	})
	globalRecords, globalErr := r.fetchWithRetry(ctx, r.store.FetchGlobal)

	var set *PageSet
	if pageErr != nil || globalErr != nil {
		log.Warn().Str("page", page).AnErr("pageErr", pageErr).AnErr("globalErr", globalErr).
			Msg("content fetch failed, serving fixture content")
		set = fixtureSet(page)
	} else {
		records := make([]domain.Record, 0, len(pageRecords)+len(globalRecords))
		records = append(records, pageRecords...)
		records = append(records, globalRecords...)
		set = &PageSet{Page: page, Records: records}
	}

	r.cache.Set(page, set)

	r.mu.Lock()
	r.current = page
	r.mu.Unlock()

	return set
}

func (r *Resolver) fetchWithRetry(ctx context.Context, fn func(context.Context) ([]domain.Record, error)) ([]domain.Record, error) {
	var records []domain.Record
	err := retry.Do(func() error {
		var err error
		records, err = fn(ctx)
		return err
	},
		retry.Attempts(3),
		retry.Delay(r.retryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.Context(ctx),
	)
	return records, err
}

// Resolve looks key up in the current page set: exact sectionKey first,
// then the page/section split for dotted keys, then one pass through
// the legacy remap table. Unresolved keys return fallback unchanged.
func (r *Resolver) Resolve(key, fallback string) string {
	return r.resolve(key, fallback, false)
}

func (r *Resolver) resolve(key, fallback string, remapped bool) string {
	r.mu.RLock()
	current, lang := r.current, r.language
	r.mu.RUnlock()

	if set, ok := r.cache.Get(current); ok {
		for i := range set.Records {
			if set.Records[i].SectionKey == key {
				return localize(set.Records[i], lang, fallback)
			}
		}
		if page, section, ok := domain.SplitKey(key); ok {
			for i := range set.Records {
				if set.Records[i].Page == page && set.Records[i].Section == section {
					return localize(set.Records[i], lang, fallback)
				}
			}
		}
	}

	if !remapped {
		if canonical, ok := r.remap[key]; ok {
			return r.resolve(canonical, fallback, true)
		}
	}
	return fallback
}

func localize(rec domain.Record, lang, fallback string) string {
	if lang == LangTamil && rec.Content.Tamil != "" {
		return rec.Content.Tamil
	}
	if rec.Content.English != "" {
		return rec.Content.English
	}
	return fallback
}

// SetLanguage switches the language for subsequent Resolve calls and
// persists the choice. Cached content is not re-fetched.
func (r *Resolver) SetLanguage(lang string) {
	if lang != LangEnglish && lang != LangTamil {
		return
	}

	r.mu.Lock()
	r.language = lang
	r.mu.Unlock()

	if r.prefs != nil {
		if err := r.prefs.Set(prefs.KeyLanguage, lang); err != nil {
			log.Warn().Err(err).Msg("failed to persist language preference")
		}
	}
}

func (r *Resolver) Language() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.language
}

// Invalidate drops a cached page so the next LoadPage refetches it.
func (r *Resolver) Invalidate(page string) {
	r.cache.Invalidate(page)
}
