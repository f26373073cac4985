package catalog

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"time"

	domain "tamilsangam-app/internal/domain/catalog"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Service answers the poster list query with filtering, sorting,
// pagination and facets, and handles create/update/delete. When the
// primary store fails on the read path it degrades to the fixture set;
// writes always surface their errors.
type Service struct {
	repo      Repository
	fixtures  *MemoryRepository
	uploadDir string
}

func NewService(repo Repository, uploadDir string) *Service {
	return &Service{
		repo:      repo,
		fixtures:  NewFixtureRepository(),
		uploadDir: uploadDir,
	}
}

func (s *Service) List(ctx context.Context, params ListParams) (*ListResult, error) {
	params.normalize()

	repo := s.repo
	items, total, err := repo.List(ctx, params)
	if err != nil {
		log.Warn().Err(err).Msg("poster store unavailable, serving fixture data")
		repo = s.fixtures
		items, total, err = repo.List(ctx, params)
		if err != nil {
			return nil, err
		}
	}

	// Facets come from whichever store answered the list, so fallback
	// responses stay internally consistent.
	facets, err := repo.Facets(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]PosterView, 0, len(items))
	for _, p := range items {
		views = append(views, PosterView{
			Poster:          p,
			DiscountedPrice: p.Pricing.DiscountedPrice(),
			Savings:         p.Pricing.Savings(),
		})
	}

	totalPages := int(math.Ceil(float64(total) / float64(params.Limit)))
	return &ListResult{
		Items: views,
		Pagination: Pagination{
			CurrentPage: params.Page,
			TotalPages:  totalPages,
			TotalItems:  total,
			Limit:       params.Limit,
			HasNextPage: params.Page < totalPages,
			HasPrevPage: params.Page > 1,
		},
		Facets: facets,
	}, nil
}

func (s *Service) Get(ctx context.Context, id string) (*PosterView, error) {
	p, err := s.repo.Get(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, &NotFoundError{ID: id}
	}
	if err != nil {
		return nil, err
	}
	return s.view(p), nil
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*PosterView, error) {
	if verr := in.validate(); verr != nil {
		return nil, verr
	}

	p := in.toPoster()
	p.ID = uuid.NewString()
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := s.repo.Create(ctx, &p); err != nil {
		return nil, err
	}
	return s.view(&p), nil
}

// Update is a shallow top-level merge with last-write-wins semantics;
// there is no conflict detection between concurrent writers.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*PosterView, error) {
	p, err := s.repo.Get(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, &NotFoundError{ID: id}
	}
	if err != nil {
		return nil, err
	}

	in.apply(p)
	p.UpdatedAt = time.Now()

	if err := s.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return s.view(p), nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return &NotFoundError{ID: id}
	}
	if err != nil {
		return err
	}

	// Best effort: a leftover upload directory never rolls back the
	// record deletion.
	if s.uploadDir != "" {
		dir := filepath.Join(s.uploadDir, id)
		if err := os.RemoveAll(dir); err != nil {
			log.Warn().Err(err).Str("dir", dir).Msg("failed to remove poster uploads")
		}
	}
	return nil
}

func (s *Service) view(p *domain.Poster) *PosterView {
	return &PosterView{
		Poster:          *p,
		DiscountedPrice: p.Pricing.DiscountedPrice(),
		Savings:         p.Pricing.Savings(),
	}
}
