package catalog

import (
	"context"

	domain "tamilsangam-app/internal/domain/catalog"
)

// Repository is the query interface both the Postgres store and the
// in-process fixture store satisfy, so fixture mode and live mode share
// one service code path.
type Repository interface {
	// List returns the filtered, sorted page of posters plus the total
	// count of the filtered set before pagination.
	List(ctx context.Context, params ListParams) ([]domain.Poster, int64, error)

	// Facets aggregates over the unfiltered collection.
	Facets(ctx context.Context) (Facets, error)

	Get(ctx context.Context, id string) (*domain.Poster, error)
	Create(ctx context.Context, p *domain.Poster) error
	Save(ctx context.Context, p *domain.Poster) error
	Delete(ctx context.Context, id string) error
}
