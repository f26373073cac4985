package catalog

import (
	"context"
	"errors"
	"strings"

	domain "tamilsangam-app/internal/domain/catalog"

	"gorm.io/gorm"
)

// GormRepository answers catalog queries against Postgres.
type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

const tagMatchSQL = `EXISTS (SELECT 1 FROM jsonb_array_elements_text(tags) AS t(tag) WHERE t.tag ILIKE ?)`

func (r *GormRepository) filtered(ctx context.Context, params ListParams) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&domain.Poster{})

	if !params.ShowInactive {
		q = q.Where("is_active = ?", true)
	}
	if params.Featured {
		q = q.Where("is_featured = ?", true)
	}
	if params.Category != "" {
		q = q.Where("category ILIKE ?", "%"+params.Category+"%")
	}
	if params.Artist != "" {
		q = q.Where("artist ILIKE ?", "%"+params.Artist+"%")
	}
	// Price filters run against the base (list) price, not the
	// discounted price.
	if params.MinPrice != nil {
		q = q.Where("pricing_base_price >= ?", *params.MinPrice)
	}
	if params.MaxPrice != nil {
		q = q.Where("pricing_base_price <= ?", *params.MaxPrice)
	}

	if len(params.Tags) > 0 {
		conds := make([]string, 0, len(params.Tags))
		args := make([]interface{}, 0, len(params.Tags))
		for _, tag := range params.Tags {
			conds = append(conds, tagMatchSQL)
			args = append(args, tag)
		}
		q = q.Where("("+strings.Join(conds, " OR ")+")", args...)
	}

	if params.Search != "" {
		needle := "%" + params.Search + "%"
		title, desc := searchColumns(params.Language)
		q = q.Where(
			"("+title+" ILIKE ? OR "+desc+" ILIKE ? OR artist ILIKE ? OR "+tagMatchSQL+")",
			needle, needle, needle, needle,
		)
	}

	return q
}

// searchColumns picks the localized columns for search, coalescing
// empty Tamil to English exactly like LocalizedText.In does in the
// memory repository, so both modes match the same items.
func searchColumns(lang string) (title, desc string) {
	if lang == "ta" {
		return "COALESCE(NULLIF(title_ta, ''), title_en)",
			"COALESCE(NULLIF(description_ta, ''), description_en)"
	}
	return "title_en", "description_en"
}

const popularitySQL = `(stats_views * 0.1 + stats_downloads * 2 + stats_likes * 1.5 + stats_sales * 5)`

func orderClause(params ListParams) string {
	dir := "DESC"
	if params.SortOrder == "asc" {
		dir = "ASC"
	}

	var col string
	switch params.SortBy {
	case SortByPrice:
		col = "pricing_base_price"
	case SortByPopularity:
		col = popularitySQL
	case SortByTitle:
		if params.Language == "ta" {
			col = "LOWER(COALESCE(NULLIF(title_ta, ''), title_en))"
		} else {
			col = "LOWER(title_en)"
		}
	case SortByArtist:
		col = "LOWER(artist)"
	default:
		col = "created_at"
	}
	return col + " " + dir
}

func (r *GormRepository) List(ctx context.Context, params ListParams) ([]domain.Poster, int64, error) {
	var total int64
	if err := r.filtered(ctx, params).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []domain.Poster
	err := r.filtered(ctx, params).
		Order(orderClause(params)).
		Offset((params.Page - 1) * params.Limit).
		Limit(params.Limit).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *GormRepository) Facets(ctx context.Context) (Facets, error) {
	facets := Facets{Categories: []string{}, Artists: []string{}}

	db := r.db.WithContext(ctx).Model(&domain.Poster{})
	if err := db.Distinct().Order("category ASC").Pluck("category", &facets.Categories).Error; err != nil {
		return facets, err
	}

	db = r.db.WithContext(ctx).Model(&domain.Poster{})
	if err := db.Distinct().Order("artist ASC").Pluck("artist", &facets.Artists).Error; err != nil {
		return facets, err
	}

	err := r.db.WithContext(ctx).Model(&domain.Poster{}).
		Select("COALESCE(MIN(pricing_base_price), 0) AS min, COALESCE(MAX(pricing_base_price), 0) AS max").
		Scan(&facets.PriceRange).Error
	return facets, err
}

func (r *GormRepository) Get(ctx context.Context, id string) (*domain.Poster, error) {
	var p domain.Poster
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *GormRepository) Create(ctx context.Context, p *domain.Poster) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *GormRepository) Save(ctx context.Context, p *domain.Poster) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *GormRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&domain.Poster{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
