package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchColumnsCoalesceEmptyTamilToEnglish(t *testing.T) {
	title, desc := searchColumns("en")
	assert.Equal(t, "title_en", title)
	assert.Equal(t, "description_en", desc)

	// Tamil search must match items without Tamil text through their
	// English fields, like LocalizedText.In does in the memory
	// repository.
	title, desc = searchColumns("ta")
	assert.Equal(t, "COALESCE(NULLIF(title_ta, ''), title_en)", title)
	assert.Equal(t, "COALESCE(NULLIF(description_ta, ''), description_en)", desc)
}

func TestOrderClause(t *testing.T) {
	assert.Equal(t, "pricing_base_price ASC",
		orderClause(ListParams{SortBy: SortByPrice, SortOrder: "asc"}))
	assert.Equal(t, popularitySQL+" DESC",
		orderClause(ListParams{SortBy: SortByPopularity, SortOrder: "desc"}))
	assert.Equal(t, "created_at DESC",
		orderClause(ListParams{SortOrder: "desc"}))

	// Tamil title sort coalesces the same way the search predicate does.
	assert.Equal(t, "LOWER(COALESCE(NULLIF(title_ta, ''), title_en)) ASC",
		orderClause(ListParams{SortBy: SortByTitle, SortOrder: "asc", Language: "ta"}))
}
