package posters

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"tamilsangam-app/internal/catalog"

	"github.com/gin-gonic/gin"
)

func listParamsFromQuery(c *gin.Context) catalog.ListParams {
	params := catalog.ListParams{
		Category:     c.Query("category"),
		Artist:       c.Query("artist"),
		Search:       c.Query("search"),
		SortBy:       c.DefaultQuery("sortBy", catalog.SortByCreatedAt),
		SortOrder:    c.DefaultQuery("sortOrder", "desc"),
		Featured:     c.Query("featured") == "true",
		ShowInactive: c.Query("showInactive") == "true",
		Language:     c.DefaultQuery("language", "en"),
	}

	params.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	params.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(catalog.DefaultLimit)))

	if v := c.Query("minPrice"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			params.MinPrice = &f
		}
	}
	if v := c.Query("maxPrice"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			params.MaxPrice = &f
		}
	}

	// tags may arrive repeated (?tags=a&tags=b) or comma-joined.
	tags := c.QueryArray("tags")
	if len(tags) == 1 && strings.Contains(tags[0], ",") {
		tags = strings.Split(tags[0], ",")
	}
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			params.Tags = append(params.Tags, t)
		}
	}

	return params
}

// parseCreateRequest accepts either a plain JSON body or a multipart
// form with a "data" JSON field plus an optional "image" file.
func parseCreateRequest(c *gin.Context) (catalog.CreateInput, *multipart.FileHeader, error) {
	var input catalog.CreateInput

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		data := c.PostForm("data")
		if data == "" {
			return input, nil, fmt.Errorf("missing data field")
		}
		if err := json.Unmarshal([]byte(data), &input); err != nil {
			return input, nil, fmt.Errorf("invalid data field: %w", err)
		}

		image, err := c.FormFile("image")
		if errors.Is(err, http.ErrMissingFile) {
			// image is optional
			return input, nil, nil
		}
		if err != nil {
			return input, nil, fmt.Errorf("invalid image upload: %w", err)
		}
		return input, image, nil
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		return input, nil, fmt.Errorf("invalid request body")
	}
	return input, nil, nil
}
