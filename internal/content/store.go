package content

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	domain "tamilsangam-app/internal/domain/content"
)

// Store fetches content records from the website-content service.
type Store interface {
	FetchPage(ctx context.Context, page string) ([]domain.Record, error)
	FetchGlobal(ctx context.Context) ([]domain.Record, error)
}

// HTTPStore reads the website-content REST endpoints.
type HTTPStore struct {
	baseURL string
	client  *http.Client
}

func NewHTTPStore(baseURL string) *HTTPStore {
	return &HTTPStore{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *HTTPStore) FetchPage(ctx context.Context, page string) ([]domain.Record, error) {
	return s.fetch(ctx, s.baseURL+"/api/website-content/sections/"+page)
}

func (s *HTTPStore) FetchGlobal(ctx context.Context) ([]domain.Record, error) {
	return s.fetch(ctx, s.baseURL+"/api/website-content/global")
}

func (s *HTTPStore) fetch(ctx context.Context, url string) ([]domain.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("content service returned %d for %s", resp.StatusCode, url)
	}

	var body struct {
		Data []domain.Record `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	return body.Data, nil
}
