package content

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStoreFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/website-content/sections/home":
			w.Write([]byte(`{"data":[{"sectionKey":"home.heroTitle","page":"home","section":"heroTitle","content":{"english":"Welcome","tamil":"வரவேற்பு"}}]}`))
		case "/api/website-content/global":
			w.Write([]byte(`{"data":[{"sectionKey":"navigation.homeLink","page":"navigation","section":"homeLink","content":{"english":"Home"}}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	store := NewHTTPStore(srv.URL)

	records, err := store.FetchPage(context.Background(), "home")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "home.heroTitle", records[0].SectionKey)
	assert.Equal(t, "Welcome", records[0].Content.English)
	assert.Equal(t, "வரவேற்பு", records[0].Content.Tamil)

	global, err := store.FetchGlobal(context.Background())
	require.NoError(t, err)
	require.Len(t, global, 1)
	assert.Equal(t, "navigation.homeLink", global[0].SectionKey)
}

func TestHTTPStoreNon200IsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	store := NewHTTPStore(srv.URL)

	_, err := store.FetchPage(context.Background(), "home")
	assert.Error(t, err)
}

func TestResolverWithHTTPStore(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/api/website-content/global" {
			w.Write([]byte(`{"data":[]}`))
			return
		}
		w.Write([]byte(`{"data":[{"sectionKey":"contact.formTitle","page":"contact","section":"formTitle","content":{"english":"Write to us","tamil":"எங்களுக்கு எழுதுங்கள்"}}]}`))
	}))
	defer srv.Close()

	r := NewResolver(NewHTTPStore(srv.URL))
	r.LoadPage(context.Background(), "contact")

	assert.Equal(t, "Write to us", r.Resolve("contact.formTitle", "fallback"))
}
