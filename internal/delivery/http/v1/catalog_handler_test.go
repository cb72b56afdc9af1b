package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"voltbay-storefront/config"
	"voltbay-storefront/internal/domain"
	"voltbay-storefront/internal/infrastructure/cache"
	"voltbay-storefront/internal/repository/static"
	"voltbay-storefront/internal/usecase"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type productListResponse struct {
	Success bool              `json:"success"`
	Data    []domain.Product  `json:"data"`
	Meta    domain.Pagination `json:"meta"`
}

func newTestCatalogHandler(t *testing.T) *CatalogHandler {
	t.Helper()
	cfg := &config.Config{
		PageSize:         8,
		CacheProductTTL:  time.Minute,
		CacheCategoryTTL: time.Minute,
	}
	// No upstream: the handler serves the fallback snapshot.
	catalogUC := usecase.NewCatalogUsecase(nil, cache.NewMemoryCache(time.Minute, time.Hour), cfg)
	return NewCatalogHandler(catalogUC, usecase.NewBrowseUsecase(catalogUC), cfg)
}

func TestListProductsDefaults(t *testing.T) {
	h := newTestCatalogHandler(t)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	w := httptest.NewRecorder()
	h.ListProducts(w, r)

	require.Equal(t, http.StatusOK, w.Code)

	var resp productListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.Meta.Page)
	assert.Equal(t, 8, resp.Meta.Limit)
	assert.Equal(t, len(static.Products()), resp.Meta.TotalItems)
	assert.Len(t, resp.Data, 8)
}

func TestListProductsBrandFilterAndSort(t *testing.T) {
	h := newTestCatalogHandler(t)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/products?brands=Anker&sort=price-asc&limit=100", nil)
	w := httptest.NewRecorder()
	h.ListProducts(w, r)

	require.Equal(t, http.StatusOK, w.Code)

	var resp productListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data)

	last := 0.0
	for _, p := range resp.Data {
		assert.Equal(t, "Anker", p.Brand)
		assert.GreaterOrEqual(t, p.Price, last)
		last = p.Price
	}
}

func TestListProductsBadPageIs400(t *testing.T) {
	h := newTestCatalogHandler(t)

	for _, target := range []string{
		"/api/v1/products?page=0",
		"/api/v1/products?page=-3",
		"/api/v1/products?limit=0",
		"/api/v1/products?sort=reviews-desc",
		"/api/v1/products?price_min=500&price_max=100",
	} {
		r := httptest.NewRequest(http.MethodGet, target, nil)
		w := httptest.NewRecorder()
		h.ListProducts(w, r)
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
	}
}

func TestListProductsPastEndPageIsEmptyOK(t *testing.T) {
	h := newTestCatalogHandler(t)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/products?page=99", nil)
	w := httptest.NewRecorder()
	h.ListProducts(w, r)

	require.Equal(t, http.StatusOK, w.Code)

	var resp productListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Data)
	assert.Equal(t, len(static.Products()), resp.Meta.TotalItems)
}

func TestGetProductBySlug(t *testing.T) {
	h := newTestCatalogHandler(t)
	seed := static.Products()[0]

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/products/{slug}", h.GetProductBySlug)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/products/"+seed.Slug, nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	var got domain.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, seed.ID, got.ID)

	r = httptest.NewRequest(http.MethodGet, "/api/v1/products/no-such-slug", nil)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, r)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
