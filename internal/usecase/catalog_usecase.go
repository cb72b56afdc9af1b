package usecase

import (
	"context"
	"sync"
	"voltbay-storefront/config"
	"voltbay-storefront/internal/domain"
	"voltbay-storefront/internal/repository/static"
	"voltbay-storefront/pkg/cache"
	"voltbay-storefront/pkg/logger"
)

const categoriesCacheKey = "catalog:categories"

// CatalogUsecase owns the in-memory catalog snapshot. It boots from the
// compiled-in fallback set and swaps the whole snapshot when an upstream
// refresh succeeds with a non-empty result. Partial merges never happen:
// the snapshot is all-fallback or all-fetched.
type CatalogUsecase struct {
	api   domain.CatalogAPI
	cache cache.CacheService
	cfg   *config.Config

	mu         sync.RWMutex
	products   []domain.Product
	categories []domain.Category
	byID       map[string]int
	bySlug     map[string]int
}

func NewCatalogUsecase(api domain.CatalogAPI, cacheSvc cache.CacheService, cfg *config.Config) *CatalogUsecase {
	uc := &CatalogUsecase{
		api:   api,
		cache: cacheSvc,
		cfg:   cfg,
	}
	uc.replace(static.Products(), static.Categories())
	return uc
}

// Refresh pulls the catalog from the upstream. Fetch failures and empty
// results are swallowed: the previous snapshot stands.
func (uc *CatalogUsecase) Refresh(ctx context.Context) {
	products, err := uc.api.FetchProducts(ctx, uc.cfg.CatalogFetchLimit, domain.SortFeatured)
	if err != nil {
		logger.Warn().Err(err).Msg("Catalog refresh failed, keeping current snapshot")
		return
	}
	if len(products) == 0 {
		logger.Warn().Msg("Catalog refresh returned no products, keeping current snapshot")
		return
	}

	categories, err := uc.api.FetchCategories(ctx)
	if err != nil || len(categories) == 0 {
		// Keep the current category list; products alone still replace.
		if err != nil {
			logger.Warn().Err(err).Msg("Category refresh failed, keeping current categories")
		}
		uc.mu.RLock()
		categories = uc.categories
		uc.mu.RUnlock()
	}

	uc.replace(products, categories)
	logger.Info().Int("products", len(products)).Int("categories", len(categories)).Msg("Catalog snapshot replaced from upstream")
}

func (uc *CatalogUsecase) replace(products []domain.Product, categories []domain.Category) {
	byID := make(map[string]int, len(products))
	bySlug := make(map[string]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
		bySlug[p.Slug] = i
	}

	uc.mu.Lock()
	uc.products = products
	uc.categories = categories
	uc.byID = byID
	uc.bySlug = bySlug
	uc.mu.Unlock()

	// The catalog owns its cache instance, so a full flush is safe here.
	uc.cache.Flush()
}

// Products returns a copy of the current product snapshot, in catalog order.
func (uc *CatalogUsecase) Products() []domain.Product {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	out := make([]domain.Product, len(uc.products))
	copy(out, uc.products)
	return out
}

// ProductsByCategory returns the snapshot entries for one category ID, in catalog order.
func (uc *CatalogUsecase) ProductsByCategory(categoryID string) []domain.Product {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	var out []domain.Product
	for _, p := range uc.products {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out
}

func (uc *CatalogUsecase) ProductByID(id string) (*domain.Product, bool) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	i, ok := uc.byID[id]
	if !ok {
		return nil, false
	}
	p := uc.products[i]
	return &p, true
}

func (uc *CatalogUsecase) ProductBySlug(slug string) (*domain.Product, bool) {
	key := "product:slug:" + slug
	if val, found := uc.cache.Get(key); found {
		p := val.(domain.Product)
		return &p, true
	}

	uc.mu.RLock()
	i, ok := uc.bySlug[slug]
	if !ok {
		uc.mu.RUnlock()
		return nil, false
	}
	p := uc.products[i]
	uc.mu.RUnlock()

	uc.cache.Set(key, p, uc.cfg.CacheProductTTL)
	return &p, true
}

// Categories returns the current category list, cached.
func (uc *CatalogUsecase) Categories() []domain.Category {
	if val, found := uc.cache.Get(categoriesCacheKey); found {
		return val.([]domain.Category)
	}

	uc.mu.RLock()
	out := make([]domain.Category, len(uc.categories))
	copy(out, uc.categories)
	uc.mu.RUnlock()

	uc.cache.Set(categoriesCacheKey, out, uc.cfg.CacheCategoryTTL)
	return out
}
