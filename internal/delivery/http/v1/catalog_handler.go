package v1

import (
	"errors"
	"net/http"
	"voltbay-storefront/config"
	"voltbay-storefront/internal/domain"
	"voltbay-storefront/internal/usecase"
	"voltbay-storefront/pkg/utils"
)

type CatalogHandler struct {
	catalogUC *usecase.CatalogUsecase
	browseUC  *usecase.BrowseUsecase
	cfg       *config.Config
}

func NewCatalogHandler(catalogUC *usecase.CatalogUsecase, browseUC *usecase.BrowseUsecase, cfg *config.Config) *CatalogHandler {
	return &CatalogHandler{catalogUC: catalogUC, browseUC: browseUC, cfg: cfg}
}

func (h *CatalogHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.catalogUC.Categories())
}

// ListProducts runs the browse engine over the catalog. Filter and sort query
// changes come in with page=1 from the UI; an explicit out-of-contract page or
// page size is a 400, never clamped.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	fs := domain.DefaultFilterState(domain.MaxPriceCeiling)
	fs.PriceMin = utils.ParseFloat(query.Get("price_min"), fs.PriceMin)
	fs.PriceMax = utils.ParseFloat(query.Get("price_max"), fs.PriceMax)
	fs.Brands = splitCSV(query.Get("brands"))
	fs.Types = splitCSV(query.Get("types"))
	fs.Compatible = splitCSV(query.Get("compatibility"))
	fs.MinRating = utils.ParseFloat(query.Get("min_rating"), 0)
	if b := utils.ParseBoolPtr(query.Get("five_g")); b != nil {
		if *b {
			fs.FiveG = domain.TriTrue
		} else {
			fs.FiveG = domain.TriFalse
		}
	}
	if b := utils.ParseBoolPtr(query.Get("in_stock")); b != nil {
		fs.InStock = *b
	}

	sortKey := query.Get("sort")
	if sortKey == "" {
		sortKey = domain.SortFeatured
	}
	page := utils.ParseInt(query.Get("page"), 1)
	pageSize := utils.ParseInt(query.Get("limit"), h.cfg.PageSize)

	categoryID := h.resolveCategory(query.Get("category"))

	result, err := h.browseUC.Browse(categoryID, fs, sortKey, page, pageSize)
	if err != nil {
		if isContractViolation(err) {
			utils.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.WriteJSON(w, http.StatusOK, domain.Response{
		Success: true,
		Data:    result.Items,
		Meta: domain.Pagination{
			Page:       result.Page,
			Limit:      result.PageSize,
			TotalItems: result.MatchCount,
			TotalPages: result.TotalPages,
		},
	})
}

func (h *CatalogHandler) GetProductBySlug(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		utils.WriteError(w, http.StatusBadRequest, "Slug required")
		return
	}

	product, ok := h.catalogUC.ProductBySlug(slug)
	if !ok {
		utils.WriteError(w, http.StatusNotFound, "Product not found")
		return
	}
	utils.WriteJSON(w, http.StatusOK, product)
}

func (h *CatalogHandler) GetProductByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		utils.WriteError(w, http.StatusBadRequest, "Product ID required")
		return
	}

	product, ok := h.catalogUC.ProductByID(id)
	if !ok {
		utils.WriteError(w, http.StatusNotFound, "Product not found")
		return
	}
	utils.WriteJSON(w, http.StatusOK, product)
}

// resolveCategory accepts either a category ID or slug.
func (h *CatalogHandler) resolveCategory(value string) string {
	if value == "" {
		return ""
	}
	for _, c := range h.catalogUC.Categories() {
		if c.Slug == value {
			return c.ID
		}
	}
	return value
}

func isContractViolation(err error) bool {
	return errors.Is(err, domain.ErrInvalidPage) ||
		errors.Is(err, domain.ErrInvalidPageSize) ||
		errors.Is(err, domain.ErrInvalidPriceRange) ||
		errors.Is(err, domain.ErrInvalidMinRating) ||
		errors.Is(err, domain.ErrUnknownSortKey)
}
