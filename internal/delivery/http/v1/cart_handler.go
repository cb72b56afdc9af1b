package v1

import (
	"net/http"
	"voltbay-storefront/internal/domain"
	"voltbay-storefront/internal/usecase"
	"voltbay-storefront/pkg/utils"

	"github.com/goccy/go-json"
)

type CartHandler struct {
	catalogUC *usecase.CatalogUsecase
}

func NewCartHandler(catalogUC *usecase.CatalogUsecase) *CartHandler {
	return &CartHandler{catalogUC: catalogUC}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFrom(r)
	if !ok {
		utils.WriteError(w, http.StatusInternalServerError, "No session")
		return
	}
	utils.WriteJSON(w, http.StatusOK, sess.Cart.View())
}

type addItemRequest struct {
	ProductID string `json:"productId"`
	SKU       string `json:"sku,omitempty"`
	Variant   string `json:"variant,omitempty"` // variant name, when the SKU is unknown client-side
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFrom(r)
	if !ok {
		utils.WriteError(w, http.StatusInternalServerError, "No session")
		return
	}

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if req.ProductID == "" {
		utils.WriteError(w, http.StatusBadRequest, "productId is required")
		return
	}

	product, found := h.catalogUC.ProductByID(req.ProductID)
	if !found {
		utils.WriteError(w, http.StatusNotFound, "Product not found")
		return
	}

	variant, err := resolveVariant(product, req.SKU, req.Variant)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	cart := sess.Cart.Add(r.Context(), *product, variant)
	utils.WriteJSON(w, http.StatusOK, cart)
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFrom(r)
	if !ok {
		utils.WriteError(w, http.StatusInternalServerError, "No session")
		return
	}

	lineID := r.PathValue("lineId")
	if lineID == "" {
		utils.WriteError(w, http.StatusBadRequest, "Line ID required")
		return
	}

	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	cart := sess.Cart.UpdateQuantity(r.Context(), lineID, req.Quantity)
	utils.WriteJSON(w, http.StatusOK, cart)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFrom(r)
	if !ok {
		utils.WriteError(w, http.StatusInternalServerError, "No session")
		return
	}

	lineID := r.PathValue("lineId")
	if lineID == "" {
		utils.WriteError(w, http.StatusBadRequest, "Line ID required")
		return
	}

	cart := sess.Cart.Remove(r.Context(), lineID)
	utils.WriteJSON(w, http.StatusOK, cart)
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFrom(r)
	if !ok {
		utils.WriteError(w, http.StatusInternalServerError, "No session")
		return
	}
	utils.WriteJSON(w, http.StatusOK, sess.Cart.Clear(r.Context()))
}

// resolveVariant matches a requested variant selection against the product's
// variant list, by SKU first, then by name. An empty selection is valid even
// on a product with variants: the line simply carries no variant.
func resolveVariant(product *domain.Product, sku, name string) (*domain.Variant, error) {
	if sku == "" && name == "" {
		return nil, nil
	}
	for i := range product.Variants {
		v := &product.Variants[i]
		if sku != "" && v.SKU == sku {
			return v, nil
		}
		if sku == "" && v.Name == name {
			return v, nil
		}
	}
	return nil, domain.ErrUnknownVariant
}
