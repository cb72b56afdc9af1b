package v1

import (
	"net/http"
	"voltbay-storefront/pkg/utils"

	"github.com/goccy/go-json"
)

type WishlistHandler struct{}

func NewWishlistHandler() *WishlistHandler {
	return &WishlistHandler{}
}

func (h *WishlistHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFrom(r)
	if !ok {
		utils.WriteError(w, http.StatusInternalServerError, "No session")
		return
	}

	items := sess.Wishlist.Items()
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"items": items,
		"count": len(items),
	})
}

type toggleRequest struct {
	ProductID string `json:"productId"`
}

func (h *WishlistHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFrom(r)
	if !ok {
		utils.WriteError(w, http.StatusInternalServerError, "No session")
		return
	}

	var req toggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if req.ProductID == "" {
		utils.WriteError(w, http.StatusBadRequest, "productId is required")
		return
	}

	inWishlist := sess.Wishlist.Toggle(req.ProductID)
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"productId":  req.ProductID,
		"inWishlist": inWishlist,
	})
}
