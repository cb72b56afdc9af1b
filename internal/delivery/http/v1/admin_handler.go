package v1

import (
	"net/http"
	"voltbay-storefront/internal/domain"
	"voltbay-storefront/internal/usecase"
	"voltbay-storefront/pkg/utils"
)

// AdminHandler is a read-only proxy in front of the upstream back-office
// analytics. The upstream enforces authorization too; the local role check
// just avoids pointless round trips.
type AdminHandler struct {
	api    domain.AdminAPI
	authUC *usecase.AuthUsecase
}

func NewAdminHandler(api domain.AdminAPI, authUC *usecase.AuthUsecase) *AdminHandler {
	return &AdminHandler{api: api, authUC: authUC}
}

func (h *AdminHandler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFrom(r)
	if !ok {
		utils.WriteError(w, http.StatusInternalServerError, "No session")
		return
	}

	token, ok := h.authUC.Token(sess.ID)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	claims, err := utils.ParseClaims(token)
	if err != nil || claims.Role != domain.RoleAdmin {
		utils.WriteError(w, http.StatusForbidden, "Admin access required")
		return
	}

	analytics, err := h.api.FetchAdminAnalytics(r.Context(), token)
	if err != nil {
		utils.WriteError(w, http.StatusBadGateway, "Failed to fetch analytics")
		return
	}

	utils.WriteJSON(w, http.StatusOK, analytics)
}
