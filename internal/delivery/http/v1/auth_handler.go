package v1

import (
	"errors"
	"net/http"
	"voltbay-storefront/internal/domain"
	"voltbay-storefront/internal/usecase"
	"voltbay-storefront/pkg/utils"

	"github.com/goccy/go-json"
)

type AuthHandler struct {
	authUC *usecase.AuthUsecase
}

func NewAuthHandler(authUC *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFrom(r)
	if !ok {
		utils.WriteError(w, http.StatusInternalServerError, "No session")
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if req.Email == "" || req.Password == "" {
		utils.WriteError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	res, err := h.authUC.Login(r.Context(), sess.ID, req.Email, req.Password)
	if err != nil {
		utils.WriteError(w, http.StatusUnauthorized, "Login failed")
		return
	}

	// Entering authenticated mode discards the anonymous cart and pulls the
	// server's cart as the new truth.
	sess.Cart.Authenticate(r.Context(), res.Token)

	utils.WriteJSON(w, http.StatusOK, res)
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFrom(r)
	if !ok {
		utils.WriteError(w, http.StatusInternalServerError, "No session")
		return
	}

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		utils.WriteError(w, http.StatusBadRequest, "name, email and password are required")
		return
	}

	res, err := h.authUC.Register(r.Context(), sess.ID, req.Name, req.Email, req.Password, req.Phone)
	if err != nil {
		utils.WriteError(w, http.StatusBadGateway, "Registration failed")
		return
	}

	sess.Cart.Authenticate(r.Context(), res.Token)

	utils.WriteJSON(w, http.StatusCreated, res)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFrom(r)
	if !ok {
		utils.WriteError(w, http.StatusInternalServerError, "No session")
		return
	}

	h.authUC.Logout(sess.ID)
	sess.Cart.Deauthenticate()

	utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFrom(r)
	if !ok {
		utils.WriteError(w, http.StatusInternalServerError, "No session")
		return
	}

	user, err := h.authUC.Me(r.Context(), sess.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotAuthenticated) {
			utils.WriteError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		utils.WriteError(w, http.StatusBadGateway, "Failed to resolve user")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{"user": user})
}
