package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dicehall/accounts/internal/api/apierr"
	"github.com/dicehall/accounts/internal/api/middleware"
	"github.com/dicehall/accounts/internal/api/request"
	"github.com/dicehall/accounts/internal/api/response"
	"github.com/dicehall/accounts/internal/services/account"
)

// AccountHandler handles account endpoints
type AccountHandler struct {
	accounts *account.Service
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accounts *account.Service) *AccountHandler {
	return &AccountHandler{
		accounts: accounts,
	}
}

// Register handles POST /api/register
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Invalid request body"))
		return
	}

	if err := h.accounts.Register(r.Context(), req.Username, req.Password, req.ProfilePicture); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.OK())
}

// Login handles POST /api/login
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Invalid request body"))
		return
	}

	result, err := h.accounts.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LoginResponse{
		Success: true,
		User:    response.UserFromModel(result.User),
		Token:   result.Token,
	})
}

// UpdateUser handles POST /api/update-user
func (h *AccountHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	claims := middleware.MustGetClaims(r.Context())

	var req request.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Invalid request body"))
		return
	}

	if err := h.accounts.UpdateProfile(r.Context(), claims.Username, req.ProfilePicture); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.OK())
}

// DeleteUser handles POST /api/delete-user
func (h *AccountHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	claims := middleware.MustGetClaims(r.Context())

	if err := h.accounts.DeleteAccount(r.Context(), claims.Username); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.OK())
}
