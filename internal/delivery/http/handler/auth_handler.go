package handler

import (
	"encoding/json"
	"net/http"

	"dental-clinic-booking/internal/delivery/dto"
	"dental-clinic-booking/internal/delivery/http/middleware"
	"dental-clinic-booking/internal/usecase"
	"dental-clinic-booking/pkg/response"
	"dental-clinic-booking/pkg/validator"
)

type AuthHandler struct {
	authUsecase usecase.AdminAuthUsecase
	validator   *validator.CustomValidator
}

func NewAuthHandler(authUsecase usecase.AdminAuthUsecase, validator *validator.CustomValidator) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
	}
}

// Login handles admin login
// @Summary Login admin
// @Description Login with the configured admin email and password
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /admin/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	token, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidCredentials:
			response.Error(w, http.StatusUnauthorized, "Invalid email or password", nil)
		default:
			response.InternalServerError(w, "Failed to login")
		}
		return
	}

	response.Success(w, http.StatusOK, "Login successful", token)
}

// Logout handles admin logout
// @Summary Logout admin
// @Description Revoke the current access token
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /admin/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	tokenID, ok := middleware.GetTokenIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	email, _ := middleware.GetAdminEmailFromContext(r.Context())

	if err := h.authUsecase.Logout(r.Context(), email, tokenID); err != nil {
		response.InternalServerError(w, "Failed to logout")
		return
	}

	response.Success(w, http.StatusOK, "Logout successful", nil)
}
