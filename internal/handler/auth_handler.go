package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "donorlink/internal/errors"
	"donorlink/internal/service"
)

// AuthHandler handles login and token introspection.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the bearer token and the user it was issued for.
type LoginResponse struct {
	Token string      `json:"token"`
	User  interface{} `json:"user"`
}

// Login godoc
// @Summary Authenticate and receive a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Err: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Err: err.Error()})
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, LoginResponse{
		Token: token,
		User:  user,
	})
}

// UserInfo godoc
// @Summary Echo the decoded caller claims
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} auth.Claims
// @Failure 401 {object} errors.ErrorResponse
// @Router /user_info [get]
func (h *AuthHandler) UserInfo(c echo.Context) error {
	claims := callerClaims(c)
	if claims == nil {
		return respondError(c, apperrors.ErrUnauthorized)
	}
	return c.JSON(http.StatusOK, claims)
}
