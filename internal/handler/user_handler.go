package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"donorlink/internal/auth"
	apperrors "donorlink/internal/errors"
	"donorlink/internal/model"
	"donorlink/internal/service"
)

// recipientPathParam is the overloaded :id value meaning "list recipients".
const recipientPathParam = "recipient"

// UserHandler bundles user HTTP handlers.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a user handler.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// RegisterRequest represents a registration payload.
type RegisterRequest struct {
	Role         string `json:"role"`
	Organization string `json:"organization"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	City         string `json:"city"`
	State        string `json:"state"`
	Zip          int    `json:"zip"`
	DonationType string `json:"donation_type"`
	Notes        string `json:"notes"`
}

func (r *RegisterRequest) toModel() *model.User {
	return &model.User{
		Role:         r.Role,
		Organization: r.Organization,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Email:        r.Email,
		Password:     r.Password,
		Address:      r.Address,
		Phone:        r.Phone,
		City:         r.City,
		State:        r.State,
		Zip:          r.Zip,
		DonationType: r.DonationType,
		Notes:        r.Notes,
	}
}

// ListUsers godoc
// @Summary List all users
// @Tags users
// @Produce json
// @Success 200 {array} model.User
// @Failure 500 {object} errors.ErrorResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.svc.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

// Register godoc
// @Summary Register a new user
// @Tags users
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "User payload"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Err: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Err: err.Error()})
	}

	created, err := h.svc.Register(c.Request().Context(), req.toModel())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, created)
}

// GetUser godoc
// @Summary Fetch a user by id, or list recipients
// @Description The literal id "recipient" lists users with the recipient role.
// @Tags users
// @Produce json
// @Param id path string true "User ID or the literal 'recipient'"
// @Success 200 {object} model.User
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	// Deliberate routing shortcut carried over from the first API version:
	// the :id segment doubles as a role filter for recipients.
	if c.Param("id") == recipientPathParam {
		recipients, err := h.svc.ListRecipients(c.Request().Context())
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, recipients)
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, apperrors.ErrorResponse{Err: "invalid user id"})
	}

	user, err := h.svc.Get(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusOK, nil)
		}
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateUser godoc
// @Summary Update a user (self or admin)
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param user body model.User true "Fields to update"
// @Success 200 {object} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, apperrors.ErrorResponse{Err: "invalid user id"})
	}

	claims := callerClaims(c)
	if !auth.Authorize(claims, auth.ActionManageUser, uint(id)) {
		return respondError(c, apperrors.ErrUnauthorized)
	}

	var fields model.User
	if err := c.Bind(&fields); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Err: "invalid request body"})
	}
	fields.ID = 0
	fields.Password = ""

	updated, err := h.svc.Update(c.Request().Context(), uint(id), &fields)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteUser godoc
// @Summary Delete a user and their donations (self or admin)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, apperrors.ErrorResponse{Err: "invalid user id"})
	}

	claims := callerClaims(c)
	if !auth.Authorize(claims, auth.ActionManageUser, uint(id)) {
		return respondError(c, apperrors.ErrUnauthorized)
	}

	if err := h.svc.Delete(c.Request().Context(), uint(id)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"status": "User and donations deleted",
	})
}
