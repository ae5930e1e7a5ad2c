package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"donorlink/internal/auth"
	apperrors "donorlink/internal/errors"
	"donorlink/internal/model"
	"donorlink/internal/service"
)

// DonationHandler bundles donation HTTP handlers.
type DonationHandler struct {
	svc service.DonationService
}

// NewDonationHandler creates a donation handler.
func NewDonationHandler(svc service.DonationService) *DonationHandler {
	return &DonationHandler{svc: svc}
}

// CreateDonationRequest represents a donation creation payload. Donor,
// recipient, and pickup address are server-assigned and ignored if supplied.
type CreateDonationRequest struct {
	Category   string     `json:"category"`
	Details    string     `json:"details"`
	Amount     int        `json:"amount"`
	PickupDate *time.Time `json:"pickup_date"`
}

// UpdateDonationRequest represents a donation update payload. Pointer fields
// distinguish "absent" from an explicit zero, so an admin can clear an amount
// or reset a recipient to unassigned. The id and donor are not updatable.
type UpdateDonationRequest struct {
	Category      *string    `json:"category"`
	Details       *string    `json:"details"`
	Amount        *int       `json:"amount"`
	PickupDate    *time.Time `json:"pickup_date"`
	PickupAddress *string    `json:"pickup_address"`
	Recipient     *uint      `json:"recipient"`
}

func (r *UpdateDonationRequest) fields() map[string]interface{} {
	m := map[string]interface{}{}
	if r.Category != nil {
		m["category"] = *r.Category
	}
	if r.Details != nil {
		m["details"] = *r.Details
	}
	if r.Amount != nil {
		m["amount"] = *r.Amount
	}
	if r.PickupDate != nil {
		m["pickup_date"] = *r.PickupDate
	}
	if r.PickupAddress != nil {
		m["pickup_address"] = *r.PickupAddress
	}
	if r.Recipient != nil {
		m["recipient"] = *r.Recipient
	}
	return m
}

// ListDonations godoc
// @Summary List all donations
// @Tags donations
// @Produce json
// @Success 200 {array} model.Donation
// @Failure 500 {object} errors.ErrorResponse
// @Router /donations [get]
func (h *DonationHandler) ListDonations(c echo.Context) error {
	donations, err := h.svc.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, donations)
}

// CreateDonation godoc
// @Summary Create a donation as the authenticated donor
// @Tags donations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param donation body CreateDonationRequest true "Donation payload"
// @Success 200 {object} model.Donation
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /donations [post]
func (h *DonationHandler) CreateDonation(c echo.Context) error {
	claims := callerClaims(c)
	if claims == nil {
		return respondError(c, apperrors.ErrUnauthorized)
	}

	var req CreateDonationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Err: "invalid request body"})
	}

	donation := &model.Donation{
		Category:   req.Category,
		Details:    req.Details,
		Amount:     req.Amount,
		PickupDate: req.PickupDate,
	}

	created, err := h.svc.Create(c.Request().Context(), claims, donation)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, created)
}

// GetDonation godoc
// @Summary Fetch a donation by id
// @Tags donations
// @Produce json
// @Param id path int true "Donation ID"
// @Success 200 {object} model.Donation
// @Failure 500 {object} errors.ErrorResponse
// @Router /donations/{id} [get]
func (h *DonationHandler) GetDonation(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, apperrors.ErrorResponse{Err: "invalid donation id"})
	}

	donation, err := h.svc.Get(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusOK, nil)
		}
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, donation)
}

// UpdateDonation godoc
// @Summary Update a donation (admin only)
// @Tags donations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Donation ID"
// @Param donation body UpdateDonationRequest true "Fields to update"
// @Success 200 {object} model.Donation
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /donations/{id} [put]
func (h *DonationHandler) UpdateDonation(c echo.Context) error {
	claims := callerClaims(c)
	if !auth.Authorize(claims, auth.ActionAdminOnly, 0) {
		return respondError(c, apperrors.ErrUnauthorized)
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, apperrors.ErrorResponse{Err: "invalid donation id"})
	}

	var req UpdateDonationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Err: "invalid request body"})
	}

	updated, err := h.svc.Update(c.Request().Context(), claims.User.ID, uint(id), req.fields())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteDonation godoc
// @Summary Delete a donation (donor or admin)
// @Tags donations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Donation ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /donations/{id} [delete]
func (h *DonationHandler) DeleteDonation(c echo.Context) error {
	claims := callerClaims(c)
	if claims == nil {
		return respondError(c, apperrors.ErrUnauthorized)
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, apperrors.ErrorResponse{Err: "invalid donation id"})
	}

	if err := h.svc.Delete(c.Request().Context(), claims, uint(id)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"status": "donation deleted",
	})
}
