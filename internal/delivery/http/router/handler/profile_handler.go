// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"wayfare/internal/delivery/http/response"
	"wayfare/internal/domain/entity"
	"wayfare/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for profile-related handlers.
type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

// GetProfile handles the request for the principal's own profile.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	profile := currentProfile(c)

	return response.Success(c, http.StatusOK, map[string]string{
		"id":           profile.ID.String(),
		"role":         profile.Role.String(),
		"verification": profile.Verification.String(),
	}, "Profile retrieved successfully")
}

// RequestVerification handles a creator's verification request.
func (h *ProfileHandler) RequestVerification(c echo.Context) error {
	if err := h.uc.RequestVerification(c.Request().Context(), currentProfile(c).ID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"verification": entity.VerificationPending.String(),
	}, "Verification requested")
}

type setVerificationRequest struct {
	Status string `json:"status" validate:"required,oneof=none pending verified"`
}

// SetVerification handles the admin's verification decision for a profile.
func (h *ProfileHandler) SetVerification(c echo.Context) error {
	principalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid profile ID")
	}

	var req setVerificationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verification input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.SetVerification(c.Request().Context(), currentProfile(c), principalID, entity.VerificationStatus(req.Status)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"verification": req.Status}, "Verification status updated")
}
