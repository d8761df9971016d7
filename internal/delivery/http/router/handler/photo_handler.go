// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"wayfare/internal/delivery/http/response"
	"wayfare/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PhotoHandler holds dependencies for traveler-photo handlers.
type PhotoHandler struct {
	uc usecase.PhotoUsecase
}

// NewPhotoHandler is the constructor for PhotoHandler, injected by Fx.
func NewPhotoHandler(uc usecase.PhotoUsecase) *PhotoHandler {
	return &PhotoHandler{uc: uc}
}

type addPhotoRequest struct {
	ImageRef string `json:"image_ref" validate:"required"`
	Caption  string `json:"caption"`
}

// AddPhoto handles a purchaser's photo submission.
func (h *PhotoHandler) AddPhoto(c echo.Context) error {
	itineraryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid itinerary ID")
	}

	var req addPhotoRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid photo input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	photo, err := h.uc.AddPhoto(c.Request().Context(), currentProfile(c).ID, itineraryID, usecase.PhotoInput{
		ImageRef: req.ImageRef,
		Caption:  req.Caption,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, photo, "Photo added successfully")
}

// ListPhotos handles the public photo listing for an itinerary.
func (h *PhotoHandler) ListPhotos(c echo.Context) error {
	itineraryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid itinerary ID")
	}

	photos, err := h.uc.ListPhotos(c.Request().Context(), itineraryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, photos, "Photos retrieved successfully")
}
