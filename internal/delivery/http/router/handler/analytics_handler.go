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

// AnalyticsHandler holds dependencies for analytics-related handlers.
type AnalyticsHandler struct {
	uc usecase.AnalyticsUsecase
}

// NewAnalyticsHandler is the constructor for AnalyticsHandler, injected by Fx.
func NewAnalyticsHandler(uc usecase.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// RecordView handles the anonymous view-count ping for an itinerary.
func (h *AnalyticsHandler) RecordView(c echo.Context) error {
	itineraryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid itinerary ID")
	}

	if err := h.uc.RecordView(c.Request().Context(), itineraryID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "View recorded")
}

// GetItineraryAnalytics handles the owner's per-itinerary analytics request.
func (h *AnalyticsHandler) GetItineraryAnalytics(c echo.Context) error {
	itineraryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid itinerary ID")
	}

	analytics, err := h.uc.GetItineraryAnalytics(c.Request().Context(), currentProfile(c), itineraryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, analytics, "Analytics retrieved successfully")
}

// GetSummary handles the principal's portfolio rollup request.
func (h *AnalyticsHandler) GetSummary(c echo.Context) error {
	summary, err := h.uc.GetCreatorSummary(c.Request().Context(), currentProfile(c).ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary, "Analytics summary retrieved successfully")
}
