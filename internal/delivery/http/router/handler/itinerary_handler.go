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

// ItineraryHandler holds dependencies for itinerary-related handlers.
type ItineraryHandler struct {
	uc usecase.ItineraryUsecase
}

// NewItineraryHandler is the constructor for ItineraryHandler, injected by Fx.
func NewItineraryHandler(uc usecase.ItineraryUsecase) *ItineraryHandler {
	return &ItineraryHandler{uc: uc}
}

type createItineraryRequest struct {
	Title       string  `json:"title" validate:"required"`
	Location    string  `json:"location"`
	Description string  `json:"description"`
	PlanDetails string  `json:"plan_details" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Currency    string  `json:"currency" validate:"omitempty,len=3"`
	Publish     bool    `json:"publish"`
}

// CreateItinerary handles the creator's itinerary submission.
func (h *ItineraryHandler) CreateItinerary(c echo.Context) error {
	var req createItineraryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid itinerary input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	itinerary, err := h.uc.CreateItinerary(c.Request().Context(), currentProfile(c), usecase.CreateItineraryInput{
		Title:       req.Title,
		Location:    req.Location,
		Description: req.Description,
		PlanDetails: req.PlanDetails,
		Price:       req.Price,
		Currency:    req.Currency,
		Publish:     req.Publish,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, itinerary, "Itinerary created successfully")
}

// ListItineraries handles the public listing of published itineraries.
func (h *ItineraryHandler) ListItineraries(c echo.Context) error {
	itineraries, err := h.uc.ListPublished(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, itineraries, "Itineraries retrieved successfully")
}

// GetItinerary handles the request for one itinerary. The day-by-day plan is
// included only for the owner, admins and purchasers.
func (h *ItineraryHandler) GetItinerary(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid itinerary ID")
	}

	detail, err := h.uc.GetItinerary(c.Request().Context(), currentProfile(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, detail, "Itinerary retrieved successfully")
}

type approveItineraryRequest struct {
	Approved *bool `json:"approved"`
}

// ApproveItinerary handles the admin approval toggle.
func (h *ItineraryHandler) ApproveItinerary(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid itinerary ID")
	}

	var req approveItineraryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid approval input")
	}

	// An absent body approves; an explicit flag can also revoke.
	approved := true
	if req.Approved != nil {
		approved = *req.Approved
	}

	if err := h.uc.SetApproval(c.Request().Context(), currentProfile(c), id, approved); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"approved": approved}, "Itinerary approval updated")
}
