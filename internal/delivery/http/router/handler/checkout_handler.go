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

// CheckoutHandler holds dependencies for checkout-related handlers.
type CheckoutHandler struct {
	uc usecase.CheckoutUsecase
}

// NewCheckoutHandler is the constructor for CheckoutHandler, injected by Fx.
func NewCheckoutHandler(uc usecase.CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc}
}

type beginCheckoutRequest struct {
	ItineraryID uuid.UUID `json:"itinerary_id" validate:"required"`
}

// BeginCheckout handles the request to open a payment order for an itinerary.
func (h *CheckoutHandler) BeginCheckout(c echo.Context) error {
	var req beginCheckoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.BeginCheckout(c.Request().Context(), currentProfile(c).ID, req.ItineraryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Checkout order created")
}

type confirmPaymentRequest struct {
	OrderID   string `json:"order_id" validate:"required"`
	PaymentID string `json:"payment_id" validate:"required"`
	Signature string `json:"signature" validate:"required"`
}

// ConfirmPayment handles the client's payment confirmation callback.
func (h *CheckoutHandler) ConfirmPayment(c echo.Context) error {
	var req confirmPaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment confirmation input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	purchase, err := h.uc.ConfirmPayment(c.Request().Context(), currentProfile(c).ID, usecase.PaymentConfirmation{
		OrderID:   req.OrderID,
		PaymentID: req.PaymentID,
		Signature: req.Signature,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, purchase, "Payment verified and purchase recorded")
}

// ListPurchases handles the request for the principal's purchase history.
func (h *CheckoutHandler) ListPurchases(c echo.Context) error {
	purchases, err := h.uc.ListPurchases(c.Request().Context(), currentProfile(c).ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, purchases, "Purchases retrieved successfully")
}
