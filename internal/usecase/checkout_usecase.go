package usecase

import (
	"context"

	"wayfare/internal/domain/entity"

	"github.com/google/uuid"
)

// CheckoutOrder is what the client needs to render the payment widget.
type CheckoutOrder struct {
	OrderID     string `json:"order_id"`
	AmountMinor int64  `json:"amount"`
	Currency    string `json:"currency"`
	KeyID       string `json:"key_id"`
}

// PaymentConfirmation is the client-submitted payment result. None of its
// fields carry monetary authority; the persisted order does.
type PaymentConfirmation struct {
	OrderID   string
	PaymentID string
	Signature string
}

// CheckoutUsecase defines the interface for checkout and settlement use cases.
type CheckoutUsecase interface {
	// BeginCheckout validates the itinerary, opens a gateway order for its
	// current price and persists a pending order record.
	BeginCheckout(ctx context.Context, buyerID, itineraryID uuid.UUID) (*CheckoutOrder, error)

	// ConfirmPayment verifies the confirmation signature, settles the pending
	// order and writes the authoritative purchase record. The settlement is a
	// single transaction: consume order, create purchase, bump analytics.
	ConfirmPayment(ctx context.Context, buyerID uuid.UUID, confirmation PaymentConfirmation) (*entity.Purchase, error)

	// HasPurchased reports whether the principal holds a purchase for the
	// itinerary. This is the entitlement gate used across the engine.
	HasPurchased(ctx context.Context, buyerID, itineraryID uuid.UUID) (bool, error)

	// ListPurchases retrieves the principal's purchase history, newest first.
	ListPurchases(ctx context.Context, buyerID uuid.UUID) ([]*entity.Purchase, error)
}
