// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"wayfare/internal/domain/entity"
	"wayfare/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for purchase persistence.
var (
	// ErrPurchaseNotFound is returned when a purchase is not found.
	ErrPurchaseNotFound = errors.New("purchase not found")
	// ErrDuplicatePurchase is returned when the (buyer, itinerary) pair already
	// holds an authoritative purchase. Raised from the store's unique index, so
	// it is reliable under concurrent settlement attempts.
	ErrDuplicatePurchase = errors.New("purchase already exists")
)

// PurchaseRepository defines the interface for purchase-ledger database operations.
type PurchaseRepository interface {
	// CreatePurchase persists a new purchase record. The insert is guarded by a
	// unique index on (buyer_id, itinerary_id); violations surface as
	// ErrDuplicatePurchase.
	CreatePurchase(ctx context.Context, purchase *entity.Purchase) error

	// HasPurchase reports whether the buyer holds a purchase for the itinerary.
	// This existence lookup is the entitlement gate.
	HasPurchase(ctx context.Context, buyerID, itineraryID uuid.UUID) (bool, error)

	// FindPurchasesByBuyer retrieves all purchases made by a buyer.
	FindPurchasesByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*entity.Purchase, error)
}
