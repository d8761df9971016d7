// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Purchase is the authoritative ledger record for a settled payment.
// At most one exists per (buyer, itinerary); it is never mutated or deleted.
// Invariant: PlatformFee + CreatorEarnings == Amount to the cent.
type Purchase struct {
	ID              uuid.UUID `json:"id"`               // The Global Unique Identifier (GUID) for the purchase.
	BuyerID         uuid.UUID `json:"buyer_id"`         // Principal who paid.
	ItineraryID     uuid.UUID `json:"itinerary_id"`     // Itinerary the entitlement covers.
	Amount          float64   `json:"amount"`           // Total in major currency units.
	PlatformFee     float64   `json:"platform_fee"`     // Platform's share of the amount.
	CreatorEarnings float64   `json:"creator_earnings"` // Creator's share of the amount.
	PaymentRef      string    `json:"payment_ref"`      // Gateway payment identifier from the verified confirmation.
	CreatedAt       time.Time `json:"created_at"`
}
