// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus tracks the single-use lifecycle of a checkout order.
type OrderStatus string

const (
	// OrderStatusPending indicates the order awaits payment confirmation.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusConsumed indicates the order was settled into a purchase.
	// A consumed order can never settle again, which closes the replay window.
	OrderStatusConsumed OrderStatus = "consumed"
)

// Order is the server-side record of a payment-gateway order created at
// checkout. The amount stored here is the only amount the ledger will ever
// trust: the verification payload from the client carries no authority.
type Order struct {
	ID          string      // Gateway-assigned order identifier.
	BuyerID     uuid.UUID   // Principal who initiated the checkout.
	ItineraryID uuid.UUID   // Itinerary being purchased.
	Title       string      // Human-readable title for gateway audit notes.
	AmountMinor int64       // Amount in minor currency units (e.g. paise).
	Currency    string      // ISO currency code.
	Status      OrderStatus // pending until settled, consumed afterwards.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
