package model

import (
	"time"

	"github.com/google/uuid"
)

// PurchaseModel is the GORM-specific struct for the 'purchases' table.
// The composite unique index on (buyer_id, itinerary_id) is what closes the
// concurrent duplicate-settlement race; the application never relies on a
// read-then-write existence check for this invariant.
type PurchaseModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BuyerID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_purchases_buyer_itinerary"`
	ItineraryID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_purchases_buyer_itinerary"`
	Amount          float64   `gorm:"type:decimal(10,2);not null"`
	PlatformFee     float64   `gorm:"type:decimal(10,2);not null"`
	CreatorEarnings float64   `gorm:"type:decimal(10,2);not null"`
	PaymentRef      string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (PurchaseModel) TableName() string {
	return "purchases"
}
