package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel is the GORM-specific struct for the 'checkout_orders' table.
// The primary key is the gateway-assigned order identifier; the stored amount
// is the only amount settlement will trust.
type OrderModel struct {
	ID          string    `gorm:"type:varchar(64);primary_key"`
	BuyerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ItineraryID uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"type:varchar(255)"`
	AmountMinor int64     `gorm:"not null"`
	Currency    string    `gorm:"type:varchar(8);not null"`
	Status      string    `gorm:"type:varchar(16);not null;default:'pending';index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "checkout_orders"
}
