package model

import (
	"time"

	"github.com/google/uuid"
)

// ItineraryAnalyticsModel is the GORM-specific struct for the
// 'itinerary_analytics' table. One row per itinerary; all counter updates go
// through atomic increments at the store.
type ItineraryAnalyticsModel struct {
	ItineraryID   uuid.UUID `gorm:"type:uuid;primary_key"`
	ViewCount     int64     `gorm:"not null;default:0"`
	PurchaseCount int64     `gorm:"not null;default:0"`
	Revenue       float64   `gorm:"type:decimal(12,2);not null;default:0"`
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ItineraryAnalyticsModel) TableName() string {
	return "itinerary_analytics"
}
