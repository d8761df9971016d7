package model

import (
	"time"

	"github.com/google/uuid"
)

// ItineraryModel is the GORM-specific struct for the 'itineraries' table.
type ItineraryModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CreatorID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Title         string    `gorm:"type:varchar(255);not null"`
	Location      string    `gorm:"type:varchar(255);not null"`
	Description   string    `gorm:"type:text"`
	PlanDetails   string    `gorm:"type:text"`
	Price         float64   `gorm:"type:decimal(10,2);not null"`
	Currency      string    `gorm:"type:varchar(8);not null;default:'INR'"`
	IsPublished   bool      `gorm:"not null;default:false"`
	IsApproved    bool      `gorm:"not null;default:false"`
	AverageRating float64   `gorm:"type:decimal(3,2);not null;default:0"`
	ReviewCount   int       `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ItineraryModel) TableName() string {
	return "itineraries"
}
