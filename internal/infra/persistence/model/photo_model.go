package model

import (
	"time"

	"github.com/google/uuid"
)

// TravelerPhotoModel is the GORM-specific struct for the 'traveler_photos' table.
type TravelerPhotoModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ItineraryID uuid.UUID `gorm:"type:uuid;not null;index"`
	UploaderID  uuid.UUID `gorm:"type:uuid;not null;index"`
	ImageRef    string    `gorm:"type:text;not null"`
	Caption     string    `gorm:"type:text"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (TravelerPhotoModel) TableName() string {
	return "traveler_photos"
}
