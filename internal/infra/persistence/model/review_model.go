package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel is the GORM-specific struct for the 'reviews' table.
// The composite unique index on (author_id, itinerary_id) enforces the
// one-review-per-pair invariant under concurrent creation. Deletes are hard,
// so a deleted review frees the pair for a fresh insert.
type ReviewModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ItineraryID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_author_itinerary"`
	AuthorID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_author_itinerary"`
	Rating      int       `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment     string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
