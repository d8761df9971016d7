// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Rating bounds for reviews, inclusive.
const (
	MinRating = 1
	MaxRating = 5
)

// Review is a purchase-gated rating with an optional comment.
// At most one exists per (author, itinerary); only the author may mutate it.
type Review struct {
	ID          uuid.UUID `json:"id"`           // The Global Unique Identifier (GUID) for the review.
	ItineraryID uuid.UUID `json:"itinerary_id"` // Itinerary being reviewed.
	AuthorID    uuid.UUID `json:"author_id"`    // Principal who wrote the review; must hold a purchase.
	Rating      int       `json:"rating"`       // Integer rating within [MinRating, MaxRating].
	Comment     string    `json:"comment"`      // Optional free-text comment.
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ValidRating reports whether a rating value is within bounds.
func ValidRating(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}
