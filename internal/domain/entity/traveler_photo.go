// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// TravelerPhoto is a photo submitted by a buyer who purchased the itinerary.
type TravelerPhoto struct {
	ID          uuid.UUID `json:"id"`           // The Global Unique Identifier (GUID) for the photo.
	ItineraryID uuid.UUID `json:"itinerary_id"` // Itinerary the photo belongs to.
	UploaderID  uuid.UUID `json:"uploader_id"`  // Principal who uploaded; must hold a purchase.
	ImageRef    string    `json:"image_ref"`    // Reference to the stored image (URL or object key).
	Caption     string    `json:"caption"`      // Optional caption.
	CreatedAt   time.Time `json:"created_at"`
}
