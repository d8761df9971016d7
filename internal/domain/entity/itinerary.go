// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Itinerary is a purchasable travel plan published by a creator.
// The creator owns the content; only an admin may flip the approval flag.
type Itinerary struct {
	ID            uuid.UUID `json:"id"`             // The Global Unique Identifier (GUID) for the itinerary.
	CreatorID     uuid.UUID `json:"creator_id"`     // The ID of the creator who owns this itinerary.
	Title         string    `json:"title"`          // Display title.
	Location      string    `json:"location"`       // Destination the plan covers.
	Description   string    `json:"description"`    // Public teaser shown before purchase.
	PlanDetails   string    `json:"plan_details"`   // Full day-by-day plan, unlocked by purchase.
	Price         float64   `json:"price"`          // Price in major currency units, always positive.
	Currency      string    `json:"currency"`       // ISO currency code, e.g. "INR".
	IsPublished   bool      `json:"is_published"`   // Whether the creator has published the itinerary.
	IsApproved    bool      `json:"is_approved"`    // Whether an admin has approved it for sale.
	AverageRating float64   `json:"average_rating"` // Aggregate of review ratings.
	ReviewCount   int       `json:"review_count"`   // Number of reviews contributing to the aggregate.
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Purchasable reports whether the itinerary can be checked out.
func (i *Itinerary) Purchasable() bool {
	return i.IsPublished && i.IsApproved && i.Price > 0
}
