package usecase

import (
	"context"

	"wayfare/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateItineraryInput carries the creator-supplied fields of a new itinerary.
type CreateItineraryInput struct {
	Title       string
	Location    string
	Description string
	PlanDetails string
	Price       float64
	Currency    string
	Publish     bool
}

// ItineraryDetail is an itinerary as seen by a specific viewer. PlanDetails is
// empty unless the viewer is the owner, an admin, or holds a purchase.
type ItineraryDetail struct {
	Itinerary *entity.Itinerary `json:"itinerary"`
	Unlocked  bool              `json:"unlocked"`
}

// ItineraryUsecase defines the interface for itinerary lifecycle use cases.
type ItineraryUsecase interface {
	// CreateItinerary creates a new itinerary owned by the acting creator.
	// Buyers may not create itineraries; new itineraries are never approved.
	CreateItinerary(ctx context.Context, actor *entity.Profile, input CreateItineraryInput) (*entity.Itinerary, error)

	// ListPublished retrieves all published and approved itineraries.
	ListPublished(ctx context.Context) ([]*entity.Itinerary, error)

	// GetItinerary retrieves one itinerary as seen by the viewer. A nil viewer
	// is an anonymous request and only ever sees the locked summary.
	GetItinerary(ctx context.Context, viewer *entity.Profile, id uuid.UUID) (*ItineraryDetail, error)

	// SetApproval flips the approval flag. Admin only; nothing else changes.
	SetApproval(ctx context.Context, actor *entity.Profile, id uuid.UUID, approved bool) error
}
