package usecase

import (
	"context"

	"wayfare/internal/domain/entity"

	"github.com/google/uuid"
)

// AnalyticsUsecase defines the interface for analytics use cases.
type AnalyticsUsecase interface {
	// RecordView bumps the view counter for an itinerary. The increment is
	// atomic at the store; concurrent views never lose updates.
	RecordView(ctx context.Context, itineraryID uuid.UUID) error

	// GetItineraryAnalytics retrieves the counters for one itinerary.
	// Visible to the itinerary's owner and to admins only.
	GetItineraryAnalytics(ctx context.Context, viewer *entity.Profile, itineraryID uuid.UUID) (*entity.ItineraryAnalytics, error)

	// GetCreatorSummary rolls up counters across every itinerary the principal
	// owns. A principal with no itineraries gets a zero-valued summary.
	GetCreatorSummary(ctx context.Context, creatorID uuid.UUID) (*entity.CreatorAnalyticsSummary, error)
}
