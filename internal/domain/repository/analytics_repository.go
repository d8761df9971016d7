// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"wayfare/internal/domain/entity"

	"github.com/google/uuid"
)

// AnalyticsRepository defines the interface for per-itinerary counter operations.
// Increments happen at the store as atomic updates; the application never does
// a read-modify-write on these counters.
type AnalyticsRepository interface {
	// IncrementViewCount bumps the view counter by one, creating the record on
	// first view.
	IncrementViewCount(ctx context.Context, itineraryID uuid.UUID) error

	// RecordPurchase bumps the purchase counter and adds the purchase amount to
	// cumulative revenue, creating the record if absent.
	RecordPurchase(ctx context.Context, itineraryID uuid.UUID, amount float64) error

	// FindByItinerary retrieves the counters for one itinerary. A missing record
	// comes back zero-valued, not as an error.
	FindByItinerary(ctx context.Context, itineraryID uuid.UUID) (*entity.ItineraryAnalytics, error)

	// FindByItineraries retrieves counters for a set of itineraries. Itineraries
	// without a record are omitted from the result.
	FindByItineraries(ctx context.Context, itineraryIDs []uuid.UUID) ([]*entity.ItineraryAnalytics, error)
}
