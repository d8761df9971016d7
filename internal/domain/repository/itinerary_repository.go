// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"wayfare/internal/domain/entity"
	"wayfare/internal/errors"

	"github.com/google/uuid"
)

// ErrItineraryNotFound is returned when an itinerary is not found.
var ErrItineraryNotFound = errors.New("itinerary not found")

// ItineraryRepository defines the interface for itinerary-related database operations.
type ItineraryRepository interface {
	// CreateItinerary persists a new itinerary.
	CreateItinerary(ctx context.Context, itinerary *entity.Itinerary) error

	// FindItineraryByID retrieves an itinerary by its unique ID.
	FindItineraryByID(ctx context.Context, id uuid.UUID) (*entity.Itinerary, error)

	// FindPublishedItineraries retrieves all itineraries that are published and approved.
	FindPublishedItineraries(ctx context.Context) ([]*entity.Itinerary, error)

	// FindItinerariesByCreator retrieves all itineraries owned by a creator.
	FindItinerariesByCreator(ctx context.Context, creatorID uuid.UUID) ([]*entity.Itinerary, error)

	// SetApproval updates the approval flag of an itinerary and nothing else.
	SetApproval(ctx context.Context, id uuid.UUID, approved bool) error

	// UpdateRatingStats replaces the aggregate rating and review count.
	UpdateRatingStats(ctx context.Context, id uuid.UUID, averageRating float64, reviewCount int) error
}
