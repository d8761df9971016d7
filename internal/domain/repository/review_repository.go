// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"wayfare/internal/domain/entity"
	"wayfare/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for review persistence.
var (
	// ErrReviewNotFound is returned when a review is not found.
	ErrReviewNotFound = errors.New("review not found")
	// ErrDuplicateReview is returned when the (author, itinerary) pair already
	// holds a review. Raised from the store's unique index, so it is reliable
	// under concurrent creation attempts.
	ErrDuplicateReview = errors.New("review already exists")
)

// RatingStats holds the aggregate outcome of the reviews for one itinerary.
type RatingStats struct {
	AverageRating float64
	ReviewCount   int
}

// ReviewRepository defines the interface for review-related database operations.
type ReviewRepository interface {
	// CreateReview persists a new review. The insert is guarded by a unique
	// index on (author_id, itinerary_id); violations surface as ErrDuplicateReview.
	CreateReview(ctx context.Context, review *entity.Review) error

	// FindReviewByID retrieves a review by its unique ID.
	FindReviewByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// FindReviewsByItinerary retrieves all reviews for an itinerary, newest first.
	FindReviewsByItinerary(ctx context.Context, itineraryID uuid.UUID) ([]*entity.Review, error)

	// UpdateReview replaces the rating and comment of an existing review.
	UpdateReview(ctx context.Context, review *entity.Review) error

	// DeleteReview removes a review. The delete is permanent, which re-opens
	// review eligibility for the (author, itinerary) pair.
	DeleteReview(ctx context.Context, id uuid.UUID) error

	// RatingStatsByItinerary computes the aggregate rating for an itinerary.
	RatingStatsByItinerary(ctx context.Context, itineraryID uuid.UUID) (*RatingStats, error)
}
