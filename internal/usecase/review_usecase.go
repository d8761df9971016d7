package usecase

import (
	"context"

	"wayfare/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewInput carries the author-supplied fields of a review.
type ReviewInput struct {
	Rating  int
	Comment string
}

// ReviewPatch carries a partial review update. Nil fields are left untouched,
// so a comment-only edit keeps the rating and vice versa.
type ReviewPatch struct {
	Rating  *int
	Comment *string
}

// ReviewUsecase defines the interface for review use cases. All mutations are
// purchase-gated and author-only; rating aggregates on the itinerary row are
// recomputed in the same transaction as the mutation.
type ReviewUsecase interface {
	// CreateReview creates a review for an itinerary the author has purchased.
	CreateReview(ctx context.Context, authorID, itineraryID uuid.UUID, input ReviewInput) (*entity.Review, error)

	// ListReviews retrieves all reviews for an itinerary, newest first.
	ListReviews(ctx context.Context, itineraryID uuid.UUID) ([]*entity.Review, error)

	// UpdateReview applies the present fields of a patch to the author's own
	// review. At least one field must be present.
	UpdateReview(ctx context.Context, authorID, reviewID uuid.UUID, patch ReviewPatch) (*entity.Review, error)

	// DeleteReview removes the author's own review permanently, which re-opens
	// review eligibility for the pair.
	DeleteReview(ctx context.Context, authorID, reviewID uuid.UUID) error
}
