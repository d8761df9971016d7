package impl

import (
	"context"
	"time"

	"wayfare/internal/domain/entity"
	domainerrors "wayfare/internal/domain/errors"
	"wayfare/internal/domain/repository"
	"wayfare/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type reviewService struct {
	reviewRepo   repository.ReviewRepository
	purchaseRepo repository.PurchaseRepository
	txManager    repository.TransactionManager
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	ReviewRepo   repository.ReviewRepository
	PurchaseRepo repository.PurchaseRepository
	TxManager    repository.TransactionManager
}

// NewReviewService creates a new review service instance
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo:   params.ReviewRepo,
		purchaseRepo: params.PurchaseRepo,
		txManager:    params.TxManager,
	}
}

// CreateReview creates a review for an itinerary the author has purchased.
// The review insert and the itinerary's aggregate update share a transaction.
func (s *reviewService) CreateReview(ctx context.Context, authorID, itineraryID uuid.UUID, input usecase.ReviewInput) (*entity.Review, error) {
	if !entity.ValidRating(input.Rating) {
		return nil, domainerrors.ErrInvalidRating
	}

	purchased, err := s.purchaseRepo.HasPurchase(ctx, authorID, itineraryID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check purchase existence")
	}
	if !purchased {
		return nil, domainerrors.ErrNotEntitled
	}

	review := &entity.Review{
		ID:          uuid.New(),
		ItineraryID: itineraryID,
		AuthorID:    authorID,
		Rating:      input.Rating,
		Comment:     input.Comment,
	}

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewReviewRepository().CreateReview(ctx, review); err != nil {
			if errors.Is(err, repository.ErrDuplicateReview) {
				return domainerrors.ErrDuplicateReview
			}

			return errors.Wrap(err, "failed to create review")
		}

		return s.refreshRatingStats(ctx, factory, itineraryID)
	})
	if err != nil {
		return nil, err
	}

	return review, nil
}

// ListReviews retrieves all reviews for an itinerary, newest first.
func (s *reviewService) ListReviews(ctx context.Context, itineraryID uuid.UUID) ([]*entity.Review, error) {
	reviews, err := s.reviewRepo.FindReviewsByItinerary(ctx, itineraryID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find reviews by itinerary")
	}

	return reviews, nil
}

// UpdateReview applies the present fields of a patch to the author's own
// review, leaving absent fields untouched.
func (s *reviewService) UpdateReview(ctx context.Context, authorID, reviewID uuid.UUID, patch usecase.ReviewPatch) (*entity.Review, error) {
	if patch.Rating == nil && patch.Comment == nil {
		return nil, domainerrors.ErrInvalidRequest.WrapMessage("at least one of rating or comment must be provided")
	}
	if patch.Rating != nil && !entity.ValidRating(*patch.Rating) {
		return nil, domainerrors.ErrInvalidRating
	}

	review, err := s.findOwnReview(ctx, authorID, reviewID)
	if err != nil {
		return nil, err
	}

	if patch.Rating != nil {
		review.Rating = *patch.Rating
	}
	if patch.Comment != nil {
		review.Comment = *patch.Comment
	}
	review.UpdatedAt = time.Now()

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewReviewRepository().UpdateReview(ctx, review); err != nil {
			if errors.Is(err, repository.ErrReviewNotFound) {
				return domainerrors.ErrReviewNotFound
			}

			return errors.Wrap(err, "failed to update review")
		}

		return s.refreshRatingStats(ctx, factory, review.ItineraryID)
	})
	if err != nil {
		return nil, err
	}

	return review, nil
}

// DeleteReview removes the author's own review permanently, which re-opens
// review eligibility for the pair.
func (s *reviewService) DeleteReview(ctx context.Context, authorID, reviewID uuid.UUID) error {
	review, err := s.findOwnReview(ctx, authorID, reviewID)
	if err != nil {
		return err
	}

	return s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewReviewRepository().DeleteReview(ctx, reviewID); err != nil {
			if errors.Is(err, repository.ErrReviewNotFound) {
				return domainerrors.ErrReviewNotFound
			}

			return errors.Wrap(err, "failed to delete review")
		}

		return s.refreshRatingStats(ctx, factory, review.ItineraryID)
	})
}

// findOwnReview loads a review and enforces author-only mutation.
func (s *reviewService) findOwnReview(ctx context.Context, authorID, reviewID uuid.UUID) (*entity.Review, error) {
	review, err := s.reviewRepo.FindReviewByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, domainerrors.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review")
	}

	if review.AuthorID != authorID {
		return nil, domainerrors.ErrForbidden.WrapMessage("only the author can modify a review")
	}

	return review, nil
}

// refreshRatingStats recomputes the itinerary's aggregate rating inside the
// caller's transaction so the aggregate never drifts from the review rows.
func (s *reviewService) refreshRatingStats(ctx context.Context, factory repository.RepositoryFactory, itineraryID uuid.UUID) error {
	stats, err := factory.NewReviewRepository().RatingStatsByItinerary(ctx, itineraryID)
	if err != nil {
		return errors.Wrap(err, "failed to compute rating stats")
	}

	if err := factory.NewItineraryRepository().UpdateRatingStats(ctx, itineraryID, stats.AverageRating, stats.ReviewCount); err != nil {
		return errors.Wrap(err, "failed to update itinerary rating stats")
	}

	return nil
}
