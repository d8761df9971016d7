// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"wayfare/internal/domain/entity"
	domainerrors "wayfare/internal/domain/errors"
	"wayfare/internal/domain/repository"
	"wayfare/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{
		db: db,
	}
}

// CreateReview persists a new review. The unique index on
// (author_id, itinerary_id) is the authority for the one-review invariant.
func (repo *reviewRepository) CreateReview(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateReview
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidRating.WrapMessage("rating out of range")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidRequest.WrapMessage("invalid author or itinerary reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	// Update the entity with generated values
	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt
	review.UpdatedAt = reviewM.UpdatedAt

	return nil
}

// FindReviewByID retrieves a review by its unique ID.
func (repo *reviewRepository) FindReviewByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	var reviewM model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&reviewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by ID")
	}

	return toReviewDomain(&reviewM), nil
}

// FindReviewsByItinerary retrieves all reviews for an itinerary, newest first.
func (repo *reviewRepository) FindReviewsByItinerary(ctx context.Context, itineraryID uuid.UUID) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("itinerary_id = ?", itineraryID).
		Order("created_at DESC").
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find reviews by itinerary")
	}

	reviews := make([]*entity.Review, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews, nil
}

// UpdateReview replaces the rating and comment of an existing review.
func (repo *reviewRepository) UpdateReview(ctx context.Context, review *entity.Review) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("id = ?", review.ID).
		Updates(map[string]any{
			"rating":  review.Rating,
			"comment": review.Comment,
		})

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrInvalidRating.WrapMessage("rating out of range")
		}

		return errors.Wrap(result.Error, "failed to update review")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// DeleteReview removes a review permanently.
func (repo *reviewRepository) DeleteReview(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ReviewModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete review")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// RatingStatsByItinerary computes the aggregate rating for an itinerary.
func (repo *reviewRepository) RatingStatsByItinerary(ctx context.Context, itineraryID uuid.UUID) (*repository.RatingStats, error) {
	var stats struct {
		AverageRating float64
		ReviewCount   int
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Select("COALESCE(AVG(rating), 0) AS average_rating, COUNT(*) AS review_count").
		Where("itinerary_id = ?", itineraryID).
		Scan(&stats).Error; err != nil {
		return nil, errors.Wrap(err, "failed to compute rating stats")
	}

	return &repository.RatingStats{
		AverageRating: stats.AverageRating,
		ReviewCount:   stats.ReviewCount,
	}, nil
}

// --- Mapper Functions ---

// toReviewDomain converts a GORM ReviewModel to a domain Review entity.
func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	return &entity.Review{
		ID:          data.ID,
		ItineraryID: data.ItineraryID,
		AuthorID:    data.AuthorID,
		Rating:      data.Rating,
		Comment:     data.Comment,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromReviewDomain converts a domain Review entity to a GORM ReviewModel.
func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	return &model.ReviewModel{
		ID:          data.ID,
		ItineraryID: data.ItineraryID,
		AuthorID:    data.AuthorID,
		Rating:      data.Rating,
		Comment:     data.Comment,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
