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

// itineraryRepository implements the repository.ItineraryRepository interface.
type itineraryRepository struct {
	db *gorm.DB
}

// NewItineraryRepository is the constructor for itineraryRepository.
func NewItineraryRepository(db *gorm.DB) repository.ItineraryRepository {
	return &itineraryRepository{
		db: db,
	}
}

// CreateItinerary persists a new itinerary.
func (repo *itineraryRepository) CreateItinerary(ctx context.Context, itinerary *entity.Itinerary) error {
	itineraryM := fromItineraryDomain(itinerary)

	if err := repo.db.WithContext(ctx).Create(itineraryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidRequest.WrapMessage("invalid creator reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInvalidRequest.WrapMessage("missing required itinerary information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create itinerary")
	}

	// Update the entity with generated values
	itinerary.ID = itineraryM.ID
	itinerary.CreatedAt = itineraryM.CreatedAt
	itinerary.UpdatedAt = itineraryM.UpdatedAt

	return nil
}

// FindItineraryByID retrieves an itinerary by its unique ID.
func (repo *itineraryRepository) FindItineraryByID(ctx context.Context, id uuid.UUID) (*entity.Itinerary, error) {
	var itineraryM model.ItineraryModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&itineraryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrItineraryNotFound
		}

		return nil, errors.Wrap(err, "failed to find itinerary by ID")
	}

	return toItineraryDomain(&itineraryM), nil
}

// FindPublishedItineraries retrieves all itineraries that are published and approved.
func (repo *itineraryRepository) FindPublishedItineraries(ctx context.Context) ([]*entity.Itinerary, error) {
	var itineraryModels []*model.ItineraryModel

	if err := repo.db.WithContext(ctx).
		Where("is_published = ? AND is_approved = ?", true, true).
		Order("created_at DESC").
		Find(&itineraryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find published itineraries")
	}

	itineraries := make([]*entity.Itinerary, 0, len(itineraryModels))
	for _, itineraryM := range itineraryModels {
		itineraries = append(itineraries, toItineraryDomain(itineraryM))
	}

	return itineraries, nil
}

// FindItinerariesByCreator retrieves all itineraries owned by a creator.
func (repo *itineraryRepository) FindItinerariesByCreator(ctx context.Context, creatorID uuid.UUID) ([]*entity.Itinerary, error) {
	var itineraryModels []*model.ItineraryModel

	if err := repo.db.WithContext(ctx).
		Where("creator_id = ?", creatorID).
		Order("created_at DESC").
		Find(&itineraryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find itineraries by creator")
	}

	itineraries := make([]*entity.Itinerary, 0, len(itineraryModels))
	for _, itineraryM := range itineraryModels {
		itineraries = append(itineraries, toItineraryDomain(itineraryM))
	}

	return itineraries, nil
}

// SetApproval updates the approval flag of an itinerary and nothing else.
func (repo *itineraryRepository) SetApproval(ctx context.Context, id uuid.UUID, approved bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ItineraryModel{}).
		Where("id = ?", id).
		Update("is_approved", approved)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update itinerary approval")
	}

	if result.RowsAffected == 0 {
		return repository.ErrItineraryNotFound
	}

	return nil
}

// UpdateRatingStats replaces the aggregate rating and review count.
func (repo *itineraryRepository) UpdateRatingStats(ctx context.Context, id uuid.UUID, averageRating float64, reviewCount int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ItineraryModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"average_rating": averageRating,
			"review_count":   reviewCount,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update itinerary rating stats")
	}

	if result.RowsAffected == 0 {
		return repository.ErrItineraryNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toItineraryDomain converts a GORM ItineraryModel to a domain Itinerary entity.
func toItineraryDomain(data *model.ItineraryModel) *entity.Itinerary {
	if data == nil {
		return nil
	}

	return &entity.Itinerary{
		ID:            data.ID,
		CreatorID:     data.CreatorID,
		Title:         data.Title,
		Location:      data.Location,
		Description:   data.Description,
		PlanDetails:   data.PlanDetails,
		Price:         data.Price,
		Currency:      data.Currency,
		IsPublished:   data.IsPublished,
		IsApproved:    data.IsApproved,
		AverageRating: data.AverageRating,
		ReviewCount:   data.ReviewCount,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromItineraryDomain converts a domain Itinerary entity to a GORM ItineraryModel.
func fromItineraryDomain(data *entity.Itinerary) *model.ItineraryModel {
	if data == nil {
		return nil
	}

	return &model.ItineraryModel{
		ID:            data.ID,
		CreatorID:     data.CreatorID,
		Title:         data.Title,
		Location:      data.Location,
		Description:   data.Description,
		PlanDetails:   data.PlanDetails,
		Price:         data.Price,
		Currency:      data.Currency,
		IsPublished:   data.IsPublished,
		IsApproved:    data.IsApproved,
		AverageRating: data.AverageRating,
		ReviewCount:   data.ReviewCount,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
