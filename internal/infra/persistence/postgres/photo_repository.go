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

// photoRepository implements the repository.PhotoRepository interface.
type photoRepository struct {
	db *gorm.DB
}

// NewPhotoRepository is the constructor for photoRepository.
func NewPhotoRepository(db *gorm.DB) repository.PhotoRepository {
	return &photoRepository{
		db: db,
	}
}

// CreatePhoto persists a new traveler photo.
func (repo *photoRepository) CreatePhoto(ctx context.Context, photo *entity.TravelerPhoto) error {
	photoM := fromPhotoDomain(photo)

	if err := repo.db.WithContext(ctx).Create(photoM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidRequest.WrapMessage("invalid uploader or itinerary reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInvalidRequest.WrapMessage("missing required photo information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create traveler photo")
	}

	// Update the entity with generated values
	photo.ID = photoM.ID
	photo.CreatedAt = photoM.CreatedAt

	return nil
}

// FindPhotosByItinerary retrieves all photos for an itinerary, newest first.
func (repo *photoRepository) FindPhotosByItinerary(ctx context.Context, itineraryID uuid.UUID) ([]*entity.TravelerPhoto, error) {
	var photoModels []*model.TravelerPhotoModel

	if err := repo.db.WithContext(ctx).
		Where("itinerary_id = ?", itineraryID).
		Order("created_at DESC").
		Find(&photoModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find photos by itinerary")
	}

	photos := make([]*entity.TravelerPhoto, 0, len(photoModels))
	for _, photoM := range photoModels {
		photos = append(photos, toPhotoDomain(photoM))
	}

	return photos, nil
}

// --- Mapper Functions ---

// toPhotoDomain converts a GORM TravelerPhotoModel to a domain TravelerPhoto entity.
func toPhotoDomain(data *model.TravelerPhotoModel) *entity.TravelerPhoto {
	if data == nil {
		return nil
	}

	return &entity.TravelerPhoto{
		ID:          data.ID,
		ItineraryID: data.ItineraryID,
		UploaderID:  data.UploaderID,
		ImageRef:    data.ImageRef,
		Caption:     data.Caption,
		CreatedAt:   data.CreatedAt,
	}
}

// fromPhotoDomain converts a domain TravelerPhoto entity to a GORM TravelerPhotoModel.
func fromPhotoDomain(data *entity.TravelerPhoto) *model.TravelerPhotoModel {
	if data == nil {
		return nil
	}

	return &model.TravelerPhotoModel{
		ID:          data.ID,
		ItineraryID: data.ItineraryID,
		UploaderID:  data.UploaderID,
		ImageRef:    data.ImageRef,
		Caption:     data.Caption,
		CreatedAt:   data.CreatedAt,
	}
}
