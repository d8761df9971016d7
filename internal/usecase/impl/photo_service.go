package impl

import (
	"context"
	"strings"

	"wayfare/internal/domain/entity"
	domainerrors "wayfare/internal/domain/errors"
	"wayfare/internal/domain/repository"
	"wayfare/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type photoService struct {
	photoRepo     repository.PhotoRepository
	purchaseRepo  repository.PurchaseRepository
	itineraryRepo repository.ItineraryRepository
}

// PhotoServiceParams holds dependencies for PhotoService, injected by Fx.
type PhotoServiceParams struct {
	fx.In

	PhotoRepo     repository.PhotoRepository
	PurchaseRepo  repository.PurchaseRepository
	ItineraryRepo repository.ItineraryRepository
}

// NewPhotoService creates a new photo service instance
func NewPhotoService(params PhotoServiceParams) usecase.PhotoUsecase {
	return &photoService{
		photoRepo:     params.PhotoRepo,
		purchaseRepo:  params.PurchaseRepo,
		itineraryRepo: params.ItineraryRepo,
	}
}

// AddPhoto attaches a photo to an itinerary the uploader has purchased.
func (s *photoService) AddPhoto(ctx context.Context, uploaderID, itineraryID uuid.UUID, input usecase.PhotoInput) (*entity.TravelerPhoto, error) {
	if strings.TrimSpace(input.ImageRef) == "" {
		return nil, domainerrors.ErrInvalidRequest.WrapMessage("image reference is required")
	}

	if _, err := s.itineraryRepo.FindItineraryByID(ctx, itineraryID); err != nil {
		if errors.Is(err, repository.ErrItineraryNotFound) {
			return nil, domainerrors.ErrItineraryNotFound
		}

		return nil, errors.Wrap(err, "failed to find itinerary")
	}

	purchased, err := s.purchaseRepo.HasPurchase(ctx, uploaderID, itineraryID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check purchase existence")
	}
	if !purchased {
		return nil, domainerrors.ErrNotEntitled
	}

	photo := &entity.TravelerPhoto{
		ID:          uuid.New(),
		ItineraryID: itineraryID,
		UploaderID:  uploaderID,
		ImageRef:    input.ImageRef,
		Caption:     input.Caption,
	}

	if err := s.photoRepo.CreatePhoto(ctx, photo); err != nil {
		return nil, errors.Wrap(err, "failed to create traveler photo")
	}

	return photo, nil
}

// ListPhotos retrieves all photos for an itinerary, newest first.
func (s *photoService) ListPhotos(ctx context.Context, itineraryID uuid.UUID) ([]*entity.TravelerPhoto, error) {
	photos, err := s.photoRepo.FindPhotosByItinerary(ctx, itineraryID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find photos by itinerary")
	}

	return photos, nil
}
