package usecase

import (
	"context"

	"wayfare/internal/domain/entity"

	"github.com/google/uuid"
)

// PhotoInput carries the uploader-supplied fields of a traveler photo.
type PhotoInput struct {
	ImageRef string
	Caption  string
}

// PhotoUsecase defines the interface for traveler photo use cases.
type PhotoUsecase interface {
	// AddPhoto attaches a photo to an itinerary the uploader has purchased.
	AddPhoto(ctx context.Context, uploaderID, itineraryID uuid.UUID, input PhotoInput) (*entity.TravelerPhoto, error)

	// ListPhotos retrieves all photos for an itinerary, newest first.
	ListPhotos(ctx context.Context, itineraryID uuid.UUID) ([]*entity.TravelerPhoto, error)
}
