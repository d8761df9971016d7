// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"wayfare/internal/domain/entity"
	"wayfare/internal/errors"

	"github.com/google/uuid"
)

// ErrPhotoNotFound is returned when a traveler photo is not found.
var ErrPhotoNotFound = errors.New("photo not found")

// PhotoRepository defines the interface for traveler-photo database operations.
type PhotoRepository interface {
	// CreatePhoto persists a new traveler photo.
	CreatePhoto(ctx context.Context, photo *entity.TravelerPhoto) error

	// FindPhotosByItinerary retrieves all photos for an itinerary, newest first.
	FindPhotosByItinerary(ctx context.Context, itineraryID uuid.UUID) ([]*entity.TravelerPhoto, error)
}
