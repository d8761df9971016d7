// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"wayfare/internal/domain/entity"
	"wayfare/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for profile persistence.
var (
	// ErrProfileNotFound is returned when a profile is not found.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrDuplicateProfile is returned when a profile already exists for the principal.
	ErrDuplicateProfile = errors.New("profile already exists")
)

// ProfileRepository defines the interface for profile-related database operations.
type ProfileRepository interface {
	// CreateProfile persists a new profile for a principal.
	CreateProfile(ctx context.Context, profile *entity.Profile) error

	// FindProfileByID retrieves a profile by its principal identifier.
	FindProfileByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)

	// UpdateVerification updates the verification status of a profile.
	UpdateVerification(ctx context.Context, id uuid.UUID, status entity.VerificationStatus) error
}
