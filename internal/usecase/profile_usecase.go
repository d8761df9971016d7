package usecase

import (
	"context"

	"wayfare/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the interface for profile management use cases.
// The persisted profile is the sole authority for authorization decisions;
// token claims only ever seed a profile that does not exist yet.
type ProfileUsecase interface {
	// EnsureProfile returns the persisted profile for a principal, creating it
	// from the narrowed role hint on first contact.
	EnsureProfile(ctx context.Context, principalID uuid.UUID, roleHint string) (*entity.Profile, error)

	// GetProfile retrieves a profile by principal ID.
	GetProfile(ctx context.Context, principalID uuid.UUID) (*entity.Profile, error)

	// RequestVerification moves a creator profile into the pending verification state.
	RequestVerification(ctx context.Context, principalID uuid.UUID) error

	// SetVerification sets the verification status of a profile. Admin only.
	SetVerification(ctx context.Context, actor *entity.Profile, principalID uuid.UUID, status entity.VerificationStatus) error
}
