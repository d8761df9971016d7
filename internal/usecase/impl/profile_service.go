package impl

import (
	"context"

	"wayfare/internal/domain/entity"
	domainerrors "wayfare/internal/domain/errors"
	"wayfare/internal/domain/repository"
	"wayfare/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type profileService struct {
	profileRepo repository.ProfileRepository
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	ProfileRepo repository.ProfileRepository
}

// NewProfileService creates a new profile service instance
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: params.ProfileRepo,
	}
}

// EnsureProfile returns the persisted profile for a principal, creating it
// from the narrowed role hint on first contact. The hint never overrides an
// existing profile.
func (s *profileService) EnsureProfile(ctx context.Context, principalID uuid.UUID, roleHint string) (*entity.Profile, error) {
	profile, err := s.profileRepo.FindProfileByID(ctx, principalID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, errors.Wrap(err, "failed to find profile")
	}

	profile = &entity.Profile{
		ID:           principalID,
		Role:         entity.SeedRole(roleHint),
		Verification: entity.VerificationNone,
	}

	if err := s.profileRepo.CreateProfile(ctx, profile); err != nil {
		// Lost a first-contact race; the winner's row is authoritative.
		if errors.Is(err, repository.ErrDuplicateProfile) {
			return s.profileRepo.FindProfileByID(ctx, principalID)
		}

		return nil, errors.Wrap(err, "failed to create profile")
	}

	return profile, nil
}

// GetProfile retrieves a profile by principal ID.
func (s *profileService) GetProfile(ctx context.Context, principalID uuid.UUID) (*entity.Profile, error) {
	profile, err := s.profileRepo.FindProfileByID(ctx, principalID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return profile, nil
}

// RequestVerification moves a creator profile into the pending verification state.
func (s *profileService) RequestVerification(ctx context.Context, principalID uuid.UUID) error {
	profile, err := s.GetProfile(ctx, principalID)
	if err != nil {
		return err
	}

	if profile.Role != entity.RoleInfluencer {
		return domainerrors.ErrForbidden.WrapMessage("only creators can request verification")
	}
	if profile.Verification == entity.VerificationVerified {
		return domainerrors.ErrConflict.WrapMessage("profile is already verified")
	}

	if err := s.profileRepo.UpdateVerification(ctx, principalID, entity.VerificationPending); err != nil {
		return errors.Wrap(err, "failed to update verification status")
	}

	return nil
}

// SetVerification sets the verification status of a profile. Admin only.
func (s *profileService) SetVerification(ctx context.Context, actor *entity.Profile, principalID uuid.UUID, status entity.VerificationStatus) error {
	if actor == nil || actor.Role != entity.RoleAdmin {
		return domainerrors.ErrForbidden
	}

	if _, err := s.GetProfile(ctx, principalID); err != nil {
		return err
	}

	if err := s.profileRepo.UpdateVerification(ctx, principalID, status); err != nil {
		return errors.Wrap(err, "failed to update verification status")
	}

	return nil
}
