package impl

import (
	"context"
	"testing"

	"wayfare/internal/domain/entity"
	domainerrors "wayfare/internal/domain/errors"
	"wayfare/internal/domain/repository"
	mockrepo "wayfare/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEnsureProfile_ExistingProfileWins(t *testing.T) {
	profileRepo := mockrepo.NewMockProfileRepository(t)
	svc := NewProfileService(ProfileServiceParams{ProfileRepo: profileRepo})
	ctx := context.Background()

	principalID := uuid.New()
	stored := &entity.Profile{ID: principalID, Role: entity.RoleBuyer}
	profileRepo.On("FindProfileByID", ctx, principalID).Return(stored, nil)

	// An admin claim on the token must not override the persisted role.
	profile, err := svc.EnsureProfile(ctx, principalID, "admin")

	require.NoError(t, err)
	assert.Equal(t, entity.RoleBuyer, profile.Role)
}

func TestEnsureProfile_SeedsNarrowedRole(t *testing.T) {
	tests := []struct {
		name     string
		roleHint string
		want     entity.Role
	}{
		{name: "influencer hint survives", roleHint: "influencer", want: entity.RoleInfluencer},
		{name: "admin hint collapses to buyer", roleHint: "admin", want: entity.RoleBuyer},
		{name: "unknown hint collapses to buyer", roleHint: "superuser", want: entity.RoleBuyer},
		{name: "empty hint collapses to buyer", roleHint: "", want: entity.RoleBuyer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profileRepo := mockrepo.NewMockProfileRepository(t)
			svc := NewProfileService(ProfileServiceParams{ProfileRepo: profileRepo})
			ctx := context.Background()

			principalID := uuid.New()
			profileRepo.On("FindProfileByID", ctx, principalID).
				Return(nil, repository.ErrProfileNotFound)
			profileRepo.On("CreateProfile", ctx, mock.MatchedBy(func(p *entity.Profile) bool {
				return p.ID == principalID && p.Role == tt.want
			})).Return(nil)

			profile, err := svc.EnsureProfile(ctx, principalID, tt.roleHint)

			require.NoError(t, err)
			assert.Equal(t, tt.want, profile.Role)
			assert.Equal(t, entity.VerificationNone, profile.Verification)
		})
	}
}

func TestEnsureProfile_FirstContactRace(t *testing.T) {
	profileRepo := mockrepo.NewMockProfileRepository(t)
	svc := NewProfileService(ProfileServiceParams{ProfileRepo: profileRepo})
	ctx := context.Background()

	principalID := uuid.New()
	winner := &entity.Profile{ID: principalID, Role: entity.RoleInfluencer}

	profileRepo.On("FindProfileByID", ctx, principalID).
		Return(nil, repository.ErrProfileNotFound).Once()
	profileRepo.On("CreateProfile", ctx, mock.Anything).
		Return(repository.ErrDuplicateProfile)
	profileRepo.On("FindProfileByID", ctx, principalID).Return(winner, nil).Once()

	profile, err := svc.EnsureProfile(ctx, principalID, "buyer")

	require.NoError(t, err)
	assert.Equal(t, winner, profile)
}

func TestGetProfile_NotFound(t *testing.T) {
	profileRepo := mockrepo.NewMockProfileRepository(t)
	svc := NewProfileService(ProfileServiceParams{ProfileRepo: profileRepo})
	ctx := context.Background()

	principalID := uuid.New()
	profileRepo.On("FindProfileByID", ctx, principalID).
		Return(nil, repository.ErrProfileNotFound)

	_, err := svc.GetProfile(ctx, principalID)

	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestRequestVerification_BuyerForbidden(t *testing.T) {
	profileRepo := mockrepo.NewMockProfileRepository(t)
	svc := NewProfileService(ProfileServiceParams{ProfileRepo: profileRepo})
	ctx := context.Background()

	principalID := uuid.New()
	profileRepo.On("FindProfileByID", ctx, principalID).
		Return(&entity.Profile{ID: principalID, Role: entity.RoleBuyer}, nil)

	err := svc.RequestVerification(ctx, principalID)

	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestRequestVerification_Success(t *testing.T) {
	profileRepo := mockrepo.NewMockProfileRepository(t)
	svc := NewProfileService(ProfileServiceParams{ProfileRepo: profileRepo})
	ctx := context.Background()

	principalID := uuid.New()
	profileRepo.On("FindProfileByID", ctx, principalID).
		Return(&entity.Profile{ID: principalID, Role: entity.RoleInfluencer}, nil)
	profileRepo.On("UpdateVerification", ctx, principalID, entity.VerificationPending).Return(nil)

	require.NoError(t, svc.RequestVerification(ctx, principalID))
}

func TestSetVerification_AdminOnly(t *testing.T) {
	profileRepo := mockrepo.NewMockProfileRepository(t)
	svc := NewProfileService(ProfileServiceParams{ProfileRepo: profileRepo})
	ctx := context.Background()

	actor := &entity.Profile{ID: uuid.New(), Role: entity.RoleInfluencer}

	err := svc.SetVerification(ctx, actor, uuid.New(), entity.VerificationVerified)

	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}
