package impl

import (
	"context"
	"testing"

	"wayfare/config"
	"wayfare/internal/domain/entity"
	domainerrors "wayfare/internal/domain/errors"
	"wayfare/internal/domain/repository"
	mockrepo "wayfare/internal/mocks/repository"
	"wayfare/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type itineraryTestMocks struct {
	itineraryRepo *mockrepo.MockItineraryRepository
	purchaseRepo  *mockrepo.MockPurchaseRepository
}

func newItineraryService(t *testing.T) (usecase.ItineraryUsecase, *itineraryTestMocks) {
	t.Helper()

	mocks := &itineraryTestMocks{
		itineraryRepo: mockrepo.NewMockItineraryRepository(t),
		purchaseRepo:  mockrepo.NewMockPurchaseRepository(t),
	}

	svc := NewItineraryService(ItineraryServiceParams{
		ItineraryRepo: mocks.itineraryRepo,
		PurchaseRepo:  mocks.purchaseRepo,
		Config: &config.Config{
			Payment: &config.PaymentConfig{Currency: "INR"},
		},
	})

	return svc, mocks
}

func validItineraryInput() usecase.CreateItineraryInput {
	return usecase.CreateItineraryInput{
		Title:       "Jaipur Heritage Walk",
		Location:    "Jaipur",
		Description: "Three days through the pink city",
		PlanDetails: "Day 1: Amber Fort...",
		Price:       799,
		Publish:     true,
	}
}

func TestCreateItinerary_BuyerForbidden(t *testing.T) {
	svc, _ := newItineraryService(t)

	actor := &entity.Profile{ID: uuid.New(), Role: entity.RoleBuyer}
	_, err := svc.CreateItinerary(context.Background(), actor, validItineraryInput())

	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestCreateItinerary_Success(t *testing.T) {
	svc, mocks := newItineraryService(t)
	ctx := context.Background()

	actor := &entity.Profile{ID: uuid.New(), Role: entity.RoleInfluencer}

	mocks.itineraryRepo.On("CreateItinerary", ctx, mock.MatchedBy(func(i *entity.Itinerary) bool {
		return i.CreatorID == actor.ID &&
			i.IsPublished &&
			!i.IsApproved && // approval is never creator-settable
			i.Currency == "INR"
	})).Return(nil)

	itinerary, err := svc.CreateItinerary(ctx, actor, validItineraryInput())

	require.NoError(t, err)
	assert.Equal(t, 799.0, itinerary.Price)
	assert.False(t, itinerary.IsApproved)
}

func TestCreateItinerary_InvalidInput(t *testing.T) {
	svc, _ := newItineraryService(t)
	actor := &entity.Profile{ID: uuid.New(), Role: entity.RoleInfluencer}

	tests := []struct {
		name   string
		mutate func(*usecase.CreateItineraryInput)
	}{
		{name: "empty title", mutate: func(in *usecase.CreateItineraryInput) { in.Title = "  " }},
		{name: "empty plan", mutate: func(in *usecase.CreateItineraryInput) { in.PlanDetails = "" }},
		{name: "zero price", mutate: func(in *usecase.CreateItineraryInput) { in.Price = 0 }},
		{name: "negative price", mutate: func(in *usecase.CreateItineraryInput) { in.Price = -10 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validItineraryInput()
			tt.mutate(&input)

			_, err := svc.CreateItinerary(context.Background(), actor, input)

			require.ErrorIs(t, err, domainerrors.ErrInvalidRequest)
		})
	}
}

func publishedItinerary(creatorID uuid.UUID) *entity.Itinerary {
	return &entity.Itinerary{
		ID:          uuid.New(),
		CreatorID:   creatorID,
		Title:       "Jaipur Heritage Walk",
		PlanDetails: "Day 1: Amber Fort...",
		Price:       799,
		Currency:    "INR",
		IsPublished: true,
		IsApproved:  true,
	}
}

func TestGetItinerary_AnonymousSeesLockedSummary(t *testing.T) {
	svc, mocks := newItineraryService(t)
	ctx := context.Background()

	itinerary := publishedItinerary(uuid.New())
	mocks.itineraryRepo.On("FindItineraryByID", ctx, itinerary.ID).Return(itinerary, nil)

	detail, err := svc.GetItinerary(ctx, nil, itinerary.ID)

	require.NoError(t, err)
	assert.False(t, detail.Unlocked)
	assert.Empty(t, detail.Itinerary.PlanDetails)
}

func TestGetItinerary_PurchaserUnlocksPlan(t *testing.T) {
	svc, mocks := newItineraryService(t)
	ctx := context.Background()

	viewer := &entity.Profile{ID: uuid.New(), Role: entity.RoleBuyer}
	itinerary := publishedItinerary(uuid.New())

	mocks.itineraryRepo.On("FindItineraryByID", ctx, itinerary.ID).Return(itinerary, nil)
	mocks.purchaseRepo.On("HasPurchase", ctx, viewer.ID, itinerary.ID).Return(true, nil)

	detail, err := svc.GetItinerary(ctx, viewer, itinerary.ID)

	require.NoError(t, err)
	assert.True(t, detail.Unlocked)
	assert.NotEmpty(t, detail.Itinerary.PlanDetails)
}

func TestGetItinerary_OwnerUnlocksWithoutPurchase(t *testing.T) {
	svc, mocks := newItineraryService(t)
	ctx := context.Background()

	owner := &entity.Profile{ID: uuid.New(), Role: entity.RoleInfluencer}
	itinerary := publishedItinerary(owner.ID)

	mocks.itineraryRepo.On("FindItineraryByID", ctx, itinerary.ID).Return(itinerary, nil)

	detail, err := svc.GetItinerary(ctx, owner, itinerary.ID)

	require.NoError(t, err)
	assert.True(t, detail.Unlocked)
}

func TestGetItinerary_UnapprovedHiddenFromStrangers(t *testing.T) {
	svc, mocks := newItineraryService(t)
	ctx := context.Background()

	itinerary := publishedItinerary(uuid.New())
	itinerary.IsApproved = false
	mocks.itineraryRepo.On("FindItineraryByID", ctx, itinerary.ID).Return(itinerary, nil)

	_, err := svc.GetItinerary(ctx, nil, itinerary.ID)

	require.ErrorIs(t, err, domainerrors.ErrItineraryNotFound)
}

func TestSetApproval_AdminOnly(t *testing.T) {
	svc, _ := newItineraryService(t)

	actor := &entity.Profile{ID: uuid.New(), Role: entity.RoleInfluencer}
	err := svc.SetApproval(context.Background(), actor, uuid.New(), true)

	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestSetApproval_Success(t *testing.T) {
	svc, mocks := newItineraryService(t)
	ctx := context.Background()

	admin := &entity.Profile{ID: uuid.New(), Role: entity.RoleAdmin}
	itineraryID := uuid.New()
	mocks.itineraryRepo.On("SetApproval", ctx, itineraryID, true).Return(nil)

	require.NoError(t, svc.SetApproval(ctx, admin, itineraryID, true))
}

func TestSetApproval_NotFound(t *testing.T) {
	svc, mocks := newItineraryService(t)
	ctx := context.Background()

	admin := &entity.Profile{ID: uuid.New(), Role: entity.RoleAdmin}
	itineraryID := uuid.New()
	mocks.itineraryRepo.On("SetApproval", ctx, itineraryID, false).
		Return(repository.ErrItineraryNotFound)

	err := svc.SetApproval(ctx, admin, itineraryID, false)

	require.ErrorIs(t, err, domainerrors.ErrItineraryNotFound)
}
