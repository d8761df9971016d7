package impl

import (
	"context"
	"testing"

	"wayfare/internal/domain/entity"
	domainerrors "wayfare/internal/domain/errors"
	mockrepo "wayfare/internal/mocks/repository"
	"wayfare/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type photoTestMocks struct {
	photoRepo     *mockrepo.MockPhotoRepository
	purchaseRepo  *mockrepo.MockPurchaseRepository
	itineraryRepo *mockrepo.MockItineraryRepository
}

func newPhotoService(t *testing.T) (usecase.PhotoUsecase, *photoTestMocks) {
	t.Helper()

	mocks := &photoTestMocks{
		photoRepo:     mockrepo.NewMockPhotoRepository(t),
		purchaseRepo:  mockrepo.NewMockPurchaseRepository(t),
		itineraryRepo: mockrepo.NewMockItineraryRepository(t),
	}

	svc := NewPhotoService(PhotoServiceParams{
		PhotoRepo:     mocks.photoRepo,
		PurchaseRepo:  mocks.purchaseRepo,
		ItineraryRepo: mocks.itineraryRepo,
	})

	return svc, mocks
}

func TestAddPhoto_MissingImageRef(t *testing.T) {
	svc, _ := newPhotoService(t)

	_, err := svc.AddPhoto(context.Background(), uuid.New(), uuid.New(),
		usecase.PhotoInput{ImageRef: "   "})

	require.ErrorIs(t, err, domainerrors.ErrInvalidRequest)
}

func TestAddPhoto_NotEntitled(t *testing.T) {
	svc, mocks := newPhotoService(t)
	ctx := context.Background()

	uploaderID := uuid.New()
	itinerary := &entity.Itinerary{ID: uuid.New()}

	mocks.itineraryRepo.On("FindItineraryByID", ctx, itinerary.ID).Return(itinerary, nil)
	mocks.purchaseRepo.On("HasPurchase", ctx, uploaderID, itinerary.ID).Return(false, nil)

	_, err := svc.AddPhoto(ctx, uploaderID, itinerary.ID,
		usecase.PhotoInput{ImageRef: "photos/beach.jpg"})

	require.ErrorIs(t, err, domainerrors.ErrNotEntitled)
}

func TestAddPhoto_Success(t *testing.T) {
	svc, mocks := newPhotoService(t)
	ctx := context.Background()

	uploaderID := uuid.New()
	itinerary := &entity.Itinerary{ID: uuid.New()}

	mocks.itineraryRepo.On("FindItineraryByID", ctx, itinerary.ID).Return(itinerary, nil)
	mocks.purchaseRepo.On("HasPurchase", ctx, uploaderID, itinerary.ID).Return(true, nil)
	mocks.photoRepo.On("CreatePhoto", ctx, mock.MatchedBy(func(p *entity.TravelerPhoto) bool {
		return p.UploaderID == uploaderID &&
			p.ItineraryID == itinerary.ID &&
			p.ImageRef == "photos/beach.jpg"
	})).Return(nil)

	photo, err := svc.AddPhoto(ctx, uploaderID, itinerary.ID,
		usecase.PhotoInput{ImageRef: "photos/beach.jpg", Caption: "sunset"})

	require.NoError(t, err)
	assert.Equal(t, "sunset", photo.Caption)
}

func TestListPhotos(t *testing.T) {
	svc, mocks := newPhotoService(t)
	ctx := context.Background()

	itineraryID := uuid.New()
	photos := []*entity.TravelerPhoto{{ID: uuid.New(), ItineraryID: itineraryID}}
	mocks.photoRepo.On("FindPhotosByItinerary", ctx, itineraryID).Return(photos, nil)

	got, err := svc.ListPhotos(ctx, itineraryID)

	require.NoError(t, err)
	assert.Len(t, got, 1)
}
