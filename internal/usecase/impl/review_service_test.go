package impl

import (
	"context"
	"testing"

	"wayfare/internal/domain/entity"
	domainerrors "wayfare/internal/domain/errors"
	"wayfare/internal/domain/repository"
	mockrepo "wayfare/internal/mocks/repository"
	"wayfare/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reviewTestMocks struct {
	reviewRepo    *mockrepo.MockReviewRepository
	purchaseRepo  *mockrepo.MockPurchaseRepository
	itineraryRepo *mockrepo.MockItineraryRepository
}

func newReviewService(t *testing.T) (usecase.ReviewUsecase, *reviewTestMocks) {
	t.Helper()

	mocks := &reviewTestMocks{
		reviewRepo:    mockrepo.NewMockReviewRepository(t),
		purchaseRepo:  mockrepo.NewMockPurchaseRepository(t),
		itineraryRepo: mockrepo.NewMockItineraryRepository(t),
	}

	txManager := &stubTxManager{factory: &stubRepositoryFactory{
		reviewRepo:    mocks.reviewRepo,
		itineraryRepo: mocks.itineraryRepo,
	}}

	svc := NewReviewService(ReviewServiceParams{
		ReviewRepo:   mocks.reviewRepo,
		PurchaseRepo: mocks.purchaseRepo,
		TxManager:    txManager,
	})

	return svc, mocks
}

func TestCreateReview_InvalidRating(t *testing.T) {
	svc, _ := newReviewService(t)

	for _, rating := range []int{0, -1, 6, 100} {
		_, err := svc.CreateReview(context.Background(), uuid.New(), uuid.New(),
			usecase.ReviewInput{Rating: rating})

		require.ErrorIs(t, err, domainerrors.ErrInvalidRating)
	}
}

func TestCreateReview_NotEntitled(t *testing.T) {
	svc, mocks := newReviewService(t)
	ctx := context.Background()

	authorID := uuid.New()
	itineraryID := uuid.New()
	mocks.purchaseRepo.On("HasPurchase", ctx, authorID, itineraryID).Return(false, nil)

	_, err := svc.CreateReview(ctx, authorID, itineraryID, usecase.ReviewInput{Rating: 5})

	require.ErrorIs(t, err, domainerrors.ErrNotEntitled)
}

func TestCreateReview_Success(t *testing.T) {
	svc, mocks := newReviewService(t)
	ctx := context.Background()

	authorID := uuid.New()
	itineraryID := uuid.New()

	mocks.purchaseRepo.On("HasPurchase", ctx, authorID, itineraryID).Return(true, nil)
	mocks.reviewRepo.On("CreateReview", ctx, mock.MatchedBy(func(r *entity.Review) bool {
		return r.AuthorID == authorID && r.ItineraryID == itineraryID && r.Rating == 4
	})).Return(nil)
	mocks.reviewRepo.On("RatingStatsByItinerary", ctx, itineraryID).
		Return(&repository.RatingStats{AverageRating: 4, ReviewCount: 1}, nil)
	mocks.itineraryRepo.On("UpdateRatingStats", ctx, itineraryID, 4.0, 1).Return(nil)

	review, err := svc.CreateReview(ctx, authorID, itineraryID,
		usecase.ReviewInput{Rating: 4, Comment: "Great plan, loose day 3"})

	require.NoError(t, err)
	assert.Equal(t, 4, review.Rating)
}

func TestCreateReview_Duplicate(t *testing.T) {
	svc, mocks := newReviewService(t)
	ctx := context.Background()

	authorID := uuid.New()
	itineraryID := uuid.New()

	mocks.purchaseRepo.On("HasPurchase", ctx, authorID, itineraryID).Return(true, nil)
	mocks.reviewRepo.On("CreateReview", ctx, mock.Anything).
		Return(repository.ErrDuplicateReview)

	_, err := svc.CreateReview(ctx, authorID, itineraryID, usecase.ReviewInput{Rating: 5})

	require.ErrorIs(t, err, domainerrors.ErrDuplicateReview)
}

func TestUpdateReview_AuthorOnly(t *testing.T) {
	svc, mocks := newReviewService(t)
	ctx := context.Background()

	review := &entity.Review{
		ID:          uuid.New(),
		ItineraryID: uuid.New(),
		AuthorID:    uuid.New(),
		Rating:      3,
	}
	mocks.reviewRepo.On("FindReviewByID", ctx, review.ID).Return(review, nil)

	rating := 5
	_, err := svc.UpdateReview(ctx, uuid.New(), review.ID, usecase.ReviewPatch{Rating: &rating})

	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestUpdateReview_Success(t *testing.T) {
	svc, mocks := newReviewService(t)
	ctx := context.Background()

	authorID := uuid.New()
	review := &entity.Review{
		ID:          uuid.New(),
		ItineraryID: uuid.New(),
		AuthorID:    authorID,
		Rating:      3,
		Comment:     "fine",
	}

	mocks.reviewRepo.On("FindReviewByID", ctx, review.ID).Return(review, nil)
	mocks.reviewRepo.On("UpdateReview", ctx, mock.MatchedBy(func(r *entity.Review) bool {
		return r.ID == review.ID && r.Rating == 5 && r.Comment == "changed my mind"
	})).Return(nil)
	mocks.reviewRepo.On("RatingStatsByItinerary", ctx, review.ItineraryID).
		Return(&repository.RatingStats{AverageRating: 5, ReviewCount: 1}, nil)
	mocks.itineraryRepo.On("UpdateRatingStats", ctx, review.ItineraryID, 5.0, 1).Return(nil)

	rating := 5
	comment := "changed my mind"
	updated, err := svc.UpdateReview(ctx, authorID, review.ID,
		usecase.ReviewPatch{Rating: &rating, Comment: &comment})

	require.NoError(t, err)
	assert.Equal(t, 5, updated.Rating)
}

func TestUpdateReview_CommentOnlyKeepsRating(t *testing.T) {
	svc, mocks := newReviewService(t)
	ctx := context.Background()

	authorID := uuid.New()
	review := &entity.Review{
		ID:          uuid.New(),
		ItineraryID: uuid.New(),
		AuthorID:    authorID,
		Rating:      4,
		Comment:     "solid route",
	}

	mocks.reviewRepo.On("FindReviewByID", ctx, review.ID).Return(review, nil)
	mocks.reviewRepo.On("UpdateReview", ctx, mock.MatchedBy(func(r *entity.Review) bool {
		return r.Rating == 4 && r.Comment == "solid route, day 3 got rained out"
	})).Return(nil)
	mocks.reviewRepo.On("RatingStatsByItinerary", ctx, review.ItineraryID).
		Return(&repository.RatingStats{AverageRating: 4, ReviewCount: 1}, nil)
	mocks.itineraryRepo.On("UpdateRatingStats", ctx, review.ItineraryID, 4.0, 1).Return(nil)

	comment := "solid route, day 3 got rained out"
	updated, err := svc.UpdateReview(ctx, authorID, review.ID,
		usecase.ReviewPatch{Comment: &comment})

	require.NoError(t, err)
	assert.Equal(t, 4, updated.Rating)
}

func TestUpdateReview_RatingOnlyKeepsComment(t *testing.T) {
	svc, mocks := newReviewService(t)
	ctx := context.Background()

	authorID := uuid.New()
	review := &entity.Review{
		ID:          uuid.New(),
		ItineraryID: uuid.New(),
		AuthorID:    authorID,
		Rating:      2,
		Comment:     "hidden gems everywhere",
	}

	mocks.reviewRepo.On("FindReviewByID", ctx, review.ID).Return(review, nil)
	mocks.reviewRepo.On("UpdateReview", ctx, mock.MatchedBy(func(r *entity.Review) bool {
		return r.Rating == 5 && r.Comment == "hidden gems everywhere"
	})).Return(nil)
	mocks.reviewRepo.On("RatingStatsByItinerary", ctx, review.ItineraryID).
		Return(&repository.RatingStats{AverageRating: 5, ReviewCount: 1}, nil)
	mocks.itineraryRepo.On("UpdateRatingStats", ctx, review.ItineraryID, 5.0, 1).Return(nil)

	rating := 5
	updated, err := svc.UpdateReview(ctx, authorID, review.ID,
		usecase.ReviewPatch{Rating: &rating})

	require.NoError(t, err)
	assert.Equal(t, "hidden gems everywhere", updated.Comment)
}

func TestUpdateReview_EmptyPatch(t *testing.T) {
	svc, _ := newReviewService(t)

	_, err := svc.UpdateReview(context.Background(), uuid.New(), uuid.New(), usecase.ReviewPatch{})

	require.ErrorIs(t, err, domainerrors.ErrInvalidRequest)
}

func TestUpdateReview_AggregateRefreshFailure(t *testing.T) {
	svc, mocks := newReviewService(t)
	ctx := context.Background()

	authorID := uuid.New()
	review := &entity.Review{
		ID:          uuid.New(),
		ItineraryID: uuid.New(),
		AuthorID:    authorID,
		Rating:      3,
	}

	statsErr := errors.New("aggregate query failed")
	mocks.reviewRepo.On("FindReviewByID", ctx, review.ID).Return(review, nil)
	mocks.reviewRepo.On("UpdateReview", ctx, mock.Anything).Return(nil)
	mocks.reviewRepo.On("RatingStatsByItinerary", ctx, review.ItineraryID).
		Return(nil, statsErr)

	rating := 5
	_, err := svc.UpdateReview(ctx, authorID, review.ID, usecase.ReviewPatch{Rating: &rating})

	require.ErrorIs(t, err, statsErr)
}

func TestDeleteReview_RecomputesAggregates(t *testing.T) {
	svc, mocks := newReviewService(t)
	ctx := context.Background()

	authorID := uuid.New()
	review := &entity.Review{
		ID:          uuid.New(),
		ItineraryID: uuid.New(),
		AuthorID:    authorID,
		Rating:      2,
	}

	mocks.reviewRepo.On("FindReviewByID", ctx, review.ID).Return(review, nil)
	mocks.reviewRepo.On("DeleteReview", ctx, review.ID).Return(nil)
	mocks.reviewRepo.On("RatingStatsByItinerary", ctx, review.ItineraryID).
		Return(&repository.RatingStats{AverageRating: 0, ReviewCount: 0}, nil)
	mocks.itineraryRepo.On("UpdateRatingStats", ctx, review.ItineraryID, 0.0, 0).Return(nil)

	require.NoError(t, svc.DeleteReview(ctx, authorID, review.ID))
}

func TestDeleteReview_AggregateRefreshFailure(t *testing.T) {
	svc, mocks := newReviewService(t)
	ctx := context.Background()

	authorID := uuid.New()
	review := &entity.Review{
		ID:          uuid.New(),
		ItineraryID: uuid.New(),
		AuthorID:    authorID,
		Rating:      2,
	}

	updateErr := errors.New("itinerary row locked")
	mocks.reviewRepo.On("FindReviewByID", ctx, review.ID).Return(review, nil)
	mocks.reviewRepo.On("DeleteReview", ctx, review.ID).Return(nil)
	mocks.reviewRepo.On("RatingStatsByItinerary", ctx, review.ItineraryID).
		Return(&repository.RatingStats{AverageRating: 0, ReviewCount: 0}, nil)
	mocks.itineraryRepo.On("UpdateRatingStats", ctx, review.ItineraryID, 0.0, 0).
		Return(updateErr)

	err := svc.DeleteReview(ctx, authorID, review.ID)

	require.ErrorIs(t, err, updateErr)
}

func TestDeleteReview_NotFound(t *testing.T) {
	svc, mocks := newReviewService(t)
	ctx := context.Background()

	reviewID := uuid.New()
	mocks.reviewRepo.On("FindReviewByID", ctx, reviewID).
		Return(nil, repository.ErrReviewNotFound)

	err := svc.DeleteReview(ctx, uuid.New(), reviewID)

	require.ErrorIs(t, err, domainerrors.ErrReviewNotFound)
}
