package repository

import (
	"context"

	"wayfare/internal/domain/entity"
	"wayfare/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockReviewRepository is a mock implementation of repository.ReviewRepository.
type MockReviewRepository struct {
	mock.Mock
}

// NewMockReviewRepository creates a new mock with expectations asserted on cleanup.
func NewMockReviewRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockReviewRepository {
	m := &MockReviewRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockReviewRepository) CreateReview(ctx context.Context, review *entity.Review) error {
	args := m.Called(ctx, review)

	return args.Error(0)
}

func (m *MockReviewRepository) FindReviewByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Review), args.Error(1)
}

func (m *MockReviewRepository) FindReviewsByItinerary(ctx context.Context, itineraryID uuid.UUID) ([]*entity.Review, error) {
	args := m.Called(ctx, itineraryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Review), args.Error(1)
}

func (m *MockReviewRepository) UpdateReview(ctx context.Context, review *entity.Review) error {
	args := m.Called(ctx, review)

	return args.Error(0)
}

func (m *MockReviewRepository) DeleteReview(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *MockReviewRepository) RatingStatsByItinerary(ctx context.Context, itineraryID uuid.UUID) (*repository.RatingStats, error) {
	args := m.Called(ctx, itineraryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*repository.RatingStats), args.Error(1)
}
