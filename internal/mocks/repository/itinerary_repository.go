package repository

import (
	"context"

	"wayfare/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockItineraryRepository is a mock implementation of repository.ItineraryRepository.
type MockItineraryRepository struct {
	mock.Mock
}

// NewMockItineraryRepository creates a new mock with expectations asserted on cleanup.
func NewMockItineraryRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockItineraryRepository {
	m := &MockItineraryRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockItineraryRepository) CreateItinerary(ctx context.Context, itinerary *entity.Itinerary) error {
	args := m.Called(ctx, itinerary)

	return args.Error(0)
}

func (m *MockItineraryRepository) FindItineraryByID(ctx context.Context, id uuid.UUID) (*entity.Itinerary, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Itinerary), args.Error(1)
}

func (m *MockItineraryRepository) FindPublishedItineraries(ctx context.Context) ([]*entity.Itinerary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Itinerary), args.Error(1)
}

func (m *MockItineraryRepository) FindItinerariesByCreator(ctx context.Context, creatorID uuid.UUID) ([]*entity.Itinerary, error) {
	args := m.Called(ctx, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Itinerary), args.Error(1)
}

func (m *MockItineraryRepository) SetApproval(ctx context.Context, id uuid.UUID, approved bool) error {
	args := m.Called(ctx, id, approved)

	return args.Error(0)
}

func (m *MockItineraryRepository) UpdateRatingStats(ctx context.Context, id uuid.UUID, averageRating float64, reviewCount int) error {
	args := m.Called(ctx, id, averageRating, reviewCount)

	return args.Error(0)
}
