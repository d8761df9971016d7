package repository

import (
	"context"

	"wayfare/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAnalyticsRepository is a mock implementation of repository.AnalyticsRepository.
type MockAnalyticsRepository struct {
	mock.Mock
}

// NewMockAnalyticsRepository creates a new mock with expectations asserted on cleanup.
func NewMockAnalyticsRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAnalyticsRepository {
	m := &MockAnalyticsRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAnalyticsRepository) IncrementViewCount(ctx context.Context, itineraryID uuid.UUID) error {
	args := m.Called(ctx, itineraryID)

	return args.Error(0)
}

func (m *MockAnalyticsRepository) RecordPurchase(ctx context.Context, itineraryID uuid.UUID, amount float64) error {
	args := m.Called(ctx, itineraryID, amount)

	return args.Error(0)
}

func (m *MockAnalyticsRepository) FindByItinerary(ctx context.Context, itineraryID uuid.UUID) (*entity.ItineraryAnalytics, error) {
	args := m.Called(ctx, itineraryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.ItineraryAnalytics), args.Error(1)
}

func (m *MockAnalyticsRepository) FindByItineraries(ctx context.Context, itineraryIDs []uuid.UUID) ([]*entity.ItineraryAnalytics, error) {
	args := m.Called(ctx, itineraryIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.ItineraryAnalytics), args.Error(1)
}
