package repository

import (
	"context"

	"wayfare/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockPhotoRepository is a mock implementation of repository.PhotoRepository.
type MockPhotoRepository struct {
	mock.Mock
}

// NewMockPhotoRepository creates a new mock with expectations asserted on cleanup.
func NewMockPhotoRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPhotoRepository {
	m := &MockPhotoRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPhotoRepository) CreatePhoto(ctx context.Context, photo *entity.TravelerPhoto) error {
	args := m.Called(ctx, photo)

	return args.Error(0)
}

func (m *MockPhotoRepository) FindPhotosByItinerary(ctx context.Context, itineraryID uuid.UUID) ([]*entity.TravelerPhoto, error) {
	args := m.Called(ctx, itineraryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.TravelerPhoto), args.Error(1)
}
