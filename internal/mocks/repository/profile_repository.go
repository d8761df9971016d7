// Package repository provides testify mocks for the domain repository interfaces.
package repository

import (
	"context"

	"wayfare/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockProfileRepository is a mock implementation of repository.ProfileRepository.
type MockProfileRepository struct {
	mock.Mock
}

// NewMockProfileRepository creates a new mock with expectations asserted on cleanup.
func NewMockProfileRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockProfileRepository {
	m := &MockProfileRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockProfileRepository) CreateProfile(ctx context.Context, profile *entity.Profile) error {
	args := m.Called(ctx, profile)

	return args.Error(0)
}

func (m *MockProfileRepository) FindProfileByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Profile), args.Error(1)
}

func (m *MockProfileRepository) UpdateVerification(ctx context.Context, id uuid.UUID, status entity.VerificationStatus) error {
	args := m.Called(ctx, id, status)

	return args.Error(0)
}
