// Package usecase provides testify mocks for the usecase interfaces.
package usecase

import (
	"context"

	"wayfare/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockProfileUsecase is a mock implementation of usecase.ProfileUsecase.
type MockProfileUsecase struct {
	mock.Mock
}

// NewMockProfileUsecase creates a new mock with expectations asserted on cleanup.
func NewMockProfileUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockProfileUsecase {
	m := &MockProfileUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockProfileUsecase) EnsureProfile(ctx context.Context, principalID uuid.UUID, roleHint string) (*entity.Profile, error) {
	args := m.Called(ctx, principalID, roleHint)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Profile), args.Error(1)
}

func (m *MockProfileUsecase) GetProfile(ctx context.Context, principalID uuid.UUID) (*entity.Profile, error) {
	args := m.Called(ctx, principalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Profile), args.Error(1)
}

func (m *MockProfileUsecase) RequestVerification(ctx context.Context, principalID uuid.UUID) error {
	args := m.Called(ctx, principalID)

	return args.Error(0)
}

func (m *MockProfileUsecase) SetVerification(ctx context.Context, actor *entity.Profile, principalID uuid.UUID, status entity.VerificationStatus) error {
	args := m.Called(ctx, actor, principalID, status)

	return args.Error(0)
}
