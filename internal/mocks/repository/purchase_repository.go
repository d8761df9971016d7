package repository

import (
	"context"

	"wayfare/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockPurchaseRepository is a mock implementation of repository.PurchaseRepository.
type MockPurchaseRepository struct {
	mock.Mock
}

// NewMockPurchaseRepository creates a new mock with expectations asserted on cleanup.
func NewMockPurchaseRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPurchaseRepository {
	m := &MockPurchaseRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPurchaseRepository) CreatePurchase(ctx context.Context, purchase *entity.Purchase) error {
	args := m.Called(ctx, purchase)

	return args.Error(0)
}

func (m *MockPurchaseRepository) HasPurchase(ctx context.Context, buyerID, itineraryID uuid.UUID) (bool, error) {
	args := m.Called(ctx, buyerID, itineraryID)

	return args.Bool(0), args.Error(1)
}

func (m *MockPurchaseRepository) FindPurchasesByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*entity.Purchase, error) {
	args := m.Called(ctx, buyerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Purchase), args.Error(1)
}
