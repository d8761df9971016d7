// Package service provides testify mocks for the domain service interfaces.
package service

import (
	"context"

	"wayfare/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockPaymentGateway is a mock implementation of service.PaymentGateway.
type MockPaymentGateway struct {
	mock.Mock
}

// NewMockPaymentGateway creates a new mock with expectations asserted on cleanup.
func NewMockPaymentGateway(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPaymentGateway {
	m := &MockPaymentGateway{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPaymentGateway) CreateOrder(ctx context.Context, params service.CreateOrderParams) (*service.GatewayOrder, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.GatewayOrder), args.Error(1)
}

func (m *MockPaymentGateway) VerifyPaymentSignature(orderID, paymentID, signature string) bool {
	args := m.Called(orderID, paymentID, signature)

	return args.Bool(0)
}

func (m *MockPaymentGateway) KeyID() string {
	args := m.Called()

	return args.String(0)
}
