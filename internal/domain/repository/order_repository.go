// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"wayfare/internal/domain/entity"
	"wayfare/internal/errors"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when a checkout order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderConsumed is returned when a checkout order was already settled.
	ErrOrderConsumed = errors.New("order already consumed")
)

// OrderRepository defines the interface for checkout-order database operations.
// Orders are the server-side source of truth for the amount a verification
// is allowed to settle.
type OrderRepository interface {
	// CreateOrder persists a pending checkout order keyed by the gateway order ID.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindOrderByID retrieves a checkout order by its gateway-assigned ID.
	FindOrderByID(ctx context.Context, id string) (*entity.Order, error)

	// ConsumeOrder atomically flips a pending order to consumed.
	// Returns ErrOrderConsumed when the order exists but is no longer pending,
	// closing the window for replayed confirmations.
	ConsumeOrder(ctx context.Context, id string) error
}
