// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"wayfare/internal/domain/entity"
	domainerrors "wayfare/internal/domain/errors"
	"wayfare/internal/domain/repository"
	"wayfare/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// CreateOrder persists a pending checkout order keyed by the gateway order ID.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInvalidRequest.WrapMessage("missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create checkout order")
	}

	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindOrderByID retrieves a checkout order by its gateway-assigned ID.
func (repo *orderRepository) FindOrderByID(ctx context.Context, id string) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// ConsumeOrder atomically flips a pending order to consumed. The status guard
// in the WHERE clause makes the flip single-shot under concurrent settlement.
func (repo *orderRepository) ConsumeOrder(ctx context.Context, id string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND status = ?", id, string(entity.OrderStatusPending)).
		Update("status", string(entity.OrderStatusConsumed))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to consume order")
	}

	if result.RowsAffected == 0 {
		// Distinguish a replay from an unknown order.
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.OrderModel{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check order existence")
		}
		if count > 0 {
			return repository.ErrOrderConsumed
		}

		return repository.ErrOrderNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	return &entity.Order{
		ID:          data.ID,
		BuyerID:     data.BuyerID,
		ItineraryID: data.ItineraryID,
		Title:       data.Title,
		AmountMinor: data.AmountMinor,
		Currency:    data.Currency,
		Status:      entity.OrderStatus(data.Status),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:          data.ID,
		BuyerID:     data.BuyerID,
		ItineraryID: data.ItineraryID,
		Title:       data.Title,
		AmountMinor: data.AmountMinor,
		Currency:    data.Currency,
		Status:      string(data.Status),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
