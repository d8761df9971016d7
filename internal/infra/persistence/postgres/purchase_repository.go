// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"wayfare/internal/domain/entity"
	domainerrors "wayfare/internal/domain/errors"
	"wayfare/internal/domain/repository"
	"wayfare/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// purchaseRepository implements the repository.PurchaseRepository interface.
type purchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository is the constructor for purchaseRepository.
func NewPurchaseRepository(db *gorm.DB) repository.PurchaseRepository {
	return &purchaseRepository{
		db: db,
	}
}

// CreatePurchase persists a new purchase record. The unique index on
// (buyer_id, itinerary_id) is the authority for the at-most-one invariant;
// a violation here is the DuplicatePurchase signal, not an internal error.
func (repo *purchaseRepository) CreatePurchase(ctx context.Context, purchase *entity.Purchase) error {
	purchaseM := fromPurchaseDomain(purchase)

	if err := repo.db.WithContext(ctx).Create(purchaseM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicatePurchase
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidRequest.WrapMessage("invalid buyer or itinerary reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInvalidRequest.WrapMessage("missing required purchase information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create purchase")
	}

	// Update the entity with generated values
	purchase.ID = purchaseM.ID
	purchase.CreatedAt = purchaseM.CreatedAt

	return nil
}

// HasPurchase reports whether the buyer holds a purchase for the itinerary.
func (repo *purchaseRepository) HasPurchase(ctx context.Context, buyerID, itineraryID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.PurchaseModel{}).
		Where("buyer_id = ? AND itinerary_id = ?", buyerID, itineraryID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check purchase existence")
	}

	return count > 0, nil
}

// FindPurchasesByBuyer retrieves all purchases made by a buyer.
func (repo *purchaseRepository) FindPurchasesByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*entity.Purchase, error) {
	var purchaseModels []*model.PurchaseModel

	if err := repo.db.WithContext(ctx).
		Where("buyer_id = ?", buyerID).
		Order("created_at DESC").
		Find(&purchaseModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find purchases by buyer")
	}

	purchases := make([]*entity.Purchase, 0, len(purchaseModels))
	for _, purchaseM := range purchaseModels {
		purchases = append(purchases, toPurchaseDomain(purchaseM))
	}

	return purchases, nil
}

// --- Mapper Functions ---

// toPurchaseDomain converts a GORM PurchaseModel to a domain Purchase entity.
func toPurchaseDomain(data *model.PurchaseModel) *entity.Purchase {
	if data == nil {
		return nil
	}

	return &entity.Purchase{
		ID:              data.ID,
		BuyerID:         data.BuyerID,
		ItineraryID:     data.ItineraryID,
		Amount:          data.Amount,
		PlatformFee:     data.PlatformFee,
		CreatorEarnings: data.CreatorEarnings,
		PaymentRef:      data.PaymentRef,
		CreatedAt:       data.CreatedAt,
	}
}

// fromPurchaseDomain converts a domain Purchase entity to a GORM PurchaseModel.
func fromPurchaseDomain(data *entity.Purchase) *model.PurchaseModel {
	if data == nil {
		return nil
	}

	return &model.PurchaseModel{
		ID:              data.ID,
		BuyerID:         data.BuyerID,
		ItineraryID:     data.ItineraryID,
		Amount:          data.Amount,
		PlatformFee:     data.PlatformFee,
		CreatorEarnings: data.CreatorEarnings,
		PaymentRef:      data.PaymentRef,
		CreatedAt:       data.CreatedAt,
	}
}
