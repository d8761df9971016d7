// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"wayfare/internal/domain/entity"
	"wayfare/internal/domain/repository"
	"wayfare/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// analyticsRepository implements the repository.AnalyticsRepository interface.
// All counter mutations are expressed as store-side atomic increments so
// concurrent requests never lose updates.
type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository is the constructor for analyticsRepository.
func NewAnalyticsRepository(db *gorm.DB) repository.AnalyticsRepository {
	return &analyticsRepository{
		db: db,
	}
}

// IncrementViewCount bumps the view counter by one, creating the record on first view.
func (repo *analyticsRepository) IncrementViewCount(ctx context.Context, itineraryID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "itinerary_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"view_count": gorm.Expr("itinerary_analytics.view_count + 1"),
				"updated_at": gorm.Expr("NOW()"),
			}),
		}).
		Create(&model.ItineraryAnalyticsModel{
			ItineraryID: itineraryID,
			ViewCount:   1,
		}).Error; err != nil {
		return errors.Wrap(err, "failed to increment view count")
	}

	return nil
}

// RecordPurchase bumps the purchase counter and adds the purchase amount to
// cumulative revenue, creating the record if absent.
func (repo *analyticsRepository) RecordPurchase(ctx context.Context, itineraryID uuid.UUID, amount float64) error {
	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "itinerary_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"purchase_count": gorm.Expr("itinerary_analytics.purchase_count + 1"),
				"revenue":        gorm.Expr("itinerary_analytics.revenue + ?", amount),
				"updated_at":     gorm.Expr("NOW()"),
			}),
		}).
		Create(&model.ItineraryAnalyticsModel{
			ItineraryID:   itineraryID,
			PurchaseCount: 1,
			Revenue:       amount,
		}).Error; err != nil {
		return errors.Wrap(err, "failed to record purchase analytics")
	}

	return nil
}

// FindByItinerary retrieves the counters for one itinerary. A missing record
// comes back zero-valued so callers never branch on "no views yet".
func (repo *analyticsRepository) FindByItinerary(ctx context.Context, itineraryID uuid.UUID) (*entity.ItineraryAnalytics, error) {
	var analyticsM model.ItineraryAnalyticsModel

	if err := repo.db.WithContext(ctx).
		Where("itinerary_id = ?", itineraryID).
		First(&analyticsM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &entity.ItineraryAnalytics{ItineraryID: itineraryID}, nil
		}

		return nil, errors.Wrap(err, "failed to find analytics by itinerary")
	}

	return toAnalyticsDomain(&analyticsM), nil
}

// FindByItineraries retrieves counters for a set of itineraries.
func (repo *analyticsRepository) FindByItineraries(ctx context.Context, itineraryIDs []uuid.UUID) ([]*entity.ItineraryAnalytics, error) {
	if len(itineraryIDs) == 0 {
		return []*entity.ItineraryAnalytics{}, nil
	}

	var analyticsModels []*model.ItineraryAnalyticsModel

	if err := repo.db.WithContext(ctx).
		Where("itinerary_id IN ?", itineraryIDs).
		Find(&analyticsModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find analytics by itineraries")
	}

	records := make([]*entity.ItineraryAnalytics, 0, len(analyticsModels))
	for _, analyticsM := range analyticsModels {
		records = append(records, toAnalyticsDomain(analyticsM))
	}

	return records, nil
}

// --- Mapper Functions ---

// toAnalyticsDomain converts a GORM ItineraryAnalyticsModel to a domain entity.
func toAnalyticsDomain(data *model.ItineraryAnalyticsModel) *entity.ItineraryAnalytics {
	if data == nil {
		return nil
	}

	return &entity.ItineraryAnalytics{
		ItineraryID:   data.ItineraryID,
		ViewCount:     data.ViewCount,
		PurchaseCount: data.PurchaseCount,
		Revenue:       data.Revenue,
		UpdatedAt:     data.UpdatedAt,
	}
}
