package impl

import (
	"context"

	"wayfare/internal/domain/entity"
	domainerrors "wayfare/internal/domain/errors"
	"wayfare/internal/domain/repository"
	"wayfare/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type analyticsService struct {
	analyticsRepo repository.AnalyticsRepository
	itineraryRepo repository.ItineraryRepository
}

// AnalyticsServiceParams holds dependencies for AnalyticsService, injected by Fx.
type AnalyticsServiceParams struct {
	fx.In

	AnalyticsRepo repository.AnalyticsRepository
	ItineraryRepo repository.ItineraryRepository
}

// NewAnalyticsService creates a new analytics service instance
func NewAnalyticsService(params AnalyticsServiceParams) usecase.AnalyticsUsecase {
	return &analyticsService{
		analyticsRepo: params.AnalyticsRepo,
		itineraryRepo: params.ItineraryRepo,
	}
}

// RecordView bumps the view counter for an itinerary.
func (s *analyticsService) RecordView(ctx context.Context, itineraryID uuid.UUID) error {
	if _, err := s.itineraryRepo.FindItineraryByID(ctx, itineraryID); err != nil {
		if errors.Is(err, repository.ErrItineraryNotFound) {
			return domainerrors.ErrItineraryNotFound
		}

		return errors.Wrap(err, "failed to find itinerary")
	}

	if err := s.analyticsRepo.IncrementViewCount(ctx, itineraryID); err != nil {
		return errors.Wrap(err, "failed to increment view count")
	}

	return nil
}

// GetItineraryAnalytics retrieves the counters for one itinerary. Visible to
// the itinerary's owner and to admins only.
func (s *analyticsService) GetItineraryAnalytics(ctx context.Context, viewer *entity.Profile, itineraryID uuid.UUID) (*entity.ItineraryAnalytics, error) {
	if viewer == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	itinerary, err := s.itineraryRepo.FindItineraryByID(ctx, itineraryID)
	if err != nil {
		if errors.Is(err, repository.ErrItineraryNotFound) {
			return nil, domainerrors.ErrItineraryNotFound
		}

		return nil, errors.Wrap(err, "failed to find itinerary")
	}

	if viewer.ID != itinerary.CreatorID && viewer.Role != entity.RoleAdmin {
		return nil, domainerrors.ErrForbidden.WrapMessage("analytics are visible to the owner and admins only")
	}

	analytics, err := s.analyticsRepo.FindByItinerary(ctx, itineraryID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find analytics by itinerary")
	}

	return analytics, nil
}

// GetCreatorSummary rolls up counters across every itinerary the principal
// owns. A principal with no itineraries gets a zero-valued summary.
func (s *analyticsService) GetCreatorSummary(ctx context.Context, creatorID uuid.UUID) (*entity.CreatorAnalyticsSummary, error) {
	itineraries, err := s.itineraryRepo.FindItinerariesByCreator(ctx, creatorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find itineraries by creator")
	}

	summary := &entity.CreatorAnalyticsSummary{
		Itineraries: []*entity.ItineraryAnalytics{},
	}
	if len(itineraries) == 0 {
		return summary, nil
	}

	ids := make([]uuid.UUID, 0, len(itineraries))
	for _, itinerary := range itineraries {
		ids = append(ids, itinerary.ID)
	}

	records, err := s.analyticsRepo.FindByItineraries(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find analytics by itineraries")
	}

	byItinerary := make(map[uuid.UUID]*entity.ItineraryAnalytics, len(records))
	for _, record := range records {
		byItinerary[record.ItineraryID] = record
	}

	// Itineraries without any recorded activity still show up, zero-valued.
	for _, itinerary := range itineraries {
		record, ok := byItinerary[itinerary.ID]
		if !ok {
			record = &entity.ItineraryAnalytics{ItineraryID: itinerary.ID}
		}

		summary.Itineraries = append(summary.Itineraries, record)
		summary.TotalViews += record.ViewCount
		summary.TotalPurchases += record.PurchaseCount
		summary.TotalRevenue += record.Revenue
	}
	summary.TotalRevenue = round2(summary.TotalRevenue)

	return summary, nil
}
