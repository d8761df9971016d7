package impl

import (
	"context"
	"io"
	"log/slog"

	"wayfare/internal/domain/repository"
	mockrepo "wayfare/internal/mocks/repository"
)

// stubRepositoryFactory hands the test's repository mocks to transactional code.
type stubRepositoryFactory struct {
	orderRepo     *mockrepo.MockOrderRepository
	purchaseRepo  *mockrepo.MockPurchaseRepository
	analyticsRepo *mockrepo.MockAnalyticsRepository
	reviewRepo    *mockrepo.MockReviewRepository
	itineraryRepo *mockrepo.MockItineraryRepository
}

func (f *stubRepositoryFactory) NewOrderRepository() repository.OrderRepository {
	return f.orderRepo
}

func (f *stubRepositoryFactory) NewPurchaseRepository() repository.PurchaseRepository {
	return f.purchaseRepo
}

func (f *stubRepositoryFactory) NewAnalyticsRepository() repository.AnalyticsRepository {
	return f.analyticsRepo
}

func (f *stubRepositoryFactory) NewReviewRepository() repository.ReviewRepository {
	return f.reviewRepo
}

func (f *stubRepositoryFactory) NewItineraryRepository() repository.ItineraryRepository {
	return f.itineraryRepo
}

// stubTxManager runs the callback immediately without a real transaction.
type stubTxManager struct {
	factory repository.RepositoryFactory
}

func (m *stubTxManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
