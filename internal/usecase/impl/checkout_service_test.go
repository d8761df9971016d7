package impl

import (
	"context"
	"testing"

	"wayfare/config"
	"wayfare/internal/domain/entity"
	domainerrors "wayfare/internal/domain/errors"
	"wayfare/internal/domain/repository"
	"wayfare/internal/domain/service"
	mockrepo "wayfare/internal/mocks/repository"
	mocksvc "wayfare/internal/mocks/service"
	"wayfare/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCheckoutTestConfig() *config.Config {
	cfg := &config.Config{
		Payment: &config.PaymentConfig{
			KeyID:    "rzp_test_key",
			Currency: "INR",
		},
		Revenue: &config.RevenueConfig{
			PlatformFeeRate: 0.30,
		},
	}

	return cfg
}

type checkoutTestMocks struct {
	itineraryRepo *mockrepo.MockItineraryRepository
	orderRepo     *mockrepo.MockOrderRepository
	purchaseRepo  *mockrepo.MockPurchaseRepository
	analyticsRepo *mockrepo.MockAnalyticsRepository
	gateway       *mocksvc.MockPaymentGateway
}

func newCheckoutService(t *testing.T) (usecase.CheckoutUsecase, *checkoutTestMocks) {
	t.Helper()

	mocks := &checkoutTestMocks{
		itineraryRepo: mockrepo.NewMockItineraryRepository(t),
		orderRepo:     mockrepo.NewMockOrderRepository(t),
		purchaseRepo:  mockrepo.NewMockPurchaseRepository(t),
		analyticsRepo: mockrepo.NewMockAnalyticsRepository(t),
		gateway:       mocksvc.NewMockPaymentGateway(t),
	}

	txManager := &stubTxManager{factory: &stubRepositoryFactory{
		orderRepo:     mocks.orderRepo,
		purchaseRepo:  mocks.purchaseRepo,
		analyticsRepo: mocks.analyticsRepo,
	}}

	svc := NewCheckoutService(CheckoutServiceParams{
		ItineraryRepo: mocks.itineraryRepo,
		OrderRepo:     mocks.orderRepo,
		PurchaseRepo:  mocks.purchaseRepo,
		TxManager:     txManager,
		Gateway:       mocks.gateway,
		Config:        newCheckoutTestConfig(),
		Logger:        discardLogger(),
	})

	return svc, mocks
}

func purchasableItinerary(creatorID uuid.UUID, price float64) *entity.Itinerary {
	return &entity.Itinerary{
		ID:          uuid.New(),
		CreatorID:   creatorID,
		Title:       "Kerala Backwaters in 5 Days",
		Price:       price,
		Currency:    "INR",
		IsPublished: true,
		IsApproved:  true,
	}
}

func TestBeginCheckout_Success(t *testing.T) {
	svc, mocks := newCheckoutService(t)
	ctx := context.Background()

	buyerID := uuid.New()
	itinerary := purchasableItinerary(uuid.New(), 1499.50)

	mocks.itineraryRepo.On("FindItineraryByID", ctx, itinerary.ID).Return(itinerary, nil)
	mocks.purchaseRepo.On("HasPurchase", ctx, buyerID, itinerary.ID).Return(false, nil)
	mocks.gateway.On("CreateOrder", ctx, mock.MatchedBy(func(params service.CreateOrderParams) bool {
		return params.AmountMinor == 149950 && params.Currency == "INR"
	})).Return(&service.GatewayOrder{ID: "order_abc123", AmountMinor: 149950, Currency: "INR"}, nil)
	mocks.orderRepo.On("CreateOrder", ctx, mock.MatchedBy(func(order *entity.Order) bool {
		return order.ID == "order_abc123" &&
			order.BuyerID == buyerID &&
			order.ItineraryID == itinerary.ID &&
			order.AmountMinor == 149950 &&
			order.Status == entity.OrderStatusPending
	})).Return(nil)
	mocks.gateway.On("KeyID").Return("rzp_test_key")

	order, err := svc.BeginCheckout(ctx, buyerID, itinerary.ID)

	require.NoError(t, err)
	assert.Equal(t, "order_abc123", order.OrderID)
	assert.Equal(t, int64(149950), order.AmountMinor)
	assert.Equal(t, "INR", order.Currency)
	assert.Equal(t, "rzp_test_key", order.KeyID)
}

func TestBeginCheckout_ItineraryNotFound(t *testing.T) {
	svc, mocks := newCheckoutService(t)
	ctx := context.Background()

	itineraryID := uuid.New()
	mocks.itineraryRepo.On("FindItineraryByID", ctx, itineraryID).
		Return(nil, repository.ErrItineraryNotFound)

	_, err := svc.BeginCheckout(ctx, uuid.New(), itineraryID)

	require.ErrorIs(t, err, domainerrors.ErrItineraryNotFound)
}

func TestBeginCheckout_NotPurchasable(t *testing.T) {
	svc, mocks := newCheckoutService(t)
	ctx := context.Background()

	itinerary := purchasableItinerary(uuid.New(), 999)
	itinerary.IsApproved = false

	mocks.itineraryRepo.On("FindItineraryByID", ctx, itinerary.ID).Return(itinerary, nil)

	_, err := svc.BeginCheckout(ctx, uuid.New(), itinerary.ID)

	require.ErrorIs(t, err, domainerrors.ErrItineraryNotPurchasable)
}

func TestBeginCheckout_AlreadyPurchased(t *testing.T) {
	svc, mocks := newCheckoutService(t)
	ctx := context.Background()

	buyerID := uuid.New()
	itinerary := purchasableItinerary(uuid.New(), 999)

	mocks.itineraryRepo.On("FindItineraryByID", ctx, itinerary.ID).Return(itinerary, nil)
	mocks.purchaseRepo.On("HasPurchase", ctx, buyerID, itinerary.ID).Return(true, nil)

	_, err := svc.BeginCheckout(ctx, buyerID, itinerary.ID)

	require.ErrorIs(t, err, domainerrors.ErrDuplicatePurchase)
}

func TestBeginCheckout_GatewayFailure(t *testing.T) {
	svc, mocks := newCheckoutService(t)
	ctx := context.Background()

	buyerID := uuid.New()
	itinerary := purchasableItinerary(uuid.New(), 999)

	mocks.itineraryRepo.On("FindItineraryByID", ctx, itinerary.ID).Return(itinerary, nil)
	mocks.purchaseRepo.On("HasPurchase", ctx, buyerID, itinerary.ID).Return(false, nil)
	mocks.gateway.On("CreateOrder", ctx, mock.Anything).
		Return(nil, errors.New("gateway unreachable"))

	_, err := svc.BeginCheckout(ctx, buyerID, itinerary.ID)

	require.ErrorIs(t, err, domainerrors.ErrGateway)
}

func pendingOrder(buyerID uuid.UUID, amountMinor int64) *entity.Order {
	return &entity.Order{
		ID:          "order_abc123",
		BuyerID:     buyerID,
		ItineraryID: uuid.New(),
		AmountMinor: amountMinor,
		Currency:    "INR",
		Status:      entity.OrderStatusPending,
	}
}

func TestConfirmPayment_Success(t *testing.T) {
	svc, mocks := newCheckoutService(t)
	ctx := context.Background()

	buyerID := uuid.New()
	order := pendingOrder(buyerID, 149950)
	confirmation := usecase.PaymentConfirmation{
		OrderID:   order.ID,
		PaymentID: "pay_xyz789",
		Signature: "deadbeef",
	}

	mocks.gateway.On("VerifyPaymentSignature", order.ID, "pay_xyz789", "deadbeef").Return(true)
	mocks.orderRepo.On("FindOrderByID", ctx, order.ID).Return(order, nil)
	mocks.orderRepo.On("ConsumeOrder", ctx, order.ID).Return(nil)
	mocks.purchaseRepo.On("CreatePurchase", ctx, mock.MatchedBy(func(p *entity.Purchase) bool {
		return p.BuyerID == buyerID &&
			p.ItineraryID == order.ItineraryID &&
			p.PaymentRef == "pay_xyz789"
	})).Return(nil)
	mocks.analyticsRepo.On("RecordPurchase", ctx, order.ItineraryID, 1499.50).Return(nil)

	purchase, err := svc.ConfirmPayment(ctx, buyerID, confirmation)

	require.NoError(t, err)
	assert.Equal(t, 1499.50, purchase.Amount)
	assert.Equal(t, 449.85, purchase.PlatformFee)
	assert.Equal(t, 1049.65, purchase.CreatorEarnings)
	assert.Equal(t,
		toMinorUnits(purchase.Amount),
		toMinorUnits(purchase.PlatformFee)+toMinorUnits(purchase.CreatorEarnings))
}

func TestConfirmPayment_InvalidSignature(t *testing.T) {
	svc, mocks := newCheckoutService(t)
	ctx := context.Background()

	confirmation := usecase.PaymentConfirmation{
		OrderID:   "order_abc123",
		PaymentID: "pay_xyz789",
		Signature: "tampered",
	}

	// Verification failure must be side-effect free: nothing else is called.
	mocks.gateway.On("VerifyPaymentSignature", "order_abc123", "pay_xyz789", "tampered").Return(false)

	_, err := svc.ConfirmPayment(ctx, uuid.New(), confirmation)

	require.ErrorIs(t, err, domainerrors.ErrPaymentVerificationFailed)
}

func TestConfirmPayment_OrderNotFound(t *testing.T) {
	svc, mocks := newCheckoutService(t)
	ctx := context.Background()

	confirmation := usecase.PaymentConfirmation{
		OrderID:   "order_unknown",
		PaymentID: "pay_xyz789",
		Signature: "deadbeef",
	}

	mocks.gateway.On("VerifyPaymentSignature", "order_unknown", "pay_xyz789", "deadbeef").Return(true)
	mocks.orderRepo.On("FindOrderByID", ctx, "order_unknown").
		Return(nil, repository.ErrOrderNotFound)

	_, err := svc.ConfirmPayment(ctx, uuid.New(), confirmation)

	require.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestConfirmPayment_WrongBuyer(t *testing.T) {
	svc, mocks := newCheckoutService(t)
	ctx := context.Background()

	order := pendingOrder(uuid.New(), 99900)
	confirmation := usecase.PaymentConfirmation{
		OrderID:   order.ID,
		PaymentID: "pay_xyz789",
		Signature: "deadbeef",
	}

	mocks.gateway.On("VerifyPaymentSignature", order.ID, "pay_xyz789", "deadbeef").Return(true)
	mocks.orderRepo.On("FindOrderByID", ctx, order.ID).Return(order, nil)

	_, err := svc.ConfirmPayment(ctx, uuid.New(), confirmation)

	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestConfirmPayment_Replay(t *testing.T) {
	svc, mocks := newCheckoutService(t)
	ctx := context.Background()

	buyerID := uuid.New()
	order := pendingOrder(buyerID, 99900)
	confirmation := usecase.PaymentConfirmation{
		OrderID:   order.ID,
		PaymentID: "pay_xyz789",
		Signature: "deadbeef",
	}

	mocks.gateway.On("VerifyPaymentSignature", order.ID, "pay_xyz789", "deadbeef").Return(true)
	mocks.orderRepo.On("FindOrderByID", ctx, order.ID).Return(order, nil)
	mocks.orderRepo.On("ConsumeOrder", ctx, order.ID).Return(repository.ErrOrderConsumed)

	_, err := svc.ConfirmPayment(ctx, buyerID, confirmation)

	require.ErrorIs(t, err, domainerrors.ErrDuplicatePurchase)
}

func TestConfirmPayment_LedgerWriteFailure(t *testing.T) {
	svc, mocks := newCheckoutService(t)
	ctx := context.Background()

	buyerID := uuid.New()
	order := pendingOrder(buyerID, 99900)
	confirmation := usecase.PaymentConfirmation{
		OrderID:   order.ID,
		PaymentID: "pay_xyz789",
		Signature: "deadbeef",
	}

	mocks.gateway.On("VerifyPaymentSignature", order.ID, "pay_xyz789", "deadbeef").Return(true)
	mocks.orderRepo.On("FindOrderByID", ctx, order.ID).Return(order, nil)
	mocks.orderRepo.On("ConsumeOrder", ctx, order.ID).Return(nil)
	mocks.purchaseRepo.On("CreatePurchase", ctx, mock.Anything).
		Return(errors.New("connection reset"))

	_, err := svc.ConfirmPayment(ctx, buyerID, confirmation)

	require.ErrorIs(t, err, domainerrors.ErrLedgerWrite)
}

func TestHasPurchased(t *testing.T) {
	svc, mocks := newCheckoutService(t)
	ctx := context.Background()

	buyerID := uuid.New()
	itineraryID := uuid.New()
	mocks.purchaseRepo.On("HasPurchase", ctx, buyerID, itineraryID).Return(true, nil)

	purchased, err := svc.HasPurchased(ctx, buyerID, itineraryID)

	require.NoError(t, err)
	assert.True(t, purchased)
}
