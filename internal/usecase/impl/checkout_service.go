package impl

import (
	"context"
	"fmt"
	"log/slog"

	"wayfare/config"
	"wayfare/internal/domain/entity"
	domainerrors "wayfare/internal/domain/errors"
	"wayfare/internal/domain/repository"
	"wayfare/internal/domain/service"
	"wayfare/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type checkoutService struct {
	itineraryRepo repository.ItineraryRepository
	orderRepo     repository.OrderRepository
	purchaseRepo  repository.PurchaseRepository
	txManager     repository.TransactionManager
	gateway       service.PaymentGateway
	config        *config.Config
	logger        *slog.Logger
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	ItineraryRepo repository.ItineraryRepository
	OrderRepo     repository.OrderRepository
	PurchaseRepo  repository.PurchaseRepository
	TxManager     repository.TransactionManager
	Gateway       service.PaymentGateway
	Config        *config.Config
	Logger        *slog.Logger
}

// NewCheckoutService creates a new checkout service instance
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		itineraryRepo: params.ItineraryRepo,
		orderRepo:     params.OrderRepo,
		purchaseRepo:  params.PurchaseRepo,
		txManager:     params.TxManager,
		gateway:       params.Gateway,
		config:        params.Config,
		logger:        params.Logger,
	}
}

// BeginCheckout validates the itinerary, opens a gateway order for its current
// price and persists a pending order record. The persisted order, not the
// client, is what a later confirmation settles against.
func (s *checkoutService) BeginCheckout(ctx context.Context, buyerID, itineraryID uuid.UUID) (*usecase.CheckoutOrder, error) {
	itinerary, err := s.itineraryRepo.FindItineraryByID(ctx, itineraryID)
	if err != nil {
		if errors.Is(err, repository.ErrItineraryNotFound) {
			return nil, domainerrors.ErrItineraryNotFound
		}

		return nil, errors.Wrap(err, "failed to find itinerary")
	}

	if !itinerary.Purchasable() {
		return nil, domainerrors.ErrItineraryNotPurchasable
	}

	purchased, err := s.purchaseRepo.HasPurchase(ctx, buyerID, itineraryID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check purchase existence")
	}
	if purchased {
		return nil, domainerrors.ErrDuplicatePurchase
	}

	currency := itinerary.Currency
	if currency == "" {
		currency = s.config.Payment.Currency
	}
	amountMinor := toMinorUnits(itinerary.Price)

	gatewayOrder, err := s.gateway.CreateOrder(ctx, service.CreateOrderParams{
		AmountMinor: amountMinor,
		Currency:    currency,
		Receipt:     fmt.Sprintf("itn-%s", itineraryID),
		Notes: map[string]any{
			"itinerary_id": itineraryID.String(),
			"buyer_id":     buyerID.String(),
		},
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "payment gateway order creation failed",
			slog.String("itinerary_id", itineraryID.String()),
			slog.String("buyer_id", buyerID.String()),
			slog.Any("error", err))

		return nil, domainerrors.ErrGateway
	}

	order := &entity.Order{
		ID:          gatewayOrder.ID,
		BuyerID:     buyerID,
		ItineraryID: itineraryID,
		Title:       itinerary.Title,
		AmountMinor: amountMinor,
		Currency:    currency,
		Status:      entity.OrderStatusPending,
	}

	if err := s.orderRepo.CreateOrder(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to persist checkout order")
	}

	return &usecase.CheckoutOrder{
		OrderID:     order.ID,
		AmountMinor: order.AmountMinor,
		Currency:    order.Currency,
		KeyID:       s.gateway.KeyID(),
	}, nil
}

// ConfirmPayment verifies the confirmation signature and settles the pending
// order. The settlement transaction consumes the order, writes the purchase
// and bumps the analytics counters together, so a failure in any step leaves
// no partial state behind.
func (s *checkoutService) ConfirmPayment(ctx context.Context, buyerID uuid.UUID, confirmation usecase.PaymentConfirmation) (*entity.Purchase, error) {
	if !s.gateway.VerifyPaymentSignature(confirmation.OrderID, confirmation.PaymentID, confirmation.Signature) {
		return nil, domainerrors.ErrPaymentVerificationFailed
	}

	order, err := s.orderRepo.FindOrderByID(ctx, confirmation.OrderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find checkout order")
	}

	if order.BuyerID != buyerID {
		return nil, domainerrors.ErrForbidden
	}

	// The persisted order is the only amount authority.
	amount := round2(fromMinorUnits(order.AmountMinor))
	platformFee, creatorEarnings := splitAmount(amount, s.config.Revenue.PlatformFeeRate)

	purchase := &entity.Purchase{
		ID:              uuid.New(),
		BuyerID:         buyerID,
		ItineraryID:     order.ItineraryID,
		Amount:          amount,
		PlatformFee:     platformFee,
		CreatorEarnings: creatorEarnings,
		PaymentRef:      confirmation.PaymentID,
	}

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewOrderRepository().ConsumeOrder(ctx, order.ID); err != nil {
			if errors.Is(err, repository.ErrOrderConsumed) {
				return domainerrors.ErrDuplicatePurchase
			}
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to consume checkout order")
		}

		if err := factory.NewPurchaseRepository().CreatePurchase(ctx, purchase); err != nil {
			if errors.Is(err, repository.ErrDuplicatePurchase) {
				return domainerrors.ErrDuplicatePurchase
			}

			s.logger.ErrorContext(ctx, "purchase ledger write failed",
				slog.String("order_id", order.ID),
				slog.String("buyer_id", buyerID.String()),
				slog.String("itinerary_id", order.ItineraryID.String()),
				slog.Any("error", err))

			return domainerrors.ErrLedgerWrite
		}

		if err := factory.NewAnalyticsRepository().RecordPurchase(ctx, order.ItineraryID, amount); err != nil {
			return errors.Wrap(err, "failed to record purchase analytics")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return purchase, nil
}

// HasPurchased reports whether the principal holds a purchase for the itinerary.
func (s *checkoutService) HasPurchased(ctx context.Context, buyerID, itineraryID uuid.UUID) (bool, error) {
	purchased, err := s.purchaseRepo.HasPurchase(ctx, buyerID, itineraryID)
	if err != nil {
		return false, errors.Wrap(err, "failed to check purchase existence")
	}

	return purchased, nil
}

// ListPurchases retrieves the principal's purchase history, newest first.
func (s *checkoutService) ListPurchases(ctx context.Context, buyerID uuid.UUID) ([]*entity.Purchase, error) {
	purchases, err := s.purchaseRepo.FindPurchasesByBuyer(ctx, buyerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find purchases by buyer")
	}

	return purchases, nil
}
