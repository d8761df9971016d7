package payment

import (
	"context"

	"wayfare/config"
	"wayfare/internal/domain/service"
	"wayfare/internal/errors"

	razorpay "github.com/razorpay/razorpay-go"
)

// razorpayGateway implements service.PaymentGateway against the Razorpay API.
// It is the only component holding the key secret.
type razorpayGateway struct {
	client    *razorpay.Client
	keyID     string
	keySecret string
}

// NewRazorpayGateway is the constructor for razorpayGateway.
func NewRazorpayGateway(cfg *config.Config) (service.PaymentGateway, error) {
	if cfg.Payment == nil || cfg.Payment.KeyID == "" || cfg.Payment.KeySecret == "" {
		return nil, errors.New("razorpay key id and key secret must be provided")
	}

	return &razorpayGateway{
		client:    razorpay.NewClient(cfg.Payment.KeyID, cfg.Payment.KeySecret),
		keyID:     cfg.Payment.KeyID,
		keySecret: cfg.Payment.KeySecret,
	}, nil
}

// CreateOrder opens an order at Razorpay. The call is not retried here;
// checkout is user-initiated and a retry could open a duplicate order.
func (g *razorpayGateway) CreateOrder(_ context.Context, params service.CreateOrderParams) (*service.GatewayOrder, error) {
	data := map[string]any{
		"amount":   params.AmountMinor,
		"currency": params.Currency,
		"receipt":  params.Receipt,
		"notes":    params.Notes,
	}

	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create razorpay order")
	}

	orderID, ok := body["id"].(string)
	if !ok || orderID == "" {
		return nil, errors.New("razorpay order response missing order id")
	}

	return &service.GatewayOrder{
		ID:          orderID,
		AmountMinor: params.AmountMinor,
		Currency:    params.Currency,
	}, nil
}

// VerifyPaymentSignature checks a client payment confirmation against the key secret.
func (g *razorpayGateway) VerifyPaymentSignature(orderID, paymentID, signature string) bool {
	return VerifySignature(orderID, paymentID, signature, g.keySecret)
}

// KeyID returns the public key identifier for the client payment widget.
func (g *razorpayGateway) KeyID() string {
	return g.keyID
}
