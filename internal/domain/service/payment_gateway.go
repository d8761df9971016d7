// Package service defines domain-level interfaces implemented by the infra layer.
package service

import "context"

// CreateOrderParams describes the order to open at the payment gateway.
type CreateOrderParams struct {
	AmountMinor int64          // Amount in minor currency units (e.g. paise).
	Currency    string         // ISO currency code.
	Receipt     string         // Merchant-side receipt reference.
	Notes       map[string]any // Opaque audit metadata stored with the gateway order.
}

// GatewayOrder is the gateway's view of a freshly created order.
type GatewayOrder struct {
	ID          string // Gateway-assigned order identifier.
	AmountMinor int64
	Currency    string
}

// PaymentGateway abstracts the external payment provider. It owns the shared
// key secret; callers never see it.
type PaymentGateway interface {
	// CreateOrder opens an order at the gateway. Failures are terminal for the
	// request; checkout is user-initiated and retried by the user, never here.
	CreateOrder(ctx context.Context, params CreateOrderParams) (*GatewayOrder, error)

	// VerifyPaymentSignature checks a client-submitted payment confirmation.
	// It recomputes HMAC-SHA256 over orderID|paymentID with the key secret and
	// compares in constant time. Any missing field or mismatch returns false;
	// the check has no side effects.
	VerifyPaymentSignature(orderID, paymentID, signature string) bool

	// KeyID returns the public key identifier clients use to render the
	// payment widget.
	KeyID() string
}
