package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sign(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))

	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature_Valid(t *testing.T) {
	secret := "test-key-secret"
	orderID := "order_Nxq8kQZ7VYmGfP"
	paymentID := "pay_Nxq9TWrZ3E4c1d"

	signature := sign(orderID, paymentID, secret)

	assert.True(t, VerifySignature(orderID, paymentID, signature, secret))
}

func TestVerifySignature_SingleCharacterMutationFails(t *testing.T) {
	secret := "test-key-secret"
	orderID := "order_Nxq8kQZ7VYmGfP"
	paymentID := "pay_Nxq9TWrZ3E4c1d"

	signature := sign(orderID, paymentID, secret)

	for i := range signature {
		mutated := []byte(signature)
		if mutated[i] == 'a' {
			mutated[i] = 'b'
		} else {
			mutated[i] = 'a'
		}

		assert.False(t, VerifySignature(orderID, paymentID, string(mutated), secret),
			"mutation at index %d must be rejected", i)
	}
}

func TestVerifySignature_FailsClosed(t *testing.T) {
	secret := "test-key-secret"
	signature := sign("order_a", "pay_b", secret)

	tests := []struct {
		name      string
		orderID   string
		paymentID string
		signature string
		secret    string
	}{
		{name: "missing order id", orderID: "", paymentID: "pay_b", signature: signature, secret: secret},
		{name: "missing payment id", orderID: "order_a", paymentID: "", signature: signature, secret: secret},
		{name: "missing signature", orderID: "order_a", paymentID: "pay_b", signature: "", secret: secret},
		{name: "missing secret", orderID: "order_a", paymentID: "pay_b", signature: signature, secret: ""},
		{name: "non-hex signature", orderID: "order_a", paymentID: "pay_b", signature: "not-hex!", secret: secret},
		{name: "wrong secret", orderID: "order_a", paymentID: "pay_b", signature: signature, secret: "other-secret"},
		{name: "swapped ids", orderID: "pay_b", paymentID: "order_a", signature: signature, secret: secret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, VerifySignature(tt.orderID, tt.paymentID, tt.signature, tt.secret))
		})
	}
}
