// Package payment contains the Razorpay adapter and the payment-confirmation
// signature check.
package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// VerifySignature recomputes HMAC-SHA256 over "orderID|paymentID" with the
// shared key secret and compares it to the client-submitted signature.
// The comparison is constant time and the check fails closed: an empty field
// or a malformed signature is a rejection, never an error.
func VerifySignature(orderID, paymentID, signature, secret string) bool {
	if orderID == "" || paymentID == "" || signature == "" || secret == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := mac.Sum(nil)

	provided, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}

	return hmac.Equal(expected, provided)
}
