// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// VerificationStatus represents how far a creator has progressed through
// identity verification.
type VerificationStatus string

const (
	// VerificationNone indicates no verification has been requested.
	VerificationNone VerificationStatus = "none"
	// VerificationPending indicates a verification request is under review.
	VerificationPending VerificationStatus = "pending"
	// VerificationVerified indicates the profile passed verification.
	VerificationVerified VerificationStatus = "verified"
)

// String returns the string representation of the VerificationStatus.
func (v VerificationStatus) String() string {
	return string(v)
}

// Profile is the persisted record for an authenticated principal.
// Its ID equals the principal identifier issued by the identity provider,
// and its Role is the sole authorization input for the engine: role claims
// carried by tokens only ever seed a brand-new profile, they never override
// a persisted one.
type Profile struct {
	ID           uuid.UUID          // Principal identifier from the identity provider.
	Role         Role               // Authoritative role for authorization decisions.
	Verification VerificationStatus // Creator verification progress.
	CreatedAt    time.Time          // Timestamp of when this profile was first written.
	UpdatedAt    time.Time          // Timestamp of the last modification.
}
