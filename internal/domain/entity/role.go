// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a principal can have in the marketplace.
type Role string

const (
	// RoleBuyer indicates a regular buyer account.
	RoleBuyer Role = "buyer"
	// RoleInfluencer indicates a creator account that publishes itineraries.
	RoleInfluencer Role = "influencer"
	// RoleAdmin indicates a platform administrator.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleBuyer, RoleInfluencer, RoleAdmin:
		return true
	default:
		return false
	}
}

// SeedRole narrows an identity-provider role hint to a role that is safe to
// persist for a brand-new profile. Only creator signups keep their hint;
// anything else, including an admin claim, collapses to buyer. Admin profiles
// are provisioned out of band, never from client-presented metadata.
func SeedRole(hint string) Role {
	if Role(hint) == RoleInfluencer {
		return RoleInfluencer
	}

	return RoleBuyer
}
