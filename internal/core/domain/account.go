package domain

import "time"

// Role determines which profile fields and endpoints apply to an account.
// Assigned exactly once at registration and never changed.
type Role string

const (
	RoleClient     Role = "client"
	RoleFreelancer Role = "freelancer"
)

// ValidRole reports whether s names a known role.
func ValidRole(s string) bool {
	return Role(s) == RoleClient || Role(s) == RoleFreelancer
}

// Account is the sole persisted entity: a user record with a role,
// a credential hash, and role-conditional attributes. The email is
// stored lower-cased; uniqueness is enforced by the store.
type Account struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role

	// Common optional attributes, writable after creation.
	Bio            string
	ProfilePicture string

	// Client-only attributes.
	BusinessName string
	BusinessType string
	CompanySize  string
	Address      string

	// Freelancer-only attributes.
	Resume     string
	Skills     string
	Experience string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AccountUpdate is a partial update applied by UpdateFields. Nil fields
// are left untouched.
type AccountUpdate struct {
	Bio            *string
	ProfilePicture *string
}
