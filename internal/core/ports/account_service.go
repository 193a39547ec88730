package ports

import (
	"context"

	"github.com/talenthub/accounts-api/internal/core/domain"
)

// RegisterClientInput carries the fields of a client registration.
type RegisterClientInput struct {
	Name         string
	Email        string
	Password     string
	BusinessName string
	BusinessType string
	CompanySize  string
	Address      string
}

// RegisterFreelancerInput carries the fields of a freelancer registration.
// Both attachments are mandatory and must already have passed the upload
// filter.
type RegisterFreelancerInput struct {
	Name       string
	Email      string
	Password   string
	Skills     string
	Experience string
	Picture    *Attachment
	Resume     *Attachment
}

// AuthResult is the outcome of a successful registration or login: a
// signed token plus the role-shaped public view of the account.
type AuthResult struct {
	Token   string
	Role    domain.Role
	Profile any
}

// AccountService implements registration and login.
type AccountService interface {
	RegisterClient(ctx context.Context, input RegisterClientInput) (*AuthResult, error)
	RegisterFreelancer(ctx context.Context, input RegisterFreelancerInput) (*AuthResult, error)
	// Login verifies credentials and issues a token. roleHint, when
	// non-empty, must match the stored role.
	Login(ctx context.Context, email, password, roleHint string) (*AuthResult, error)
}
