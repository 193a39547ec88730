package ports

import (
	"context"

	"github.com/talenthub/accounts-api/internal/core/domain"
)

// AccountRepository defines the persistence interface for accounts.
// Emails are stored lower-cased and unique across all roles.
type AccountRepository interface {
	// Create persists a new account and returns it with the generated id.
	// Returns domain.ErrEmailTaken when the email is already present.
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	// UpdateFields applies a partial update, refreshes the last-update
	// timestamp, and returns the full updated record.
	UpdateFields(ctx context.Context, id string, update domain.AccountUpdate) (*domain.Account, error)
}
