package ports

import (
	"context"

	"github.com/talenthub/accounts-api/internal/core/domain"
)

// ProfileService serves the role-gated profile endpoints. The id and role
// always come from a verified token, never from the request body.
type ProfileService interface {
	// GetProfile returns the role-shaped view of the account. The role
	// must match the account's stored role.
	GetProfile(ctx context.Context, id string, role domain.Role) (any, error)
	// UpdateBio replaces the bio and returns the stored value.
	UpdateBio(ctx context.Context, id string, bio string) (string, error)
	// UpdatePicture stores the new picture and returns its path reference.
	UpdatePicture(ctx context.Context, id string, picture *Attachment) (string, error)
}
