package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/talenthub/accounts-api/internal/core/domain"
	"github.com/talenthub/accounts-api/internal/core/ports"
)

// ProfileService serves profile reads and the two partial updates.
type ProfileService struct {
	repo   ports.AccountRepository
	files  ports.FileStore
	logger zerolog.Logger
}

func NewProfileService(repo ports.AccountRepository, files ports.FileStore, logger zerolog.Logger) *ProfileService {
	return &ProfileService{repo: repo, files: files, logger: logger}
}

// GetProfile returns the role-shaped view of the account. role comes from
// the verified token; a stored role that disagrees with it means the token
// no longer matches reality and the caller is rejected.
func (s *ProfileService) GetProfile(ctx context.Context, id string, role domain.Role) (any, error) {
	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if account.Role != role {
		return nil, domain.ErrRoleMismatch
	}

	view := domain.ProfileView(account)
	if view == nil {
		return nil, fmt.Errorf("account %s has unknown role %q", account.ID, account.Role)
	}
	return view, nil
}

// UpdateBio replaces the account's bio and returns the stored value.
func (s *ProfileService) UpdateBio(ctx context.Context, id string, bio string) (string, error) {
	updated, err := s.repo.UpdateFields(ctx, id, domain.AccountUpdate{Bio: &bio})
	if err != nil {
		return "", err
	}
	return updated.Bio, nil
}

// UpdatePicture stores the new picture, points the account at it, and
// returns the new reference. The old picture file is removed once the
// account points away from it.
func (s *ProfileService) UpdatePicture(ctx context.Context, id string, picture *ports.Attachment) (string, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}

	ref, err := s.files.Save(ctx, picture)
	if err != nil {
		return "", err
	}

	updated, err := s.repo.UpdateFields(ctx, id, domain.AccountUpdate{ProfilePicture: &ref})
	if err != nil {
		if rmErr := s.files.Remove(ctx, ref); rmErr != nil {
			s.logger.Warn().Err(rmErr).Str("ref", ref).Msg("failed to remove orphaned upload")
		}
		return "", err
	}

	if old := current.ProfilePicture; old != "" && old != updated.ProfilePicture {
		if rmErr := s.files.Remove(ctx, old); rmErr != nil {
			s.logger.Warn().Err(rmErr).Str("ref", old).Msg("failed to remove replaced picture")
		}
	}

	return updated.ProfilePicture, nil
}
