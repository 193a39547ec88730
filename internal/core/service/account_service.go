package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/talenthub/accounts-api/internal/api/metrics"
	"github.com/talenthub/accounts-api/internal/auth"
	"github.com/talenthub/accounts-api/internal/core/domain"
	"github.com/talenthub/accounts-api/internal/core/ports"
)

// AccountService implements registration and login on top of the account
// repository, the file store, and the token issuer.
type AccountService struct {
	repo    ports.AccountRepository
	files   ports.FileStore
	tokens  *auth.TokenIssuer
	limiter ports.LoginLimiter
	logger  zerolog.Logger
}

func NewAccountService(repo ports.AccountRepository, files ports.FileStore, tokens *auth.TokenIssuer, limiter ports.LoginLimiter, logger zerolog.Logger) *AccountService {
	return &AccountService{repo: repo, files: files, tokens: tokens, limiter: limiter, logger: logger}
}

// RegisterClient creates a client account and issues a token for it.
func (s *AccountService) RegisterClient(ctx context.Context, input ports.RegisterClientInput) (*ports.AuthResult, error) {
	email := normalizeEmail(input.Email)
	if err := s.checkEmailFree(ctx, email); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account := &domain.Account{
		Name:         input.Name,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleClient,
		BusinessName: input.BusinessName,
		BusinessType: input.BusinessType,
		CompanySize:  input.CompanySize,
		Address:      input.Address,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return s.finishRegistration(ctx, account, nil)
}

// RegisterFreelancer creates a freelancer account. Both attachments are
// persisted before the account write; when that write fails the stored
// files are removed best-effort so a failed registration does not leave
// orphans behind.
func (s *AccountService) RegisterFreelancer(ctx context.Context, input ports.RegisterFreelancerInput) (*ports.AuthResult, error) {
	email := normalizeEmail(input.Email)
	if err := s.checkEmailFree(ctx, email); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	pictureRef, err := s.files.Save(ctx, input.Picture)
	if err != nil {
		return nil, err
	}
	resumeRef, err := s.files.Save(ctx, input.Resume)
	if err != nil {
		s.removeUploads(ctx, pictureRef)
		return nil, err
	}

	now := time.Now().UTC()
	account := &domain.Account{
		Name:           input.Name,
		Email:          email,
		PasswordHash:   hash,
		Role:           domain.RoleFreelancer,
		Skills:         input.Skills,
		Experience:     input.Experience,
		ProfilePicture: pictureRef,
		Resume:         resumeRef,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	return s.finishRegistration(ctx, account, func() {
		s.removeUploads(ctx, pictureRef, resumeRef)
	})
}

// Login verifies credentials and issues a token. An unknown email and a
// wrong password produce the same error so callers cannot probe which
// emails are registered. A role hint that disagrees with the stored role
// is reported distinctly.
func (s *AccountService) Login(ctx context.Context, email, password, roleHint string) (*ports.AuthResult, error) {
	email = normalizeEmail(email)

	if ok, err := s.limiter.Allow(ctx, email); err != nil {
		// The limiter failing must not take logins down with it.
		s.logger.Warn().Err(err).Msg("login limiter unavailable, allowing attempt")
	} else if !ok {
		metrics.LoginsTotal.WithLabelValues("throttled").Inc()
		return nil, domain.ErrTooManyAttempts
	}

	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if roleHint != "" && domain.Role(roleHint) != account.Role {
		metrics.LoginsTotal.WithLabelValues("role_mismatch").Inc()
		return nil, domain.ErrRoleMismatch
	}

	if !auth.CheckPassword(password, account.PasswordHash) {
		metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	if err := s.limiter.Reset(ctx, email); err != nil {
		s.logger.Warn().Err(err).Msg("failed to reset login attempt counter")
	}

	token, err := s.tokens.Issue(account.ID, account.Role)
	if err != nil {
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("account_id", account.ID).Str("role", string(account.Role)).Msg("login")

	return &ports.AuthResult{Token: token, Role: account.Role, Profile: domain.ProfileView(account)}, nil
}

// checkEmailFree pre-checks for a duplicate email. The unique index backs
// this up against concurrent registrations.
func (s *AccountService) checkEmailFree(ctx context.Context, email string) error {
	_, err := s.repo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return domain.ErrEmailTaken
	case errors.Is(err, domain.ErrAccountNotFound):
		return nil
	default:
		return err
	}
}

// finishRegistration persists the account and issues its first token.
// cleanup, when non-nil, runs if the persist fails.
func (s *AccountService) finishRegistration(ctx context.Context, account *domain.Account, cleanup func()) (*ports.AuthResult, error) {
	created, err := s.repo.Create(ctx, account)
	if err != nil {
		if cleanup != nil {
			cleanup()
		}
		return nil, err
	}

	token, err := s.tokens.Issue(created.ID, created.Role)
	if err != nil {
		return nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues(string(created.Role)).Inc()
	s.logger.Info().Str("account_id", created.ID).Str("role", string(created.Role)).Msg("account registered")

	return &ports.AuthResult{Token: token, Role: created.Role, Profile: domain.ProfileView(created)}, nil
}

func (s *AccountService) removeUploads(ctx context.Context, refs ...string) {
	for _, ref := range refs {
		if err := s.files.Remove(ctx, ref); err != nil {
			s.logger.Warn().Err(err).Str("ref", ref).Msg("failed to remove orphaned upload")
		}
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
