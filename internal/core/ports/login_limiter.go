package ports

import "context"

// LoginLimiter throttles repeated login attempts per email.
type LoginLimiter interface {
	// Allow records an attempt and reports whether it is within the
	// window's budget.
	Allow(ctx context.Context, email string) (bool, error)
	// Reset clears the attempt counter, called after a successful login.
	Reset(ctx context.Context, email string) error
}
