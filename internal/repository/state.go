package repository

import (
	"context"
	"time"
)

// StateRepository holds the ephemeral state kept in the key-value store:
// password-reset tokens and the announcement banner.
type StateRepository interface {
	// SaveResetToken binds an opaque token to an email address for the
	// given time-to-live. Multiple outstanding tokens per email may
	// coexist; each is independently single-use.
	SaveResetToken(ctx context.Context, token, email string, ttl time.Duration) error

	// ConsumeResetToken atomically fetches and deletes the binding for a
	// token, returning the email. Returns ErrTokenNotFound when the token
	// was never issued, expired, or was already consumed.
	ConsumeResetToken(ctx context.Context, token string) (string, error)

	// GetAnnouncement returns the current announcement banner, or the empty
	// string when none is set.
	GetAnnouncement(ctx context.Context) (string, error)

	// SetAnnouncement overwrites the announcement banner. Last write wins.
	SetAnnouncement(ctx context.Context, text string) error
}
