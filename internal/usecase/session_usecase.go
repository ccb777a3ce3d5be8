package usecase

import (
	"context"

	"ashcosmetic/internal/domain/entity"
)

// SessionUsecase maps opaque session tokens to user identities.
type SessionUsecase interface {
	// Establish creates a session for userID with the configured lifetime.
	Establish(ctx context.Context, userID string) (*entity.Session, error)

	// Resolve returns ok=false, not an error, for empty, unknown or expired tokens.
	Resolve(ctx context.Context, token string) (userID string, ok bool, err error)

	// Clear destroys the session. Unknown tokens are not an error.
	Clear(ctx context.Context, token string) error
}
