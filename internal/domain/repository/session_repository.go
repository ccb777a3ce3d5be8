package repository

import (
	"context"
	"errors"

	"ashcosmetic/internal/domain/entity"
)

// ErrSessionNotFound is returned when no session exists for a token.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository maps session tokens to user identities.
type SessionRepository interface {
	// Create stores a new session.
	Create(ctx context.Context, session *entity.Session) error

	// FindByToken returns the session for token, or ErrSessionNotFound.
	// Expired sessions may still be returned; callers check ExpiresAt.
	FindByToken(ctx context.Context, token string) (*entity.Session, error)

	// DeleteByToken removes the session. Unknown tokens are not an error.
	DeleteByToken(ctx context.Context, token string) error
}
