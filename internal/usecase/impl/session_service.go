package impl

import (
	"context"
	"log/slog"
	"time"

	"ashcosmetic/config"
	deliverycontext "ashcosmetic/internal/delivery/context"
	"ashcosmetic/internal/domain/entity"
	domainerrors "ashcosmetic/internal/domain/errors"
	"ashcosmetic/internal/domain/repository"
	"ashcosmetic/internal/domain/service"
	"ashcosmetic/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	sessionRepo repository.SessionRepository
	tokens      service.TokenGenerator
	ttl         time.Duration
	now         func() time.Time
	logger      *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	SessionRepo repository.SessionRepository
	Tokens      service.TokenGenerator
	Config      *config.Config
	Logger      *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	ttl := time.Hour
	if params.Config != nil && params.Config.Session.TTL > 0 {
		ttl = params.Config.Session.TTL
	}

	return &sessionService{
		sessionRepo: params.SessionRepo,
		tokens:      params.Tokens,
		ttl:         ttl,
		now:         time.Now,
		logger:      params.Logger,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Establish creates a session that expires ttl after creation. Lifetime is not extended on use.
func (srv *sessionService) Establish(ctx context.Context, userID string) (*entity.Session, error) {
	token, err := srv.tokens.Generate()
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrSessionCreationFailed, err.Error())
	}

	now := srv.now().UTC()
	session := &entity.Session{
		Token:     token,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(srv.ttl),
	}

	if err := srv.sessionRepo.Create(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to store session")
	}

	srv.log(ctx).Debug("Session established", slog.String("userID", userID), slog.Time("expiresAt", session.ExpiresAt))

	return session, nil
}

func (srv *sessionService) Resolve(ctx context.Context, token string) (string, bool, error) {
	if token == "" {
		return "", false, nil
	}

	session, err := srv.sessionRepo.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return "", false, nil
		}

		return "", false, errors.Wrap(err, "failed to find session")
	}

	if session.Expired(srv.now()) {
		if err := srv.sessionRepo.DeleteByToken(ctx, token); err != nil {
			srv.log(ctx).Warn("Failed to delete expired session", slog.Any("error", err))
		}

		return "", false, nil
	}

	return session.UserID, true, nil
}

func (srv *sessionService) Clear(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	if err := srv.sessionRepo.DeleteByToken(ctx, token); err != nil {
		return errors.Wrap(err, "failed to delete session")
	}

	return nil
}
