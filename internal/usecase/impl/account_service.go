// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "ashcosmetic/internal/delivery/context"
	"ashcosmetic/internal/domain/entity"
	domainerrors "ashcosmetic/internal/domain/errors"
	"ashcosmetic/internal/domain/repository"
	"ashcosmetic/internal/domain/service"
	"ashcosmetic/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	userRepo repository.UserRepository
	sessions usecase.SessionUsecase
	hasher   service.PasswordHasher
	metrics  service.MetricsRecorder
	logger   *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Sessions usecase.SessionUsecase
	Hasher   service.PasswordHasher
	Metrics  service.MetricsRecorder
	Logger   *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		userRepo: params.UserRepo,
		sessions: params.Sessions,
		hasher:   params.Hasher,
		metrics:  params.Metrics,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an account with an empty wishlist. Email uniqueness is left to the store.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Debug("Starting registration")

	if input.Password != input.Confirm {
		srv.metrics.RecordRegistration(service.OutcomeRejected)

		return nil, errors.WithStack(domainerrors.ErrPasswordMismatch)
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.metrics.RecordRegistration(service.OutcomeError)

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user := entity.NewUser(input.Name, input.Email, hash)
	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domainerrors.ErrEmailAlreadyRegistered) {
			srv.metrics.RecordRegistration(service.OutcomeRejected)
			srv.log(ctx).Debug("Registration rejected, email taken")

			return nil, errors.Wrap(err, "failed to create user")
		}
		srv.metrics.RecordRegistration(service.OutcomeError)
		srv.log(ctx).Error("Failed to create user", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.metrics.RecordRegistration(service.OutcomeSuccess)
	srv.log(ctx).Debug("Registration completed", slog.String("userID", user.ID))

	return &usecase.RegisterOutput{User: user}, nil
}

// Login verifies the credentials and establishes a session.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login")

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.metrics.RecordLogin(service.OutcomeRejected)

			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		}
		srv.metrics.RecordLogin(service.OutcomeError)

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.metrics.RecordLogin(service.OutcomeRejected)
		srv.log(ctx).Info("Login rejected, invalid password", slog.String("userID", user.ID))

		return nil, errors.WithStack(domainerrors.ErrInvalidPassword)
	}

	session, err := srv.sessions.Establish(ctx, user.ID)
	if err != nil {
		srv.metrics.RecordLogin(service.OutcomeError)

		return nil, errors.Wrap(err, "failed to establish session")
	}

	srv.metrics.RecordLogin(service.OutcomeSuccess)
	srv.log(ctx).Debug("Login completed", slog.String("userID", user.ID))

	return &usecase.LoginOutput{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		User:      user,
	}, nil
}

func (srv *accountService) CurrentUser(ctx context.Context, token string) (*entity.User, error) {
	userID, ok, err := srv.sessions.Resolve(ctx, token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve session")
	}
	if !ok {
		return nil, nil
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Session refers to a missing user", slog.String("userID", userID))

			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

func (srv *accountService) Logout(ctx context.Context, token string) error {
	if err := srv.sessions.Clear(ctx, token); err != nil {
		return errors.Wrap(err, "failed to clear session")
	}

	return nil
}

func (srv *accountService) CountUsers(ctx context.Context) (int64, error) {
	count, err := srv.userRepo.Count(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count users")
	}

	return count, nil
}
