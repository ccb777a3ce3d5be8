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

const (
	wishlistOperationAdd    = "add"
	wishlistOperationRemove = "remove"
)

// wishlistService implements the WishlistUsecase interface on top of the store's atomic updates.
type wishlistService struct {
	userRepo repository.UserRepository
	metrics  service.MetricsRecorder
	logger   *slog.Logger
}

// WishlistServiceParams holds dependencies for WishlistService, injected by Fx.
type WishlistServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Metrics  service.MetricsRecorder
	Logger   *slog.Logger
}

// NewWishlistService is the constructor for wishlistService.
func NewWishlistService(params WishlistServiceParams) usecase.WishlistUsecase {
	return &wishlistService{
		userRepo: params.UserRepo,
		metrics:  params.Metrics,
		logger:   params.Logger,
	}
}

func (srv *wishlistService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *wishlistService) Add(ctx context.Context, userID string, item entity.WishlistItem) (*usecase.AddWishlistOutput, error) {
	if item.ProductID == "" {
		return nil, errors.WithStack(domainerrors.ErrProductDataMissing)
	}

	added, err := srv.userRepo.AddWishlistItem(ctx, userID, item)
	if err != nil {
		srv.metrics.RecordWishlistChange(wishlistOperationAdd, service.OutcomeError)

		return nil, srv.mapUserError(err, "failed to add wishlist item")
	}

	if !added {
		srv.metrics.RecordWishlistChange(wishlistOperationAdd, service.OutcomeRejected)
		srv.log(ctx).Debug("Wishlist item already present", slog.String("userID", userID), slog.String("productID", item.ProductID))

		return &usecase.AddWishlistOutput{Added: false, Reason: usecase.ReasonAlreadyExists}, nil
	}

	srv.metrics.RecordWishlistChange(wishlistOperationAdd, service.OutcomeSuccess)
	srv.log(ctx).Debug("Wishlist item added", slog.String("userID", userID), slog.String("productID", item.ProductID))

	return &usecase.AddWishlistOutput{Added: true}, nil
}

func (srv *wishlistService) Remove(ctx context.Context, userID, productID string) error {
	if err := srv.userRepo.RemoveWishlistItem(ctx, userID, productID); err != nil {
		srv.metrics.RecordWishlistChange(wishlistOperationRemove, service.OutcomeError)

		return srv.mapUserError(err, "failed to remove wishlist item")
	}

	srv.metrics.RecordWishlistChange(wishlistOperationRemove, service.OutcomeSuccess)
	srv.log(ctx).Debug("Wishlist item removed", slog.String("userID", userID), slog.String("productID", productID))

	return nil
}

func (srv *wishlistService) List(ctx context.Context, userID string) ([]entity.WishlistItem, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, srv.mapUserError(err, "failed to find user")
	}

	return user.WishlistItems(), nil
}

func (srv *wishlistService) mapUserError(err error, message string) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(domainerrors.ErrUserNotFound, message)
	}

	return errors.Wrap(err, message)
}
