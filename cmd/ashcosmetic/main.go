package main

import (
	"context"
	"log/slog"
	"os"

	"ashcosmetic/config"
	"ashcosmetic/internal/delivery"
	"ashcosmetic/internal/delivery/http"
	"ashcosmetic/internal/delivery/http/cookie"
	"ashcosmetic/internal/delivery/http/middleware"
	"ashcosmetic/internal/delivery/http/router/handler"
	"ashcosmetic/internal/domain/lifecycle"
	"ashcosmetic/internal/domain/service"
	"ashcosmetic/internal/infra/auth"
	logs "ashcosmetic/internal/infra/log"
	"ashcosmetic/internal/infra/metrics"
	"ashcosmetic/internal/usecase"
	"ashcosmetic/internal/usecase/impl"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

type seedCatalogParams struct {
	fx.In
	fx.Lifecycle

	Config   *config.Config
	Logger   *slog.Logger
	Products usecase.ProductUsecase
}

func main() {
	fx.New(
		options(),
		fx.Invoke(
			seedCatalog,
			startServer,
		),
	).Run()
}

func options() fx.Option {
	return fx.Options(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
	)
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		fx.Annotate(
			metrics.NewRegistry,
			fx.As(new(prometheus.Registerer)),
			fx.As(new(prometheus.Gatherer)),
		),
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newStorage,
			newSessionRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewTokenGenerator,
			fx.Annotate(
				metrics.NewCollector,
				fx.As(new(service.MetricsRecorder)),
				fx.As(new(middleware.HTTPMetrics)),
			),
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewAccountService,
			impl.NewWishlistService,
			impl.NewProductService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			cookie.NewSessionCookie,
			middleware.NewErrorMiddleware,
			middleware.NewSessionMiddleware,
			middleware.NewRateLimitMiddleware,
			middleware.NewMetricsMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAccountHandler,
			handler.NewWishlistHandler,
			handler.NewProductHandler,
			handler.NewHealthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// seedCatalog upserts the default products once the store is reachable.
// Start hooks run in registration order, so the store's ping has already succeeded.
func seedCatalog(params seedCatalogParams) {
	if params.Config.Catalog != nil && !params.Config.Catalog.Seed {
		return
	}

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			seedCtx, cancel := context.WithTimeout(ctx, lifecycle.SeedTimeout)
			defer cancel()

			if err := params.Products.Seed(seedCtx, impl.DefaultCatalog()); err != nil {
				return errors.Wrap(err, "failed to seed product catalog")
			}

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
