package main

import (
	"log/slog"

	"ashcosmetic/config"
	"ashcosmetic/internal/domain/repository"
	"ashcosmetic/internal/infra/persistence/memory"
	"ashcosmetic/internal/infra/persistence/mongodb"
	"ashcosmetic/internal/infra/persistence/postgres"
	"ashcosmetic/internal/infra/persistence/redis"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type storageParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// storageResult exposes the repositories of the backend chosen by storage.driver.
// StorageSessions is that backend's own session store, used when session.store is "storage".
type storageResult struct {
	fx.Out

	UserRepo        repository.UserRepository
	ProductRepo     repository.ProductRepository
	StorageSessions repository.SessionRepository `name:"storageSessions"`
}

// newStorage connects only the selected backend; the others are never constructed.
func newStorage(params storageParams) (storageResult, error) {
	switch params.Config.Storage.Driver {
	case config.StorageDriverMongo:
		db, err := mongodb.New(mongodb.Params{Lifecycle: params.Lifecycle, Config: params.Config, Logger: params.Logger})
		if err != nil {
			return storageResult{}, err
		}

		return storageResult{
			UserRepo:        mongodb.NewUserRepository(db),
			ProductRepo:     mongodb.NewProductRepository(db),
			StorageSessions: mongodb.NewSessionRepository(db),
		}, nil

	case config.StorageDriverPostgres:
		db, err := postgres.New(postgres.Params{Lifecycle: params.Lifecycle, Config: params.Config, Logger: params.Logger})
		if err != nil {
			return storageResult{}, err
		}

		return storageResult{
			UserRepo:        postgres.NewUserRepository(db),
			ProductRepo:     postgres.NewProductRepository(db),
			StorageSessions: postgres.NewSessionRepository(db),
		}, nil

	case config.StorageDriverMemory:
		params.Logger.Warn("Using in-memory storage; data is lost on restart")

		return storageResult{
			UserRepo:        memory.NewUserRepository(),
			ProductRepo:     memory.NewProductRepository(),
			StorageSessions: memory.NewSessionRepository(),
		}, nil

	default:
		return storageResult{}, errors.Errorf("unknown storage driver: %s", params.Config.Storage.Driver)
	}
}

type sessionStoreParams struct {
	fx.In
	fx.Lifecycle

	Config          *config.Config
	Logger          *slog.Logger
	StorageSessions repository.SessionRepository `name:"storageSessions"`
}

// newSessionRepository picks the session store named by session.store.
func newSessionRepository(params sessionStoreParams) (repository.SessionRepository, error) {
	switch params.Config.Session.Store {
	case config.SessionStoreStorage:
		return params.StorageSessions, nil

	case config.SessionStoreMemory:
		return memory.NewSessionRepository(), nil

	case config.SessionStoreRedis:
		client, err := redis.New(redis.Params{Lifecycle: params.Lifecycle, Config: params.Config, Logger: params.Logger})
		if err != nil {
			return nil, err
		}

		return redis.NewSessionRepository(client, params.Config), nil

	default:
		return nil, errors.Errorf("unknown session store: %s", params.Config.Session.Store)
	}
}
