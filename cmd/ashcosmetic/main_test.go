package main

import (
	"log/slog"
	"testing"

	"ashcosmetic/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func TestOptions_GraphIsComplete(t *testing.T) {
	require.NoError(t, fx.ValidateApp(options(), fx.Invoke(seedCatalog, startServer)))
}

func memoryConfig(sessionStore string) *config.Config {
	cfg := &config.Config{}
	cfg.Storage.Driver = config.StorageDriverMemory
	cfg.Session.Store = sessionStore

	return cfg
}

func TestNewStorage_Memory(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	logger := slog.New(slog.DiscardHandler)

	result, err := newStorage(storageParams{Lifecycle: lc, Config: memoryConfig(config.SessionStoreStorage), Logger: logger})
	require.NoError(t, err)
	assert.NotNil(t, result.UserRepo)
	assert.NotNil(t, result.ProductRepo)
	assert.NotNil(t, result.StorageSessions)

	sessions, err := newSessionRepository(sessionStoreParams{
		Lifecycle:       lc,
		Config:          memoryConfig(config.SessionStoreStorage),
		Logger:          logger,
		StorageSessions: result.StorageSessions,
	})
	require.NoError(t, err)
	assert.Same(t, result.StorageSessions, sessions)

	sessions, err = newSessionRepository(sessionStoreParams{
		Lifecycle:       lc,
		Config:          memoryConfig(config.SessionStoreMemory),
		Logger:          logger,
		StorageSessions: result.StorageSessions,
	})
	require.NoError(t, err)
	assert.NotSame(t, result.StorageSessions, sessions)
}

func TestNewStorage_UnknownDriver(t *testing.T) {
	cfg := memoryConfig(config.SessionStoreStorage)
	cfg.Storage.Driver = "cassandra"

	_, err := newStorage(storageParams{Lifecycle: fxtest.NewLifecycle(t), Config: cfg, Logger: slog.New(slog.DiscardHandler)})
	assert.ErrorContains(t, err, "unknown storage driver")

	_, err = newSessionRepository(sessionStoreParams{Lifecycle: fxtest.NewLifecycle(t), Config: memoryConfig("etcd")})
	assert.ErrorContains(t, err, "unknown session store")
}
