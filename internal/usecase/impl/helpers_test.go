package impl

import (
	"io"
	"log/slog"
	"time"

	"ashcosmetic/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.Session.TTL = ttl

	return cfg
}
