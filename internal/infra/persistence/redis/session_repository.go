package redis

import (
	"context"
	"encoding/json"
	"time"

	"ashcosmetic/config"
	"ashcosmetic/internal/domain/entity"
	"ashcosmetic/internal/domain/repository"

	goredis "github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
)

const defaultKeyPrefix = "session:"

type sessionRecord struct {
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type sessionRepository struct {
	client    goredis.Cmdable
	keyPrefix string
	now       func() time.Time
}

// NewSessionRepository stores each session under prefix+token with a TTL matching its expiry.
func NewSessionRepository(client *goredis.Client, cfg *config.Config) repository.SessionRepository {
	return newSessionRepository(client, keyPrefix(cfg))
}

func newSessionRepository(client goredis.Cmdable, prefix string) *sessionRepository {
	return &sessionRepository{
		client:    client,
		keyPrefix: prefix,
		now:       time.Now,
	}
}

func keyPrefix(cfg *config.Config) string {
	if cfg == nil || cfg.Redis == nil || cfg.Redis.KeyPrefix == "" {
		return defaultKeyPrefix
	}

	return cfg.Redis.KeyPrefix
}

func (repo *sessionRepository) key(token string) string {
	return repo.keyPrefix + token
}

func (repo *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	ttl := session.ExpiresAt.Sub(repo.now())
	if ttl <= 0 {
		return errors.New("session already expired")
	}

	payload, err := json.Marshal(sessionRecord{
		UserID:    session.UserID,
		CreatedAt: session.CreatedAt,
		ExpiresAt: session.ExpiresAt,
	})
	if err != nil {
		return errors.Wrap(err, "failed to encode session")
	}

	if err := repo.client.Set(ctx, repo.key(session.Token), payload, ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to store session")
	}

	return nil
}

func (repo *sessionRepository) FindByToken(ctx context.Context, token string) (*entity.Session, error) {
	payload, err := repo.client.Get(ctx, repo.key(token)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to load session")
	}

	var record sessionRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, errors.Wrap(err, "failed to decode session")
	}

	return &entity.Session{
		Token:     token,
		UserID:    record.UserID,
		CreatedAt: record.CreatedAt,
		ExpiresAt: record.ExpiresAt,
	}, nil
}

func (repo *sessionRepository) DeleteByToken(ctx context.Context, token string) error {
	if err := repo.client.Del(ctx, repo.key(token)).Err(); err != nil {
		return errors.Wrap(err, "failed to delete session")
	}

	return nil
}
