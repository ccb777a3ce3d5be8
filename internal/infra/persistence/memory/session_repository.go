package memory

import (
	"context"
	"sync"

	"ashcosmetic/internal/domain/entity"
	"ashcosmetic/internal/domain/repository"
)

type sessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]entity.Session
}

// NewSessionRepository creates an in-memory session store. Sessions do not survive a restart.
func NewSessionRepository() repository.SessionRepository {
	return &sessionRepository{sessions: make(map[string]entity.Session)}
}

func (repo *sessionRepository) Create(_ context.Context, session *entity.Session) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.sessions[session.Token] = *session

	return nil
}

func (repo *sessionRepository) FindByToken(_ context.Context, token string) (*entity.Session, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	session, ok := repo.sessions[token]
	if !ok {
		return nil, repository.ErrSessionNotFound
	}

	return &session, nil
}

func (repo *sessionRepository) DeleteByToken(_ context.Context, token string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	delete(repo.sessions, token)

	return nil
}
