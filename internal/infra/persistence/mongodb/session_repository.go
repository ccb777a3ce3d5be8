package mongodb

import (
	"context"

	"ashcosmetic/internal/domain/entity"
	"ashcosmetic/internal/domain/repository"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
)

type sessionRepository struct {
	coll *mongo.Collection
}

// NewSessionRepository stores sessions keyed by token. Expired documents are reaped by the TTL index.
func NewSessionRepository(db *mongo.Database) repository.SessionRepository {
	return &sessionRepository{coll: db.Collection(sessionsCollection)}
}

func (repo *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	if _, err := repo.coll.InsertOne(ctx, newSessionDocument(session)); err != nil {
		return errors.Wrap(err, "failed to insert session")
	}

	return nil
}

func (repo *sessionRepository) FindByToken(ctx context.Context, token string) (*entity.Session, error) {
	var doc sessionDocument
	if err := repo.coll.FindOne(ctx, byID(token)).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session")
	}

	return doc.toEntity(), nil
}

func (repo *sessionRepository) DeleteByToken(ctx context.Context, token string) error {
	if _, err := repo.coll.DeleteOne(ctx, byID(token)); err != nil {
		return errors.Wrap(err, "failed to delete session")
	}

	return nil
}
