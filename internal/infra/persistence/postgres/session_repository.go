package postgres

import (
	"context"

	"ashcosmetic/internal/domain/entity"
	domainerrors "ashcosmetic/internal/domain/errors"
	"ashcosmetic/internal/domain/repository"
	"ashcosmetic/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository stores sessions in the sessions table. Rows cascade away with their user.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

func (repo *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	uid, err := uuid.Parse(session.UserID)
	if err != nil {
		return errors.Wrap(err, "invalid session user id")
	}

	sessionM := &model.SessionModel{
		Token:     session.Token,
		UserID:    uid,
		CreatedAt: session.CreatedAt,
		ExpiresAt: session.ExpiresAt,
	}
	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create session")
	}

	return nil
}

func (repo *sessionRepository) FindByToken(ctx context.Context, token string) (*entity.Session, error) {
	var sessionM model.SessionModel
	if err := repo.db.WithContext(ctx).Where("token = ?", token).First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session")
	}

	return &entity.Session{
		Token:     sessionM.Token,
		UserID:    sessionM.UserID.String(),
		CreatedAt: sessionM.CreatedAt,
		ExpiresAt: sessionM.ExpiresAt,
	}, nil
}

func (repo *sessionRepository) DeleteByToken(ctx context.Context, token string) error {
	if err := repo.db.WithContext(ctx).Where("token = ?", token).Delete(&model.SessionModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete session")
	}

	return nil
}
