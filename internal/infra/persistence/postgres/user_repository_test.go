package postgres

import (
	"context"
	"testing"
	"time"

	"ashcosmetic/internal/domain/entity"
	domainerrors "ashcosmetic/internal/domain/errors"
	"ashcosmetic/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userColumns = []string{"id", "name", "email", "password_hash", "wishlist", "created_at", "updated_at"}

func TestUserRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(`INSERT INTO "users"`).WillReturnResult(sqlmock.NewResult(0, 1))

	user := entity.NewUser("Asha", "asha@example.com", "hash")
	require.NoError(t, repo.Create(context.Background(), user))

	_, err := uuid.Parse(user.ID)
	require.NoError(t, err)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(`INSERT INTO "users"`).WillReturnError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "users_email_unique"})

	err := repo.Create(context.Background(), entity.NewUser("Asha", "asha@example.com", "hash"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestUserRepository_FindByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)
	id := uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(
			id.String(), "Asha", "asha@example.com", "hash",
			[]byte(`[{"productId":"prod1","name":"Lip Balm","image":"images/box1_image.jpg","price":999}]`),
			now, now,
		))

	user, err := repo.FindByEmail(context.Background(), "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, id.String(), user.ID)
	assert.Equal(t, "hash", user.PasswordHash)
	require.Len(t, user.Wishlist, 1)
	assert.Equal(t, "prod1", user.Wishlist[0].ProductID)
	assert.InDelta(t, 999, user.Wishlist[0].Price, 0.001)
}

func TestUserRepository_FindByEmail_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := repo.FindByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_InvalidIDIsNotFound(t *testing.T) {
	db, _ := newMockDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	_, err := repo.FindByID(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = repo.AddWishlistItem(ctx, "not-a-uuid", entity.WishlistItem{ProductID: "prod1"})
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	err = repo.RemoveWishlistItem(ctx, "not-a-uuid", "prod1")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_AddWishlistItem(t *testing.T) {
	id := uuid.New()
	item := entity.WishlistItem{ProductID: "prod1", Name: "Lip Balm", Price: 999}

	t.Run("appended", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectExec(`UPDATE users\s+SET wishlist = wishlist \|\| jsonb_build_array`).
			WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), id, "prod1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		added, err := repo.AddWishlistItem(context.Background(), id.String(), item)
		require.NoError(t, err)
		assert.True(t, added)
	})

	t.Run("already present", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectExec(`UPDATE users`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE id = \$1`).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		added, err := repo.AddWishlistItem(context.Background(), id.String(), item)
		require.NoError(t, err)
		assert.False(t, added)
	})

	t.Run("user missing", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectExec(`UPDATE users`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		_, err := repo.AddWishlistItem(context.Background(), id.String(), item)
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
	})
}

func TestUserRepository_RemoveWishlistItem(t *testing.T) {
	id := uuid.New()

	t.Run("removed", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectExec(`jsonb_array_elements\(wishlist\) WITH ORDINALITY`).
			WithArgs("prod1", sqlmock.AnyArg(), id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.RemoveWishlistItem(context.Background(), id.String(), "prod1"))
	})

	t.Run("user missing", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectExec(`UPDATE users`).WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.RemoveWishlistItem(context.Background(), id.String(), "prod1")
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
	})
}

func TestUserRepository_Count(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}
