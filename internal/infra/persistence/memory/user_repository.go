// Package memory provides mutex-guarded in-process repositories. State lives for the
// lifetime of the process; they back tests and single-instance local runs.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"ashcosmetic/internal/domain/entity"
	domainerrors "ashcosmetic/internal/domain/errors"
	"ashcosmetic/internal/domain/repository"

	"github.com/google/uuid"
)

type userRepository struct {
	mu      sync.RWMutex
	byID    map[string]*entity.User
	byEmail map[string]string
}

// NewUserRepository creates an empty in-memory credential store.
func NewUserRepository() repository.UserRepository {
	return &userRepository{
		byID:    make(map[string]*entity.User),
		byEmail: make(map[string]string),
	}
}

func (repo *userRepository) FindByID(_ context.Context, id string) (*entity.User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	user, ok := repo.byID[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return cloneUser(user), nil
}

func (repo *userRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	id, ok := repo.byEmail[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return cloneUser(repo.byID[id]), nil
}

// Create rejects a second account for the same email while holding the write lock,
// so the uniqueness check and the insert cannot interleave.
func (repo *userRepository) Create(_ context.Context, user *entity.User) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, exists := repo.byEmail[user.Email]; exists {
		return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("email already exists")
	}

	now := time.Now().UTC()
	user.ID = uuid.NewString()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.Wishlist == nil {
		user.Wishlist = []entity.WishlistItem{}
	}

	repo.byID[user.ID] = cloneUser(user)
	repo.byEmail[user.Email] = user.ID

	return nil
}

func (repo *userRepository) ReplaceWishlist(_ context.Context, id string, wishlist []entity.WishlistItem) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	user, ok := repo.byID[id]
	if !ok {
		return repository.ErrUserNotFound
	}

	user.Wishlist = slices.Clone(wishlist)
	if user.Wishlist == nil {
		user.Wishlist = []entity.WishlistItem{}
	}
	user.UpdatedAt = time.Now().UTC()

	return nil
}

func (repo *userRepository) AddWishlistItem(_ context.Context, id string, item entity.WishlistItem) (bool, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	user, ok := repo.byID[id]
	if !ok {
		return false, repository.ErrUserNotFound
	}

	if user.HasWishlistItem(item.ProductID) {
		return false, nil
	}

	user.Wishlist = append(user.Wishlist, item)
	user.UpdatedAt = time.Now().UTC()

	return true, nil
}

func (repo *userRepository) RemoveWishlistItem(_ context.Context, id string, productID string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	user, ok := repo.byID[id]
	if !ok {
		return repository.ErrUserNotFound
	}

	user.Wishlist = user.WishlistWithout(productID)
	user.UpdatedAt = time.Now().UTC()

	return nil
}

func (repo *userRepository) Count(_ context.Context) (int64, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	return int64(len(repo.byID)), nil
}

func cloneUser(user *entity.User) *entity.User {
	cloned := *user
	cloned.Wishlist = slices.Clone(user.Wishlist)
	if cloned.Wishlist == nil {
		cloned.Wishlist = []entity.WishlistItem{}
	}

	return &cloned
}
