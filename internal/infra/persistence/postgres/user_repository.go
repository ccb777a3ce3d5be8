package postgres

import (
	"context"
	"encoding/json"
	"time"

	"ashcosmetic/internal/domain/entity"
	domainerrors "ashcosmetic/internal/domain/errors"
	"ashcosmetic/internal/domain/repository"
	"ashcosmetic/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// addWishlistItemSQL appends the item only while no element carries the same productId.
// The guard and the append run as one UPDATE, so concurrent adds cannot both succeed.
const addWishlistItemSQL = `UPDATE users
SET wishlist = wishlist || jsonb_build_array(?::jsonb), updated_at = ?
WHERE id = ? AND NOT (wishlist @> jsonb_build_array(jsonb_build_object('productId', ?::text)))`

// removeWishlistItemSQL rebuilds the array without the product, keeping the original order.
const removeWishlistItemSQL = `UPDATE users
SET wishlist = COALESCE((
        SELECT jsonb_agg(elem ORDER BY ord)
        FROM jsonb_array_elements(wishlist) WITH ORDINALITY AS t(elem, ord)
        WHERE elem->>'productId' IS DISTINCT FROM ?
    ), '[]'::jsonb),
    updated_at = ?
WHERE id = ?`

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, repository.ErrUserNotFound
	}

	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("id = ?", uid).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("email = ?", email).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Create inserts the user; the users_email_unique constraint rejects a second account for an email.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	now := repo.now()
	userM := fromUserDomain(user)
	userM.ID = uuid.New()
	userM.CreatedAt = now
	userM.UpdatedAt = now

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID.String()
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt
	if user.Wishlist == nil {
		user.Wishlist = []entity.WishlistItem{}
	}

	return nil
}

func (repo *userRepository) ReplaceWishlist(ctx context.Context, id string, wishlist []entity.WishlistItem) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return repository.ErrUserNotFound
	}

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", uid).
		Updates(map[string]any{
			"wishlist":   datatypes.JSONSlice[model.WishlistItemModel](fromWishlistDomain(wishlist)),
			"updated_at": repo.now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to replace wishlist")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func (repo *userRepository) AddWishlistItem(ctx context.Context, id string, item entity.WishlistItem) (bool, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return false, repository.ErrUserNotFound
	}

	payload, err := json.Marshal(fromWishlistItemDomain(item))
	if err != nil {
		return false, errors.Wrap(err, "failed to encode wishlist item")
	}

	result := repo.db.WithContext(ctx).Exec(addWishlistItemSQL, string(payload), repo.now(), uid, item.ProductID)
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to add wishlist item")
	}
	if result.RowsAffected > 0 {
		return true, nil
	}

	exists, err := repo.exists(ctx, uid)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, repository.ErrUserNotFound
	}

	return false, nil
}

func (repo *userRepository) RemoveWishlistItem(ctx context.Context, id string, productID string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return repository.ErrUserNotFound
	}

	result := repo.db.WithContext(ctx).Exec(removeWishlistItemSQL, productID, repo.now(), uid)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to remove wishlist item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func (repo *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.UserModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count users")
	}

	return count, nil
}

func (repo *userRepository) exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.UserModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check user existence")
	}

	return count > 0, nil
}

// --- Mapper Functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	wishlist := make([]entity.WishlistItem, 0, len(data.Wishlist))
	for _, item := range data.Wishlist {
		wishlist = append(wishlist, entity.WishlistItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Image:     item.Image,
			Price:     item.Price,
		})
	}

	return &entity.User{
		ID:           data.ID.String(),
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Wishlist:     wishlist,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	return &model.UserModel{
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Wishlist:     fromWishlistDomain(data.Wishlist),
	}
}

func fromWishlistDomain(items []entity.WishlistItem) []model.WishlistItemModel {
	models := make([]model.WishlistItemModel, 0, len(items))
	for _, item := range items {
		models = append(models, fromWishlistItemDomain(item))
	}

	return models
}

func fromWishlistItemDomain(item entity.WishlistItem) model.WishlistItemModel {
	return model.WishlistItemModel{
		ProductID: item.ProductID,
		Name:      item.Name,
		Image:     item.Image,
		Price:     item.Price,
	}
}
