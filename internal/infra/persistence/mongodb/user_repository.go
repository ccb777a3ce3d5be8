package mongodb

import (
	"context"
	"time"

	"ashcosmetic/internal/domain/entity"
	domainerrors "ashcosmetic/internal/domain/errors"
	"ashcosmetic/internal/domain/repository"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type userRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

// NewUserRepository creates a user repository on the users collection.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{
		coll: db.Collection(usersCollection),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	oid, ok := parseObjectID(id)
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return repo.findOne(ctx, byID(oid))
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, bson.D{{Key: "email", Value: email}})
}

func (repo *userRepository) findOne(ctx context.Context, filter bson.D) (*entity.User, error) {
	var doc userDocument
	if err := repo.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return doc.toEntity(), nil
}

// Create inserts the user. A duplicate email is rejected by the unique index on email.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	now := repo.now()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.Wishlist == nil {
		user.Wishlist = []entity.WishlistItem{}
	}

	result, err := repo.coll.InsertOne(ctx, newUserDocument(user))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("email already exists")
		}

		return errors.Wrap(err, "failed to insert user")
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return errors.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	user.ID = oid.Hex()

	return nil
}

func (repo *userRepository) ReplaceWishlist(ctx context.Context, id string, wishlist []entity.WishlistItem) error {
	oid, ok := parseObjectID(id)
	if !ok {
		return repository.ErrUserNotFound
	}

	result, err := repo.coll.UpdateOne(ctx, byID(oid), replaceWishlistUpdate(wishlist, repo.now()))
	if err != nil {
		return errors.Wrap(err, "failed to replace wishlist")
	}
	if result.MatchedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func (repo *userRepository) AddWishlistItem(ctx context.Context, id string, item entity.WishlistItem) (bool, error) {
	oid, ok := parseObjectID(id)
	if !ok {
		return false, repository.ErrUserNotFound
	}

	result, err := repo.coll.UpdateOne(ctx, addWishlistItemFilter(oid, item.ProductID), addWishlistItemUpdate(item, repo.now()))
	if err != nil {
		return false, errors.Wrap(err, "failed to add wishlist item")
	}
	if result.MatchedCount > 0 {
		return true, nil
	}

	// Nothing matched: either the item is already present or the user is gone.
	count, err := repo.coll.CountDocuments(ctx, byID(oid))
	if err != nil {
		return false, errors.Wrap(err, "failed to check user existence")
	}
	if count == 0 {
		return false, repository.ErrUserNotFound
	}

	return false, nil
}

func (repo *userRepository) RemoveWishlistItem(ctx context.Context, id string, productID string) error {
	oid, ok := parseObjectID(id)
	if !ok {
		return repository.ErrUserNotFound
	}

	result, err := repo.coll.UpdateOne(ctx, byID(oid), removeWishlistItemUpdate(productID, repo.now()))
	if err != nil {
		return errors.Wrap(err, "failed to remove wishlist item")
	}
	if result.MatchedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func (repo *userRepository) Count(ctx context.Context) (int64, error) {
	count, err := repo.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, errors.Wrap(err, "failed to count users")
	}

	return count, nil
}

// parseObjectID treats an id that is not a valid ObjectID as an unknown user.
func parseObjectID(id string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, false
	}

	return oid, true
}
