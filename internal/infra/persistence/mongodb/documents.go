package mongodb

import (
	"time"

	"ashcosmetic/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type userDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"`
	Wishlist  []wishlistDocument `bson:"wishlist"`
	CreatedAt time.Time          `bson:"createdAt,omitempty"`
	UpdatedAt time.Time          `bson:"updatedAt,omitempty"`
}

type wishlistDocument struct {
	ProductID string  `bson:"productId"`
	Name      string  `bson:"name"`
	Image     string  `bson:"image"`
	Price     float64 `bson:"price"`
}

type sessionDocument struct {
	Token     string    `bson:"_id"`
	UserID    string    `bson:"userId"`
	CreatedAt time.Time `bson:"createdAt"`
	ExpiresAt time.Time `bson:"expiresAt"`
}

type productDocument struct {
	ID          string  `bson:"_id"`
	Name        string  `bson:"name"`
	Price       float64 `bson:"price"`
	Description string  `bson:"description"`
	Image       string  `bson:"image"`
}

func newUserDocument(user *entity.User) *userDocument {
	return &userDocument{
		Name:      user.Name,
		Email:     user.Email,
		Password:  user.PasswordHash,
		Wishlist:  newWishlistDocuments(user.Wishlist),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func (doc *userDocument) toEntity() *entity.User {
	wishlist := make([]entity.WishlistItem, 0, len(doc.Wishlist))
	for _, item := range doc.Wishlist {
		wishlist = append(wishlist, item.toEntity())
	}

	return &entity.User{
		ID:           doc.ID.Hex(),
		Name:         doc.Name,
		Email:        doc.Email,
		PasswordHash: doc.Password,
		Wishlist:     wishlist,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}
}

func newWishlistDocuments(items []entity.WishlistItem) []wishlistDocument {
	docs := make([]wishlistDocument, 0, len(items))
	for _, item := range items {
		docs = append(docs, newWishlistDocument(item))
	}

	return docs
}

func newWishlistDocument(item entity.WishlistItem) wishlistDocument {
	return wishlistDocument{
		ProductID: item.ProductID,
		Name:      item.Name,
		Image:     item.Image,
		Price:     item.Price,
	}
}

func (doc wishlistDocument) toEntity() entity.WishlistItem {
	return entity.WishlistItem{
		ProductID: doc.ProductID,
		Name:      doc.Name,
		Image:     doc.Image,
		Price:     doc.Price,
	}
}

func newSessionDocument(session *entity.Session) *sessionDocument {
	return &sessionDocument{
		Token:     session.Token,
		UserID:    session.UserID,
		CreatedAt: session.CreatedAt,
		ExpiresAt: session.ExpiresAt,
	}
}

func (doc *sessionDocument) toEntity() *entity.Session {
	return &entity.Session{
		Token:     doc.Token,
		UserID:    doc.UserID,
		CreatedAt: doc.CreatedAt,
		ExpiresAt: doc.ExpiresAt,
	}
}

func newProductDocument(product *entity.Product) *productDocument {
	return &productDocument{
		ID:          product.ID,
		Name:        product.Name,
		Price:       product.Price,
		Description: product.Description,
		Image:       product.Image,
	}
}

func (doc *productDocument) toEntity() *entity.Product {
	return &entity.Product{
		ID:          doc.ID,
		Name:        doc.Name,
		Price:       doc.Price,
		Description: doc.Description,
		Image:       doc.Image,
	}
}
