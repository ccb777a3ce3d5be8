// Package model holds the GORM persistence models of the relational backend.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserModel mirrors the 'users' table. IDs are generated by the application.
type UserModel struct {
	ID           uuid.UUID                             `gorm:"type:uuid;primaryKey"`
	Name         string                                `gorm:"type:text;not null"`
	Email        string                                `gorm:"type:text;not null;uniqueIndex:users_email_unique"`
	PasswordHash string                                `gorm:"type:text;not null"`
	Wishlist     datatypes.JSONSlice[WishlistItemModel] `gorm:"type:jsonb;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// WishlistItemModel is one element of the users.wishlist jsonb array.
type WishlistItemModel struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Price     float64 `json:"price"`
}
