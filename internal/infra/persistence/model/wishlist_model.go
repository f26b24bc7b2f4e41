package model

import (
	"time"

	"github.com/google/uuid"
)

// WishlistModel mirrors the 'wishlists' table. One wishlist per user.
type WishlistModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;unique;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Items []WishlistItemModel `gorm:"foreignKey:WishlistID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (WishlistModel) TableName() string {
	return "wishlists"
}

// WishlistItemModel mirrors the 'wishlist_items' table. Presence-only, no
// quantity column.
type WishlistItemModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	WishlistID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_wishlist_product"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_wishlist_product"`
	AddedAt    time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (WishlistItemModel) TableName() string {
	return "wishlist_items"
}
