package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReviewModel mirrors the 'reviews' table. The (user_id, product_id) unique
// index backs the one-review-per-user-per-product rule; the service layer
// checks first and the index catches races.
type ReviewModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_review_user_product"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_review_user_product"`
	Rating       int       `gorm:"not null"`
	Title        string    `gorm:"type:varchar(255)"`
	Comment      string    `gorm:"type:text"`
	Status       string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	IsActive     bool      `gorm:"not null;default:true"`
	HelpfulCount int       `gorm:"not null;default:0"`
	NotHelpful   int       `gorm:"not null;default:0;column:not_helpful_count"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`

	Replies []ReviewReplyModel `gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}

// ReviewReplyModel mirrors the 'review_replies' table.
type ReviewReplyModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ReviewID  uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID    uuid.UUID `gorm:"type:uuid;not null"`
	Comment   string    `gorm:"type:text;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewReplyModel) TableName() string {
	return "review_replies"
}

// ReviewVoteModel mirrors the 'review_votes' table. One vote per user per
// review; voting again overwrites the kind.
type ReviewVoteModel struct {
	ReviewID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Vote      string    `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewVoteModel) TableName() string {
	return "review_votes"
}
