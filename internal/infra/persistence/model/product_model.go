// Package model contains the GORM-specific structs mirroring the database
// tables. Domain entities never carry GORM tags; the repositories map between
// the two.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductModel mirrors the 'products' table. PostgreSQL generates UUIDs via
// uuid_generate_v7(). Structured sub-fields (images, specifications, features,
// tags, rating) are stored as jsonb.
type ProductModel struct {
	ID            uuid.UUID        `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name          string           `gorm:"type:varchar(255);not null"`
	Slug          string           `gorm:"type:varchar(255);not null;index"`
	Description   string           `gorm:"type:text"`
	Price         decimal.Decimal  `gorm:"type:decimal(12,2);not null"`
	OriginalPrice *decimal.Decimal `gorm:"type:decimal(12,2)"`
	Discount      int              `gorm:"not null;default:0"`
	CategoryID    uuid.UUID        `gorm:"type:uuid;not null;index"`
	Brand         string           `gorm:"type:varchar(100)"`
	SKU           string           `gorm:"type:varchar(64);unique;not null"`
	Images        []string         `gorm:"serializer:json;type:jsonb"`
	Specifications []SpecificationDoc `gorm:"serializer:json;type:jsonb"`
	Features      []string         `gorm:"serializer:json;type:jsonb"`
	Tags          []string         `gorm:"serializer:json;type:jsonb"`
	Dimensions    string           `gorm:"type:varchar(100)"`
	Stock         int              `gorm:"not null;default:0"`
	RatingAverage float64          `gorm:"type:decimal(3,2);not null;default:0"`
	RatingCount   int              `gorm:"not null;default:0"`
	IsActive      bool             `gorm:"not null;default:true;index"`
	IsFeatured    bool             `gorm:"not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`

	Category *CategoryModel `gorm:"foreignKey:CategoryID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// SpecificationDoc is the jsonb shape of one product specification entry.
type SpecificationDoc struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}
