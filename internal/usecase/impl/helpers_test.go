package impl

import (
	"log/slog"
	"time"

	"skyelectro/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newActiveProduct(price int64, discount int) *entity.Product {
	now := time.Now()

	return &entity.Product{
		ID:        uuid.New(),
		Name:      "Test Product",
		Slug:      "test-product",
		Price:     decimal.NewFromInt(price),
		Discount:  discount,
		SKU:       "TST-TST-TST-100",
		Stock:     10,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
