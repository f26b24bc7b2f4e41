package main

import (
	"skyelectro/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.ProductModel{},
		model.CategoryModel{},
		model.CartModel{},
		model.CartItemModel{},
		model.WishlistModel{},
		model.WishlistItemModel{},
		model.OrderModel{},
		model.OrderItemModel{},
		model.OrderStatusHistoryModel{},
		model.ReviewModel{},
		model.ReviewReplyModel{},
		model.ReviewVoteModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
