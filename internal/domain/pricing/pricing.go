// Package pricing computes effective product prices. Cart and wishlist read
// paths must apply these functions identically.
package pricing

import (
	"github.com/shopspring/decimal"

	"skyelectro/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// EffectivePrice returns the discounted unit price, rounded to the nearest
// whole currency unit. A discount of zero (or out of range) leaves the price
// unchanged. Pure function, no error conditions.
func EffectivePrice(price decimal.Decimal, discountPercent int) decimal.Decimal {
	if discountPercent <= 0 || discountPercent > 100 {
		return price
	}

	factor := hundred.Sub(decimal.NewFromInt(int64(discountPercent))).Div(hundred)

	return price.Mul(factor).Round(0)
}

// ProductPrice is EffectivePrice applied to a product's own price and discount.
func ProductPrice(p *entity.Product) decimal.Decimal {
	return EffectivePrice(p.Price, p.Discount)
}
