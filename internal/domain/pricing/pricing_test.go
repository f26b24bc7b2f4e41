package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"skyelectro/internal/domain/entity"
)

func TestEffectivePrice(t *testing.T) {
	tests := []struct {
		name     string
		price    string
		discount int
		want     string
	}{
		{"no discount", "1000", 0, "1000"},
		{"ten percent", "1000", 10, "900"},
		{"rounds to nearest unit", "999", 10, "899"}, // 899.1 -> 899
		{"rounds half up", "50", 25, "38"},           // 37.5 -> 38
		{"full discount", "1000", 100, "0"},
		{"negative discount ignored", "1000", -5, "1000"},
		{"discount above hundred ignored", "1000", 150, "1000"},
		{"zero price", "0", 50, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price := decimal.RequireFromString(tt.price)
			got := EffectivePrice(price, tt.discount)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"EffectivePrice(%s, %d) = %s, want %s", tt.price, tt.discount, got, tt.want)
		})
	}
}

func TestEffectivePrice_IdentityWithoutDiscount(t *testing.T) {
	price := decimal.RequireFromString("749")
	assert.True(t, EffectivePrice(price, 0).Equal(price))
}

func TestProductPrice(t *testing.T) {
	p := &entity.Product{
		Price:    decimal.RequireFromString("2499"),
		Discount: 20,
	}
	assert.True(t, ProductPrice(p).Equal(decimal.RequireFromString("1999"))) // 1999.2 -> 1999
}
