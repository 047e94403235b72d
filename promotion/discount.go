package promotion

import (
	"github.com/mariam168/smart-shop-sub001/models"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Round2 rounds to cents, halves away from zero.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// ApplyDiscount returns base reduced by the promotion's percentage and rounded
// to cents. Without a promotion, or with a zero percentage, base is returned
// unchanged.
func ApplyDiscount(base float64, ad *models.Advertisement) float64 {
	if ad == nil || ad.DiscountPercentage <= 0 {
		return base
	}
	pct := decimal.NewFromFloat(ad.DiscountPercentage)
	if pct.GreaterThan(hundred) {
		pct = hundred
	}
	price := decimal.NewFromFloat(base).Mul(hundred.Sub(pct)).Div(hundred).Round(2)
	f, _ := price.Float64()
	return f
}
