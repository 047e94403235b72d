package pricing

import (
	"github.com/mariam168/smart-shop-sub001/models"
	"github.com/mariam168/smart-shop-sub001/promotion"
)

// Display builds the catalog view of a product with its effective promotion
// attached. ad may be nil. Variant prices get the same discount as the base
// price so the view matches what the cart will charge.
func Display(p models.Product, category *models.Category, ad *models.Advertisement) models.ProductView {
	view := models.ProductView{
		Product:       p,
		Category:      category,
		Variants:      make([]models.VariantView, len(p.Variants)),
		OriginalPrice: p.BasePrice,
		DisplayPrice:  p.BasePrice,
	}
	for i, v := range p.Variants {
		view.Variants[i] = models.VariantView{Variant: v, DisplayPrice: v.Price}
	}
	if ad != nil {
		view.Advertisement = ad
		view.DiscountPercentage = ad.DiscountPercentage
		view.DisplayPrice = promotion.ApplyDiscount(p.BasePrice, ad)
		for i := range view.Variants {
			view.Variants[i].DisplayPrice = promotion.ApplyDiscount(view.Variants[i].Price, ad)
		}
	}
	return view
}
