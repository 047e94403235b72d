package models

import (
	"time"

	"github.com/mariam168/smart-shop-sub001/i18n"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a catalog document (collection "products").
type Product struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"_id"`
	Name        i18n.Text           `bson:"name" json:"name"`
	Description i18n.Text           `bson:"description" json:"description"`
	BasePrice   float64             `bson:"basePrice" json:"basePrice"`
	Images      []string            `bson:"images" json:"images"`
	Category    *primitive.ObjectID `bson:"category,omitempty" json:"category,omitempty"`
	SubCategory *primitive.ObjectID `bson:"subCategory,omitempty" json:"subCategory,omitempty"`
	Variants    []Variant           `bson:"variants" json:"variants"`
	Stock       int                 `bson:"stock" json:"stock"`
	Weight      float64             `bson:"weight" json:"weight"`
	CreatedAt   time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// Variant is a purchasable SKU of a product with its own price.
type Variant struct {
	ID      primitive.ObjectID `bson:"_id" json:"_id"`
	SKU     string             `bson:"sku" json:"sku"`
	Price   float64            `bson:"price" json:"price"`
	Stock   int                `bson:"stock" json:"stock"`
	Image   string             `bson:"image,omitempty" json:"image,omitempty"`
	Options []VariantOption    `bson:"options" json:"options"`
}

// VariantOption is one attribute of a variant, e.g. Color = Red.
type VariantOption struct {
	Name  i18n.Text `bson:"name" json:"name"`
	Value i18n.Text `bson:"value" json:"value"`
}

// Validate checks the write-time invariants of a product.
func (p *Product) Validate() error {
	if err := p.Name.Validate(true); err != nil {
		return WrapValidationError("name", err)
	}
	if p.BasePrice < 0 {
		return NewValidationError("basePrice", "must not be negative")
	}
	if p.Stock < 0 {
		return NewValidationError("stock", "must not be negative")
	}
	for i, v := range p.Variants {
		if v.Price < 0 {
			return NewValidationError("variants.price", "must not be negative")
		}
		if v.Stock < 0 {
			return NewValidationError("variants.stock", "must not be negative")
		}
		if v.ID.IsZero() {
			p.Variants[i].ID = primitive.NewObjectID()
		}
	}
	return nil
}

// ProductView is the response shape of a product: the category is populated
// and the effective promotion, if any, is attached with its computed price.
// Variants carry their own discounted price.
type ProductView struct {
	Product
	Category           *Category      `json:"category,omitempty"`
	Variants           []VariantView  `json:"variants"`
	Advertisement      *Advertisement `json:"advertisement"`
	OriginalPrice      float64        `json:"originalPrice"`
	DisplayPrice       float64        `json:"displayPrice"`
	DiscountPercentage float64        `json:"discountPercentage"`
}

// VariantView is a variant with the promotion applied to its price.
type VariantView struct {
	Variant
	DisplayPrice float64 `json:"displayPrice"`
}
