package models

import (
	"time"

	"github.com/mariam168/smart-shop-sub001/i18n"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Cart is the one cart per user (collection "carts"). It is replaced
// wholesale on every sync.
type Cart struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID    string             `bson:"userId" json:"userId"`
	Items     []CartItem         `bson:"items" json:"items"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CartItem carries a snapshot of the product at the time it was added.
// FinalPrice is always recomputed server side and never exceeds OriginalPrice.
type CartItem struct {
	Product            primitive.ObjectID  `bson:"product" json:"product"`
	Name               i18n.Text           `bson:"name" json:"name"`
	Image              string              `bson:"image" json:"image"`
	Quantity           int                 `bson:"quantity" json:"quantity"`
	SelectedVariant    *primitive.ObjectID `bson:"selectedVariant" json:"selectedVariant"`
	VariantDetailsText string              `bson:"variantDetailsText" json:"variantDetailsText"`
	OriginalPrice      float64             `bson:"originalPrice" json:"originalPrice"`
	FinalPrice         float64             `bson:"finalPrice" json:"finalPrice"`
	Stock              int                 `bson:"stock" json:"stock"`
}

// Wishlist holds the products a user saved (collection "wishlists").
type Wishlist struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	UserID    string               `bson:"userId" json:"userId"`
	Products  []primitive.ObjectID `bson:"products" json:"products"`
	UpdatedAt time.Time            `bson:"updatedAt" json:"updatedAt"`
}
