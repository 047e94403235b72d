package models

import (
	"time"

	"github.com/mariam168/smart-shop-sub001/i18n"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdvertisementType is where an advertisement is placed in the storefront.
type AdvertisementType string

const (
	AdTypeSlider  AdvertisementType = "slider"
	AdTypeBanner  AdvertisementType = "banner"
	AdTypeSidebar AdvertisementType = "sidebar"
	AdTypePopup   AdvertisementType = "popup"
	AdTypeOther   AdvertisementType = "other"
)

// Valid reports whether t is one of the known placements.
func (t AdvertisementType) Valid() bool {
	switch t {
	case AdTypeSlider, AdTypeBanner, AdTypeSidebar, AdTypePopup, AdTypeOther:
		return true
	}
	return false
}

// Advertisement is a promotion (collection "advertisements"). When it points at
// a product and is effective, its discount applies to that product's prices.
// A nil StartDate or EndDate leaves that side of the window open.
type Advertisement struct {
	ID                 primitive.ObjectID  `bson:"_id,omitempty" json:"_id"`
	Title              i18n.Text           `bson:"title" json:"title"`
	Description        i18n.Text           `bson:"description" json:"description"`
	Image              string              `bson:"image,omitempty" json:"image,omitempty"`
	Link               string              `bson:"link,omitempty" json:"link,omitempty"`
	Type               AdvertisementType   `bson:"type" json:"type"`
	ProductRef         *primitive.ObjectID `bson:"productRef" json:"productRef"`
	DiscountPercentage float64             `bson:"discountPercentage" json:"discountPercentage"`
	IsActive           bool                `bson:"isActive" json:"isActive"`
	StartDate          *time.Time          `bson:"startDate" json:"startDate"`
	EndDate            *time.Time          `bson:"endDate" json:"endDate"`
	Order              int                 `bson:"order" json:"order"`
	CreatedAt          time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time           `bson:"updatedAt" json:"updatedAt"`
}
