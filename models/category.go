package models

import (
	"time"

	"github.com/mariam168/smart-shop-sub001/i18n"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category is a catalog document (collection "categories") with its
// subcategories embedded.
type Category struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name          i18n.Text          `bson:"name" json:"name"`
	Description   i18n.Text          `bson:"description" json:"description"`
	Image         string             `bson:"image,omitempty" json:"image,omitempty"`
	SubCategories []SubCategory      `bson:"subCategories" json:"subCategories"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type SubCategory struct {
	ID          primitive.ObjectID `bson:"_id" json:"_id"`
	Name        i18n.Text          `bson:"name" json:"name"`
	Description i18n.Text          `bson:"description" json:"description"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
}

// Validate checks names on the category and every subcategory and assigns
// ids to new subcategories.
func (c *Category) Validate() error {
	if err := c.Name.Validate(true); err != nil {
		return WrapValidationError("name", err)
	}
	for i := range c.SubCategories {
		if err := c.SubCategories[i].Name.Validate(true); err != nil {
			return WrapValidationError("subCategories.name", err)
		}
		if c.SubCategories[i].ID.IsZero() {
			c.SubCategories[i].ID = primitive.NewObjectID()
		}
	}
	return nil
}
