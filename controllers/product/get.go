package productcontroller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mariam168/smart-shop-sub001/response"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DetailFields are the bilingual fields resolved on a product detail.
var DetailFields = []string{
	"name",
	"description",
	"category.name",
	"advertisement.title",
	"advertisement.description",
}

// GetProductByID returns one product with its category and effective
// promotion. URL param: /products/:id
func GetProductByID(products ProductStore, catalog Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := objectIDParam(c, "id")
		if !ok {
			return
		}

		product, err := products.FindByID(c.Request.Context(), id)
		if err != nil {
			response.Error(c, err, "Failed to retrieve product")
			return
		}
		view, err := catalog.View(c.Request.Context(), *product, time.Now())
		if err != nil {
			response.Error(c, err, "Failed to retrieve product")
			return
		}
		response.Translated(c, http.StatusOK, view, DetailFields)
	}
}

func objectIDParam(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return id, false
	}
	return id, true
}
