package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mariam168/smart-shop-sub001/models"
	"github.com/mariam168/smart-shop-sub001/response"
)

// UpdateProduct replaces the editable fields of a product. Both languages
// are sent by the admin UI; nothing is merged per language.
func UpdateProduct(products ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := objectIDParam(c, "id")
		if !ok {
			return
		}
		existing, err := products.FindByID(c.Request.Context(), id)
		if err != nil {
			response.Error(c, err, "Failed to retrieve product")
			return
		}

		var input models.Product
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		input.ID = existing.ID
		input.CreatedAt = existing.CreatedAt
		if input.Images == nil {
			input.Images = existing.Images
		}
		if err := input.Validate(); err != nil {
			response.Error(c, err, "Failed to update product")
			return
		}
		if err := products.Update(c.Request.Context(), &input); err != nil {
			response.Error(c, err, "Failed to update product")
			return
		}
		c.JSON(http.StatusOK, input)
	}
}
