package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mariam168/smart-shop-sub001/response"
)

// DeleteProduct removes a product. Carts and wishlists that still point at
// it drop the entry the next time they are read.
func DeleteProduct(products ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := objectIDParam(c, "id")
		if !ok {
			return
		}
		if err := products.Delete(c.Request.Context(), id); err != nil {
			response.Error(c, err, "Failed to delete product")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
