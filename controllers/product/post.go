package productcontroller

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mariam168/smart-shop-sub001/models"
	"github.com/mariam168/smart-shop-sub001/response"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateProduct creates a product from a JSON body.
func CreateProduct(products ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p models.Product
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		p.ID = primitive.NilObjectID
		if p.Images == nil {
			p.Images = []string{}
		}
		if err := p.Validate(); err != nil {
			response.Error(c, err, "Failed to create product")
			return
		}
		if err := products.Create(c.Request.Context(), &p); err != nil {
			response.Error(c, err, "Failed to create product")
			return
		}
		c.JSON(http.StatusCreated, p)
	}
}

// UploadProductImage stores an image under uploadsDir/products and appends
// its public URL to the product.
func UploadProductImage(products ProductStore, uploadsDir string) gin.HandlerFunc {
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

		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image is required"})
			return
		}
		ext := filepath.Ext(file.Filename)
		base := strings.ReplaceAll(strings.TrimSuffix(filepath.Base(file.Filename), ext), " ", "_")
		filename := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), base, ext)

		saveDir := filepath.Join(uploadsDir, "products")
		if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
			response.Error(c, err, "Failed to create upload folder")
			return
		}
		if err := c.SaveUploadedFile(file, filepath.Join(saveDir, filename)); err != nil {
			response.Error(c, err, "Failed to save image")
			return
		}

		product.Images = append(product.Images, "/uploads/products/"+filename)
		if err := products.Update(c.Request.Context(), product); err != nil {
			response.Error(c, err, "Failed to update product")
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
