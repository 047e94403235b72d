package categorycontroller

import (
	"context"
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

type CategoryStore interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
	Create(ctx context.Context, c *models.Category) error
	Update(ctx context.Context, c *models.Category) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// GetAllCategories returns every category with its subcategories.
func GetAllCategories(categories CategoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := categories.List(c.Request.Context())
		if err != nil {
			response.Error(c, err, "Failed to fetch categories")
			return
		}
		response.Localized(c, http.StatusOK, list)
	}
}

func GetCategoryByID(categories CategoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		category, err := categories.FindByID(c.Request.Context(), id)
		if err != nil {
			response.Error(c, err, "Failed to fetch category")
			return
		}
		response.Localized(c, http.StatusOK, category)
	}
}

func CreateCategory(categories CategoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var category models.Category
		if err := c.ShouldBindJSON(&category); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		category.ID = primitive.NilObjectID
		if category.SubCategories == nil {
			category.SubCategories = []models.SubCategory{}
		}
		if err := category.Validate(); err != nil {
			response.Error(c, err, "Failed to create category")
			return
		}
		if err := categories.Create(c.Request.Context(), &category); err != nil {
			response.Error(c, err, "Failed to create category")
			return
		}
		c.JSON(http.StatusCreated, category)
	}
}

// UpdateCategory replaces name, description and subcategories. Subcategories
// sent without an _id are new.
func UpdateCategory(categories CategoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		existing, err := categories.FindByID(c.Request.Context(), id)
		if err != nil {
			response.Error(c, err, "Failed to fetch category")
			return
		}

		var input models.Category
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		input.ID = existing.ID
		input.CreatedAt = existing.CreatedAt
		if input.Image == "" {
			input.Image = existing.Image
		}
		if input.SubCategories == nil {
			input.SubCategories = existing.SubCategories
		}
		if err := input.Validate(); err != nil {
			response.Error(c, err, "Failed to update category")
			return
		}
		if err := categories.Update(c.Request.Context(), &input); err != nil {
			response.Error(c, err, "Failed to update category")
			return
		}
		c.JSON(http.StatusOK, input)
	}
}

func DeleteCategory(categories CategoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		if err := categories.Delete(c.Request.Context(), id); err != nil {
			response.Error(c, err, "Failed to delete category")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
	}
}

// UploadCategoryImage saves the image under uploadsDir/categories and
// replaces the category image, removing the old file.
func UploadCategoryImage(categories CategoryStore, uploadsDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		category, err := categories.FindByID(c.Request.Context(), id)
		if err != nil {
			response.Error(c, err, "Failed to fetch category")
			return
		}

		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image is required"})
			return
		}
		saveDir := filepath.Join(uploadsDir, "categories")
		if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
			response.Error(c, err, "Failed to create upload folder")
			return
		}

		ext := filepath.Ext(file.Filename)
		base := strings.ReplaceAll(strings.TrimSuffix(filepath.Base(file.Filename), ext), " ", "_")
		filename := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), base, ext)
		if err := c.SaveUploadedFile(file, filepath.Join(saveDir, filename)); err != nil {
			response.Error(c, err, "Failed to save image")
			return
		}

		if old := category.Image; old != "" {
			_ = os.Remove(filepath.Join(saveDir, filepath.Base(old)))
		}
		category.Image = "/uploads/categories/" + filename
		if err := categories.Update(c.Request.Context(), category); err != nil {
			response.Error(c, err, "Failed to update category")
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

func idParam(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return id, false
	}
	return id, true
}
