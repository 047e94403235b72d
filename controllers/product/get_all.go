package productcontroller

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mariam168/smart-shop-sub001/models"
	"github.com/mariam168/smart-shop-sub001/response"
	"github.com/mariam168/smart-shop-sub001/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductStore is the product collection as the handlers use it.
type ProductStore interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	List(ctx context.Context, q store.ProductQuery) ([]models.Product, int64, error)
	All(ctx context.Context) ([]models.Product, error)
	Create(ctx context.Context, p *models.Product) error
	Update(ctx context.Context, p *models.Product) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// Catalog attaches categories and effective promotions to products.
type Catalog interface {
	Views(ctx context.Context, products []models.Product, now time.Time) ([]models.ProductView, error)
	View(ctx context.Context, p models.Product, now time.Time) (models.ProductView, error)
}

// GetProducts lists products with filtering, sorting and paging. The total
// match count is returned in X-Total-Count.
func GetProducts(products ProductStore, catalog Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		q, ok := parseQuery(c)
		if !ok {
			return
		}

		list, total, err := products.List(c.Request.Context(), q)
		if err != nil {
			response.Error(c, err, "Failed to fetch products")
			return
		}
		views, err := catalog.Views(c.Request.Context(), list, time.Now())
		if err != nil {
			response.Error(c, err, "Failed to fetch products")
			return
		}

		c.Header("X-Total-Count", strconv.FormatInt(total, 10))
		response.Localized(c, http.StatusOK, views)
	}
}

func parseQuery(c *gin.Context) (store.ProductQuery, bool) {
	q := store.ProductQuery{
		Search: strings.TrimSpace(c.Query("search")),
		Sort:   strings.ToLower(c.DefaultQuery("sort", "newest")),
	}

	for param, dst := range map[string]**primitive.ObjectID{
		"category_id":     &q.Category,
		"sub_category_id": &q.SubCategory,
	} {
		raw := c.Query(param)
		if raw == "" {
			continue
		}
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + param})
			return q, false
		}
		*dst = &id
	}

	for param, dst := range map[string]**float64{
		"min_price": &q.MinPrice,
		"max_price": &q.MaxPrice,
	} {
		raw := c.Query(param)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + param})
			return q, false
		}
		*dst = &v
	}

	for param, dst := range map[string]*int{"page": &q.Page, "limit": &q.Limit} {
		raw := c.Query(param)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + param})
			return q, false
		}
		*dst = v
	}
	return q, true
}
