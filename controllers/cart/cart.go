package cartControllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mariam168/smart-shop-sub001/middleware"
	"github.com/mariam168/smart-shop-sub001/models"
	"github.com/mariam168/smart-shop-sub001/pricing"
	"github.com/mariam168/smart-shop-sub001/response"
	"github.com/mariam168/smart-shop-sub001/store"
)

type CartStore interface {
	FindByUser(ctx context.Context, userID string) (*models.Cart, error)
	Replace(ctx context.Context, userID string, items []models.CartItem) (*models.Cart, error)
	Clear(ctx context.Context, userID string) error
}

type Repricer interface {
	Reprice(ctx context.Context, submitted []pricing.SubmittedItem, now time.Time) ([]models.CartItem, error)
}

// SyncCartInput is the whole cart as the client holds it.
type SyncCartInput struct {
	Items []pricing.SubmittedItem `json:"items"`
}

// GET /user/cart
func GetUserCart(carts CartStore, products pricing.ProductLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, ok := loadItems(c, carts, products, middleware.UserID(c))
		if !ok {
			return
		}
		response.Localized(c, http.StatusOK, gin.H{"items": items})
	}
}

// PUT /user/cart
// Replaces the stored cart with the submitted one after repricing it.
func SyncCart(carts CartStore, repricer Repricer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SyncCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		items, err := repricer.Reprice(c.Request.Context(), input.Items, time.Now())
		if err != nil {
			response.Error(c, err, "Failed to price cart")
			return
		}
		cart, err := carts.Replace(c.Request.Context(), middleware.UserID(c), items)
		if err != nil {
			response.Error(c, err, "Failed to save cart")
			return
		}
		response.Localized(c, http.StatusOK, gin.H{"items": cart.Items})
	}
}

// DELETE /user/cart
func ClearUserCart(carts CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := carts.Clear(c.Request.Context(), middleware.UserID(c)); err != nil {
			response.Error(c, err, "Failed to clear cart")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// GET /admin/user-cart/:user_id
func GetAdminUserCart(carts CartStore, products pricing.ProductLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
			return
		}
		items, ok := loadItems(c, carts, products, userID)
		if !ok {
			return
		}
		response.Localized(c, http.StatusOK, gin.H{"user_id": userID, "items": items})
	}
}

// loadItems returns the stored items minus those whose product is gone. A
// user without a cart has an empty one.
func loadItems(c *gin.Context, carts CartStore, products pricing.ProductLookup, userID string) ([]models.CartItem, bool) {
	cart, err := carts.FindByUser(c.Request.Context(), userID)
	if errors.Is(err, store.ErrNotFound) {
		return []models.CartItem{}, true
	}
	if err != nil {
		response.Error(c, err, "Failed to fetch cart")
		return nil, false
	}
	items, err := pricing.FilterDangling(c.Request.Context(), products, cart.Items)
	if err != nil {
		response.Error(c, err, "Failed to fetch cart")
		return nil, false
	}
	if items == nil {
		items = []models.CartItem{}
	}
	return items, true
}
