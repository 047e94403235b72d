// Package wishlistcontroller serves the signed in user's saved products.
package wishlistcontroller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mariam168/smart-shop-sub001/middleware"
	"github.com/mariam168/smart-shop-sub001/models"
	"github.com/mariam168/smart-shop-sub001/response"
	"github.com/mariam168/smart-shop-sub001/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type WishlistStore interface {
	FindByUser(ctx context.Context, userID string) (*models.Wishlist, error)
	Add(ctx context.Context, userID string, productID primitive.ObjectID) (*models.Wishlist, error)
	Remove(ctx context.Context, userID string, productID primitive.ObjectID) (*models.Wishlist, error)
}

type ProductStore interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error)
}

type Catalog interface {
	Views(ctx context.Context, products []models.Product, now time.Time) ([]models.ProductView, error)
}

// GET /user/wishlist
// Products deleted since they were saved are left out.
func GetWishlist(wishlists WishlistStore, products ProductStore, catalog Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		wl, err := wishlists.FindByUser(ctx, middleware.UserID(c))
		if errors.Is(err, store.ErrNotFound) {
			response.Localized(c, http.StatusOK, gin.H{"products": []models.ProductView{}})
			return
		}
		if err != nil {
			response.Error(c, err, "Failed to fetch wishlist")
			return
		}

		saved, err := products.FindByIDs(ctx, wl.Products)
		if err != nil {
			response.Error(c, err, "Failed to fetch wishlist")
			return
		}
		views, err := catalog.Views(ctx, saved, time.Now())
		if err != nil {
			response.Error(c, err, "Failed to fetch wishlist")
			return
		}
		response.Localized(c, http.StatusOK, gin.H{"products": views})
	}
}

// POST /user/wishlist/:product_id
func AddToWishlist(wishlists WishlistStore, products ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := productParam(c, products)
		if !ok {
			return
		}
		wl, err := wishlists.Add(c.Request.Context(), middleware.UserID(c), id)
		if err != nil {
			response.Error(c, err, "Failed to update wishlist")
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": wl.Products})
	}
}

// DELETE /user/wishlist/:product_id
func RemoveFromWishlist(wishlists WishlistStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("product_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}
		wl, err := wishlists.Remove(c.Request.Context(), middleware.UserID(c), id)
		if err != nil {
			response.Error(c, err, "Failed to update wishlist")
			return
		}
		saved := wl.Products
		if saved == nil {
			saved = []primitive.ObjectID{}
		}
		c.JSON(http.StatusOK, gin.H{"products": saved})
	}
}

func productParam(c *gin.Context, products ProductStore) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("product_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return id, false
	}
	if _, err := products.FindByID(c.Request.Context(), id); err != nil {
		response.Error(c, err, "Failed to fetch product")
		return id, false
	}
	return id, true
}
