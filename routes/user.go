package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/mariam168/smart-shop-sub001/controllers/cart"
	userControllers "github.com/mariam168/smart-shop-sub001/controllers/user"
	wishlistcontroller "github.com/mariam168/smart-shop-sub001/controllers/wishlist"
	"github.com/mariam168/smart-shop-sub001/middleware"
)

// SetupUserRoutes registers all “/user/*” endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, d *Deps) {
	st := d.Store
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken(d.JWTSecret))
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("", userControllers.GetUser(d.Users))
		userGroup.PUT("", userControllers.UpdateUser(d.Users))

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetUserCart(st.Carts, st.Products))
			cartGroup.PUT("", cartControllers.SyncCart(st.Carts, d.Reconciler))
			cartGroup.DELETE("", cartControllers.ClearUserCart(st.Carts))
		}

		// ──────────────── Wishlist ────────────────
		wishlistGroup := userGroup.Group("/wishlist")
		{
			wishlistGroup.GET("", wishlistcontroller.GetWishlist(st.Wishlists, st.Products, d.Catalog))
			wishlistGroup.POST("/:product_id", wishlistcontroller.AddToWishlist(st.Wishlists, st.Products))
			wishlistGroup.DELETE("/:product_id", wishlistcontroller.RemoveFromWishlist(st.Wishlists))
		}
	}
}
