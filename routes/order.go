package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/mariam168/smart-shop-sub001/controllers/order"
	"github.com/mariam168/smart-shop-sub001/middleware"
)

func SetupOrderRoutes(r *gin.Engine, d *Deps) {
	st := d.Store

	// Customer side
	mine := r.Group("/user/orders", middleware.ValidateToken(d.JWTSecret))
	{
		mine.POST("/checkout", orderControllers.PlaceOrderHandler(d.Orders, st.Carts, st.Products, d.Reconciler, d.Hub))
		mine.GET("", orderControllers.GetMyOrdersHandler(d.Orders))
	}

	// Dashboard side
	orders := r.Group("/admin/orders", middleware.RequireAdmin(d.AdminAPIKey))
	{
		orders.GET("", orderControllers.GetAllOrdersHandler(d.Orders))

		// websocket endpoint for real-time order updates
		orders.GET("/ws", d.Hub.Handler)

		orders.GET("/user/:userID", orderControllers.GetUserOrdersHandler(d.Orders))
		orders.GET("/:orderID", orderControllers.GetOrderHandler(d.Orders))
		orders.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(d.Orders))
		orders.PUT("/:orderID/payment-status", orderControllers.UpdatePaymentStatusHandler(d.Orders))
		orders.DELETE("/:orderID", orderControllers.DeleteOrderHandler(d.Orders))
	}
}
