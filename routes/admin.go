package routes

import (
	"github.com/gin-gonic/gin"
	adminController "github.com/mariam168/smart-shop-sub001/controllers/admin"
	advertisementcontroller "github.com/mariam168/smart-shop-sub001/controllers/advertisement"
	cartControllers "github.com/mariam168/smart-shop-sub001/controllers/cart"
	categorycontroller "github.com/mariam168/smart-shop-sub001/controllers/category"
	productcontroller "github.com/mariam168/smart-shop-sub001/controllers/product"
	userControllers "github.com/mariam168/smart-shop-sub001/controllers/user"
	"github.com/mariam168/smart-shop-sub001/middleware"
)

// SetupAdminRoutes registers all “/admin/*” endpoints. Requires API‐Key middleware.
func SetupAdminRoutes(r *gin.Engine, d *Deps) {
	st := d.Store
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.RequireAdmin(d.AdminAPIKey))
	{
		adminGroup.GET("/dashboard", adminController.GetDashboard(adminController.DashboardSources{
			Products:       st.Products,
			Categories:     st.Categories,
			Users:          d.Users,
			Advertisements: st.Advertisements,
			Orders:         d.Orders,
		}))

		// ─────────── Admin & User Management ───────────
		adminGroup.GET("/admins", adminController.GetAllAdmins(d.Admins))
		adminGroup.GET("/users", userControllers.GetAllUsers(d.Users))

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.GET("", productcontroller.GetProducts(st.Products, d.Catalog))
			productAdmin.GET("/:id", productcontroller.GetProductByID(st.Products, d.Catalog))
			productAdmin.POST("", productcontroller.CreateProduct(st.Products))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(st.Products))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(st.Products))
			productAdmin.POST("/:id/image", productcontroller.UploadProductImage(st.Products, d.UploadsDir))
			productAdmin.POST("/import-excel", productcontroller.ImportProductsFromExcel(st.Products))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(st.Products))
		}

		// ─────────── Category Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.GET("", categorycontroller.GetAllCategories(st.Categories))
			categoryAdmin.POST("", categorycontroller.CreateCategory(st.Categories))
			categoryAdmin.PUT("/:id", categorycontroller.UpdateCategory(st.Categories))
			categoryAdmin.DELETE("/:id", categorycontroller.DeleteCategory(st.Categories))
			categoryAdmin.POST("/:id/image", categorycontroller.UploadCategoryImage(st.Categories, d.UploadsDir))
		}

		// ─────────── Advertisements & Promotions ───────────
		adAdmin := adminGroup.Group("/advertisements")
		{
			adAdmin.GET("", advertisementcontroller.GetAllAdvertisements(st.Advertisements))
			adAdmin.GET("/:id", advertisementcontroller.GetAdvertisementByID(st.Advertisements))
			adAdmin.POST("", advertisementcontroller.CreateAdvertisement(st.Advertisements, st.Products))
			adAdmin.PUT("/:id", advertisementcontroller.UpdateAdvertisement(st.Advertisements, st.Products))
			adAdmin.DELETE("/:id", advertisementcontroller.DeleteAdvertisement(st.Advertisements))
		}

		// ─────────── Admin Approval Workflow ───────────
		adminMgmt := adminGroup.Group("/admin-management")
		{
			adminMgmt.GET("/pending", adminController.ListPendingAdmins(d.Admins))
			adminMgmt.POST("/approve", adminController.ApproveAdmin(d.Admins))
			adminMgmt.POST("/reject", adminController.RejectAdmin(d.Admins))
		}

		cartMgmt := adminGroup.Group("/user-cart")
		{
			cartMgmt.GET("/:user_id", cartControllers.GetAdminUserCart(st.Carts, st.Products))
		}
	}
}
