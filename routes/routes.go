package routes

import (
	"github.com/gin-gonic/gin"
	advertisementcontroller "github.com/mariam168/smart-shop-sub001/controllers/advertisement"
	categorycontroller "github.com/mariam168/smart-shop-sub001/controllers/category"
	orderControllers "github.com/mariam168/smart-shop-sub001/controllers/order"
	productcontroller "github.com/mariam168/smart-shop-sub001/controllers/product"
	"github.com/mariam168/smart-shop-sub001/database"
	"github.com/mariam168/smart-shop-sub001/middleware"
	"github.com/mariam168/smart-shop-sub001/pricing"
	"github.com/mariam168/smart-shop-sub001/promotion"
	"github.com/mariam168/smart-shop-sub001/store"
	"gorm.io/gorm"
)

// Deps is everything the handlers are built from.
type Deps struct {
	Store  *store.Store
	Orders *database.OrderRepository
	Users  *database.UserRepository
	Admins *database.AdminRepository
	Guests *database.GuestRepository
	Hub    *orderControllers.Hub

	Catalog    *pricing.Catalog
	Reconciler *pricing.Reconciler

	JWTSecret   string
	AdminAPIKey string
	UploadsDir  string
}

// NewDeps wires the repositories and the pricing services around one
// promotion resolver.
func NewDeps(st *store.Store, db *gorm.DB, hub *orderControllers.Hub, jwtSecret, adminAPIKey, uploadsDir string) *Deps {
	resolver := promotion.NewResolver(st.Advertisements)
	return &Deps{
		Store:       st,
		Orders:      database.NewOrderRepository(db),
		Users:       database.NewUserRepository(db),
		Admins:      database.NewAdminRepository(db),
		Guests:      database.NewGuestRepository(db),
		Hub:         hub,
		Catalog:     pricing.NewCatalog(st.Categories, resolver),
		Reconciler:  pricing.NewReconciler(st.Products, resolver),
		JWTSecret:   jwtSecret,
		AdminAPIKey: adminAPIKey,
		UploadsDir:  uploadsDir,
	}
}

// SetupRoutes is the single entry point that wires up every route group.
// Language detection and admin detection run for every request so public
// reads can serve the raw bilingual documents to the dashboard.
func SetupRoutes(r *gin.Engine, d *Deps) {
	r.Use(middleware.Language(), middleware.DetectAdmin(d.AdminAPIKey))

	SetupCatalogRoutes(r, d)
	SetupAuthRoutes(r, d)
	SetupUserRoutes(r, d)
	SetupAdminRoutes(r, d)
	SetupOrderRoutes(r, d)
}

// SetupCatalogRoutes registers the public storefront reads.
func SetupCatalogRoutes(r *gin.Engine, d *Deps) {
	st := d.Store
	r.GET("/products", productcontroller.GetProducts(st.Products, d.Catalog))
	r.GET("/products/:id", productcontroller.GetProductByID(st.Products, d.Catalog))
	r.GET("/categories", categorycontroller.GetAllCategories(st.Categories))
	r.GET("/categories/:id", categorycontroller.GetCategoryByID(st.Categories))
	r.GET("/advertisements", advertisementcontroller.GetEffectiveAdvertisements(st.Advertisements))
}
