package adminController

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mariam168/smart-shop-sub001/database"
	"github.com/mariam168/smart-shop-sub001/models"
	"github.com/mariam168/smart-shop-sub001/response"
	"golang.org/x/sync/errgroup"
)

type AdminStore interface {
	List(ctx context.Context) ([]models.Admin, error)
	ListPending(ctx context.Context) ([]models.Admin, error)
	Approve(ctx context.Context, email string) error
	Reject(ctx context.Context, email string) error
}

type Counter interface {
	Count(ctx context.Context) (int64, error)
}

type AdvertisementCounter interface {
	Count(ctx context.Context) (int64, error)
	CountEffective(ctx context.Context, now time.Time) (int64, error)
}

type OrderStats interface {
	Stats(ctx context.Context) (database.OrderStats, error)
}

// DashboardSources is everything the dashboard summarizes.
type DashboardSources struct {
	Products       Counter
	Categories     Counter
	Users          Counter
	Advertisements AdvertisementCounter
	Orders         OrderStats
}

type Dashboard struct {
	Products             int64               `json:"products"`
	Categories           int64               `json:"categories"`
	Users                int64               `json:"users"`
	Advertisements       int64               `json:"advertisements"`
	ActiveAdvertisements int64               `json:"active_advertisements"`
	Orders               database.OrderStats `json:"orders"`
}

func GetAllAdmins(admins AdminStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := admins.List(c.Request.Context())
		if err != nil {
			response.Error(c, err, "Failed to fetch admins")
			return
		}
		if list == nil {
			list = []models.Admin{}
		}
		c.JSON(http.StatusOK, list)
	}
}

// GET /admin/dashboard
func GetDashboard(src DashboardSources) gin.HandlerFunc {
	return func(c *gin.Context) {
		var d Dashboard
		now := time.Now()
		g, ctx := errgroup.WithContext(c.Request.Context())

		count := func(dst *int64, fn func(context.Context) (int64, error)) {
			g.Go(func() error {
				n, err := fn(ctx)
				*dst = n
				return err
			})
		}
		count(&d.Products, src.Products.Count)
		count(&d.Categories, src.Categories.Count)
		count(&d.Users, src.Users.Count)
		count(&d.Advertisements, src.Advertisements.Count)
		count(&d.ActiveAdvertisements, func(ctx context.Context) (int64, error) {
			return src.Advertisements.CountEffective(ctx, now)
		})
		g.Go(func() error {
			s, err := src.Orders.Stats(ctx)
			d.Orders = s
			return err
		})

		if err := g.Wait(); err != nil {
			response.Error(c, err, "Failed to load dashboard")
			return
		}
		c.JSON(http.StatusOK, d)
	}
}
