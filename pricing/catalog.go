package pricing

import (
	"context"
	"fmt"
	"time"

	"github.com/mariam168/smart-shop-sub001/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"
)

// CategoryLookup loads the categories products point at.
type CategoryLookup interface {
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Category, error)
}

// Catalog turns stored products into views with category and promotion
// attached.
type Catalog struct {
	Categories CategoryLookup
	Promotions PromotionLookup
}

func NewCatalog(categories CategoryLookup, promotions PromotionLookup) *Catalog {
	return &Catalog{Categories: categories, Promotions: promotions}
}

// Views resolves categories and promotions for all products with one batched
// lookup each, run concurrently. A product whose category was deleted is
// shown without one.
func (c *Catalog) Views(ctx context.Context, products []models.Product, now time.Time) ([]models.ProductView, error) {
	views := make([]models.ProductView, 0, len(products))
	if len(products) == 0 {
		return views, nil
	}

	productIDs := make([]primitive.ObjectID, 0, len(products))
	var categoryIDs []primitive.ObjectID
	for _, p := range products {
		productIDs = append(productIDs, p.ID)
		if p.Category != nil {
			categoryIDs = append(categoryIDs, *p.Category)
		}
	}

	categories := make(map[primitive.ObjectID]*models.Category)
	var promos map[primitive.ObjectID]models.Advertisement

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if len(categoryIDs) == 0 {
			return nil
		}
		found, err := c.Categories.FindByIDs(gctx, categoryIDs)
		if err != nil {
			return fmt.Errorf("lookup categories: %w", err)
		}
		for i := range found {
			categories[found[i].ID] = &found[i]
		}
		return nil
	})
	g.Go(func() error {
		found, err := c.Promotions.FindEffectiveBatch(gctx, productIDs, now)
		if err != nil {
			return fmt.Errorf("lookup promotions: %w", err)
		}
		promos = found
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, p := range products {
		var cat *models.Category
		if p.Category != nil {
			cat = categories[*p.Category]
		}
		var ad *models.Advertisement
		if found, ok := promos[p.ID]; ok {
			ad = &found
		}
		views = append(views, Display(p, cat, ad))
	}
	return views, nil
}

// View is Views for a single product.
func (c *Catalog) View(ctx context.Context, p models.Product, now time.Time) (models.ProductView, error) {
	views, err := c.Views(ctx, []models.Product{p}, now)
	if err != nil {
		return models.ProductView{}, err
	}
	return views[0], nil
}
