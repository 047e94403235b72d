// Package pricing recomputes cart prices on the server and derives the
// display price of catalog products.
package pricing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mariam168/smart-shop-sub001/i18n"
	"github.com/mariam168/smart-shop-sub001/models"
	"github.com/mariam168/smart-shop-sub001/promotion"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"
)

var ErrInvalidItem = errors.New("pricing: invalid cart item")

// ProductLookup reports which of the given product ids still exist.
type ProductLookup interface {
	ExistingIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]struct{}, error)
}

// PromotionLookup is satisfied by *promotion.Resolver.
type PromotionLookup interface {
	FindEffectiveBatch(ctx context.Context, ids []primitive.ObjectID, now time.Time) (map[primitive.ObjectID]models.Advertisement, error)
}

// SubmittedItem is a cart line as the client sends it. Price is the unit price
// the client was quoted when the item was added.
type SubmittedItem struct {
	Product            primitive.ObjectID  `json:"product"`
	Name               i18n.Text           `json:"name"`
	Image              string              `json:"image"`
	Quantity           int                 `json:"quantity"`
	SelectedVariant    *primitive.ObjectID `json:"selectedVariant"`
	VariantDetailsText string              `json:"variantDetailsText"`
	Price              float64             `json:"price"`
	Stock              int                 `json:"stock"`
}

// Validate rejects lines that cannot be priced.
func (s SubmittedItem) Validate() error {
	if s.Product.IsZero() {
		return fmt.Errorf("%w: product is required", ErrInvalidItem)
	}
	if s.Quantity < 1 {
		return fmt.Errorf("%w: quantity must be at least 1", ErrInvalidItem)
	}
	if s.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidItem)
	}
	return nil
}

// Reconciler turns client submitted cart lines into trusted ones.
type Reconciler struct {
	Products   ProductLookup
	Promotions PromotionLookup
}

func NewReconciler(products ProductLookup, promotions PromotionLookup) *Reconciler {
	return &Reconciler{Products: products, Promotions: promotions}
}

// Reprice drops lines whose product no longer exists and recomputes the final
// price of the rest from the client quoted price and the promotion effective
// at now. Everything else on a line passes through unchanged.
func (r *Reconciler) Reprice(ctx context.Context, submitted []SubmittedItem, now time.Time) ([]models.CartItem, error) {
	out := make([]models.CartItem, 0, len(submitted))
	if len(submitted) == 0 {
		return out, nil
	}
	for i, it := range submitted {
		if err := it.Validate(); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
	}

	ids := make([]primitive.ObjectID, 0, len(submitted))
	for _, it := range submitted {
		ids = append(ids, it.Product)
	}

	var (
		existing map[primitive.ObjectID]struct{}
		promos   map[primitive.ObjectID]models.Advertisement
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		found, err := r.Products.ExistingIDs(gctx, ids)
		if err != nil {
			return fmt.Errorf("lookup products: %w", err)
		}
		existing = found
		return nil
	})
	g.Go(func() error {
		found, err := r.Promotions.FindEffectiveBatch(gctx, ids, now)
		if err != nil {
			return fmt.Errorf("lookup promotions: %w", err)
		}
		promos = found
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, it := range submitted {
		if _, ok := existing[it.Product]; !ok {
			continue
		}
		var ad *models.Advertisement
		if p, ok := promos[it.Product]; ok {
			ad = &p
		}
		out = append(out, models.CartItem{
			Product:            it.Product,
			Name:               it.Name,
			Image:              it.Image,
			Quantity:           it.Quantity,
			SelectedVariant:    it.SelectedVariant,
			VariantDetailsText: it.VariantDetailsText,
			OriginalPrice:      it.Price,
			FinalPrice:         promotion.ApplyDiscount(it.Price, ad),
			Stock:              it.Stock,
		})
	}
	return out, nil
}

// FilterDangling drops stored cart items whose product has been deleted.
func FilterDangling(ctx context.Context, products ProductLookup, items []models.CartItem) ([]models.CartItem, error) {
	if len(items) == 0 {
		return items, nil
	}
	ids := make([]primitive.ObjectID, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.Product)
	}
	existing, err := products.ExistingIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("lookup products: %w", err)
	}
	kept := make([]models.CartItem, 0, len(items))
	for _, it := range items {
		if _, ok := existing[it.Product]; ok {
			kept = append(kept, it)
		}
	}
	return kept, nil
}

// Submitted converts stored items back into submissions so a stored cart can
// be repriced, e.g. at checkout.
func Submitted(items []models.CartItem) []SubmittedItem {
	out := make([]SubmittedItem, 0, len(items))
	for _, it := range items {
		out = append(out, SubmittedItem{
			Product:            it.Product,
			Name:               it.Name,
			Image:              it.Image,
			Quantity:           it.Quantity,
			SelectedVariant:    it.SelectedVariant,
			VariantDetailsText: it.VariantDetailsText,
			Price:              it.OriginalPrice,
			Stock:              it.Stock,
		})
	}
	return out
}
