package promotion

import (
	"context"
	"fmt"
	"time"

	"github.com/mariam168/smart-shop-sub001/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Source returns the advertisements that may apply to the given products at
// now. It may over-fetch; the Resolver re-checks every candidate.
type Source interface {
	CandidatesFor(ctx context.Context, productIDs []primitive.ObjectID, now time.Time) ([]models.Advertisement, error)
}

// Resolver picks, per product, the effective advertisement with the lowest
// Order, ties going to the earliest CreatedAt and then to the lowest id.
type Resolver struct {
	source Source
}

func NewResolver(source Source) *Resolver {
	return &Resolver{source: source}
}

// FindEffective returns the promotion effective for productID at now, or nil.
func (r *Resolver) FindEffective(ctx context.Context, productID primitive.ObjectID, now time.Time) (*models.Advertisement, error) {
	found, err := r.FindEffectiveBatch(ctx, []primitive.ObjectID{productID}, now)
	if err != nil {
		return nil, err
	}
	ad, ok := found[productID]
	if !ok {
		return nil, nil
	}
	return &ad, nil
}

// FindEffectiveBatch resolves many products with a single lookup. Products
// without an effective promotion are absent from the result.
func (r *Resolver) FindEffectiveBatch(ctx context.Context, productIDs []primitive.ObjectID, now time.Time) (map[primitive.ObjectID]models.Advertisement, error) {
	out := make(map[primitive.ObjectID]models.Advertisement)
	if len(productIDs) == 0 {
		return out, nil
	}

	wanted := make(map[primitive.ObjectID]struct{}, len(productIDs))
	ids := make([]primitive.ObjectID, 0, len(productIDs))
	for _, id := range productIDs {
		if _, dup := wanted[id]; dup {
			continue
		}
		wanted[id] = struct{}{}
		ids = append(ids, id)
	}

	candidates, err := r.source.CandidatesFor(ctx, ids, now)
	if err != nil {
		return nil, fmt.Errorf("load promotion candidates: %w", err)
	}

	for i := range candidates {
		ad := candidates[i]
		if ad.ProductRef == nil {
			continue
		}
		pid := *ad.ProductRef
		if _, ok := wanted[pid]; !ok || !IsEffective(&ad, now) {
			continue
		}
		if cur, ok := out[pid]; !ok || precedes(ad, cur) {
			out[pid] = ad
		}
	}
	return out, nil
}

func precedes(a, b models.Advertisement) bool {
	if a.Order != b.Order {
		return a.Order < b.Order
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.ID.Hex() < b.ID.Hex()
}
