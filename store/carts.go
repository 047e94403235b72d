package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mariam168/smart-shop-sub001/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CartRepository keeps one cart document per user id.
type CartRepository struct {
	docs documents[models.Cart]
}

func NewCartRepository(coll *mongo.Collection) *CartRepository {
	return &CartRepository{docs: documents[models.Cart]{coll: coll}}
}

func (r *CartRepository) FindByUser(ctx context.Context, userID string) (*models.Cart, error) {
	return r.docs.FindOne(ctx, bson.M{"userId": userID})
}

// Replace overwrites the user's items in one atomic upsert. Concurrent
// replaces for the same user resolve to the last writer.
func (r *CartRepository) Replace(ctx context.Context, userID string, items []models.CartItem) (*models.Cart, error) {
	if items == nil {
		items = []models.CartItem{}
	}
	now := time.Now().UTC()
	update := bson.M{
		"$set": bson.M{"items": items, "updatedAt": now},
		"$setOnInsert": bson.M{
			"_id":       primitive.NewObjectID(),
			"userId":    userID,
			"createdAt": now,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var cart models.Cart
	if err := r.docs.coll.FindOneAndUpdate(ctx, bson.M{"userId": userID}, update, opts).Decode(&cart); err != nil {
		return nil, fmt.Errorf("replace cart: %w", err)
	}
	return &cart, nil
}

// Clear empties the user's cart. A user without a cart is not an error.
func (r *CartRepository) Clear(ctx context.Context, userID string) error {
	err := r.docs.Update(ctx, bson.M{"userId": userID}, bson.M{
		"$set": bson.M{"items": []models.CartItem{}, "updatedAt": time.Now().UTC()},
	})
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	return err
}
