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

type WishlistRepository struct {
	docs documents[models.Wishlist]
}

func NewWishlistRepository(coll *mongo.Collection) *WishlistRepository {
	return &WishlistRepository{docs: documents[models.Wishlist]{coll: coll}}
}

func (r *WishlistRepository) FindByUser(ctx context.Context, userID string) (*models.Wishlist, error) {
	return r.docs.FindOne(ctx, bson.M{"userId": userID})
}

// Add puts productID on the user's wishlist once, creating the list if needed.
func (r *WishlistRepository) Add(ctx context.Context, userID string, productID primitive.ObjectID) (*models.Wishlist, error) {
	return r.modify(ctx, userID, true, bson.M{
		"$addToSet":    bson.M{"products": productID},
		"$set":         bson.M{"updatedAt": time.Now().UTC()},
		"$setOnInsert": bson.M{"_id": primitive.NewObjectID(), "userId": userID},
	})
}

// Remove takes productID off the user's wishlist. Removing from a missing
// list yields an empty one.
func (r *WishlistRepository) Remove(ctx context.Context, userID string, productID primitive.ObjectID) (*models.Wishlist, error) {
	w, err := r.modify(ctx, userID, false, bson.M{
		"$pull": bson.M{"products": productID},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	})
	if errors.Is(err, ErrNotFound) {
		return &models.Wishlist{UserID: userID, Products: []primitive.ObjectID{}}, nil
	}
	return w, err
}

func (r *WishlistRepository) modify(ctx context.Context, userID string, upsert bool, update bson.M) (*models.Wishlist, error) {
	opts := options.FindOneAndUpdate().SetUpsert(upsert).SetReturnDocument(options.After)
	var w models.Wishlist
	if err := r.docs.coll.FindOneAndUpdate(ctx, bson.M{"userId": userID}, update, opts).Decode(&w); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update wishlist: %w", err)
	}
	return &w, nil
}
