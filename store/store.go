// Package store is the document store of the catalog, promotions, carts and
// wishlists, backed by MongoDB.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ErrNotFound is returned when a lookup by id or owner matches nothing.
var ErrNotFound = fmt.Errorf("store: not found: %w", mongo.ErrNoDocuments)

const (
	productsCollection       = "products"
	categoriesCollection     = "categories"
	advertisementsCollection = "advertisements"
	cartsCollection          = "carts"
	wishlistsCollection      = "wishlists"
)

// Store owns the client connection and hands out one repository per
// collection. It is opened once at startup and closed on shutdown.
type Store struct {
	client *mongo.Client
	db     *mongo.Database

	Products       *ProductRepository
	Categories     *CategoryRepository
	Advertisements *AdvertisementRepository
	Carts          *CartRepository
	Wishlists      *WishlistRepository
}

// Connect dials uri, pings the primary and binds the repositories to dbName.
func Connect(ctx context.Context, uri, dbName string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return New(client, client.Database(dbName)), nil
}

// New binds repositories to an already connected database.
func New(client *mongo.Client, db *mongo.Database) *Store {
	return &Store{
		client:         client,
		db:             db,
		Products:       NewProductRepository(db.Collection(productsCollection)),
		Categories:     NewCategoryRepository(db.Collection(categoriesCollection)),
		Advertisements: NewAdvertisementRepository(db.Collection(advertisementsCollection)),
		Carts:          NewCartRepository(db.Collection(cartsCollection)),
		Wishlists:      NewWishlistRepository(db.Collection(wishlistsCollection)),
	}
}

func (s *Store) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}

// EnsureIndexes creates the indexes the repositories rely on. It is safe to
// run on every start.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	specs := map[string][]mongo.IndexModel{
		cartsCollection: {
			{Keys: bson.D{{Key: "userId", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		wishlistsCollection: {
			{Keys: bson.D{{Key: "userId", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		advertisementsCollection: {
			{Keys: bson.D{{Key: "productRef", Value: 1}, {Key: "isActive", Value: 1}, {Key: "order", Value: 1}}},
			{Keys: bson.D{{Key: "type", Value: 1}, {Key: "order", Value: 1}}},
		},
		productsCollection: {
			{Keys: bson.D{{Key: "category", Value: 1}}},
			{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		},
	}
	for coll, idx := range specs {
		if _, err := s.db.Collection(coll).Indexes().CreateMany(ctx, idx); err != nil {
			return fmt.Errorf("create %s indexes: %w", coll, err)
		}
	}
	return nil
}

// documents implements the generic find/update contract shared by the
// repositories.
type documents[T any] struct {
	coll *mongo.Collection
}

func (d documents[T]) FindByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	return d.FindOne(ctx, bson.M{"_id": id})
}

func (d documents[T]) FindOne(ctx context.Context, filter any) (*T, error) {
	var doc T
	if err := d.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find %s: %w", d.coll.Name(), err)
	}
	return &doc, nil
}

func (d documents[T]) FindMany(ctx context.Context, filter any, opts ...*options.FindOptions) ([]T, error) {
	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := d.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", d.coll.Name(), err)
	}
	defer cursor.Close(ctx)

	out := make([]T, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", d.coll.Name(), err)
	}
	return out, nil
}

// Update applies update to the document matching filter.
func (d documents[T]) Update(ctx context.Context, filter, update any) error {
	res, err := d.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("update %s: %w", d.coll.Name(), err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (d documents[T]) Replace(ctx context.Context, id primitive.ObjectID, doc *T) error {
	res, err := d.coll.ReplaceOne(ctx, bson.M{"_id": id}, doc)
	if err != nil {
		return fmt.Errorf("replace %s: %w", d.coll.Name(), err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (d documents[T]) Insert(ctx context.Context, doc *T) error {
	if _, err := d.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert %s: %w", d.coll.Name(), err)
	}
	return nil
}

func (d documents[T]) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := d.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete %s: %w", d.coll.Name(), err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (d documents[T]) Count(ctx context.Context, filter any) (int64, error) {
	if filter == nil {
		filter = bson.M{}
	}
	n, err := d.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", d.coll.Name(), err)
	}
	return n, nil
}

func uniqueIDs(ids []primitive.ObjectID) []primitive.ObjectID {
	seen := make(map[primitive.ObjectID]struct{}, len(ids))
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
