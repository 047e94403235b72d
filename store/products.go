package store

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/mariam168/smart-shop-sub001/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ProductQuery narrows and orders a product listing. Zero values mean no
// filter.
type ProductQuery struct {
	Category    *primitive.ObjectID
	SubCategory *primitive.ObjectID
	Search      string
	MinPrice    *float64
	MaxPrice    *float64
	// Sort is one of newest, oldest, price_asc, price_desc, name.
	Sort  string
	Page  int
	Limit int
}

func (q ProductQuery) filter() bson.M {
	f := bson.M{}
	if q.Category != nil {
		f["category"] = *q.Category
	}
	if q.SubCategory != nil {
		f["subCategory"] = *q.SubCategory
	}
	if q.Search != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(q.Search), Options: "i"}
		f["$or"] = bson.A{
			bson.M{"name.en": re},
			bson.M{"name.ar": re},
		}
	}
	price := bson.M{}
	if q.MinPrice != nil {
		price["$gte"] = *q.MinPrice
	}
	if q.MaxPrice != nil {
		price["$lte"] = *q.MaxPrice
	}
	if len(price) > 0 {
		f["basePrice"] = price
	}
	return f
}

func (q ProductQuery) sort() bson.D {
	switch q.Sort {
	case "oldest":
		return bson.D{{Key: "createdAt", Value: 1}}
	case "price_asc":
		return bson.D{{Key: "basePrice", Value: 1}, {Key: "_id", Value: 1}}
	case "price_desc":
		return bson.D{{Key: "basePrice", Value: -1}, {Key: "_id", Value: 1}}
	case "name":
		return bson.D{{Key: "name.en", Value: 1}, {Key: "_id", Value: 1}}
	default:
		return bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}
	}
}

func (q ProductQuery) findOptions() *options.FindOptions {
	limit := q.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	page := q.Page
	if page < 1 {
		page = 1
	}
	return options.Find().
		SetSort(q.sort()).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))
}

type ProductRepository struct {
	docs documents[models.Product]
}

func NewProductRepository(coll *mongo.Collection) *ProductRepository {
	return &ProductRepository{docs: documents[models.Product]{coll: coll}}
}

func (r *ProductRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	return r.docs.FindByID(ctx, id)
}

func (r *ProductRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error) {
	if len(ids) == 0 {
		return []models.Product{}, nil
	}
	return r.docs.FindMany(ctx, bson.M{"_id": bson.M{"$in": uniqueIDs(ids)}})
}

// ExistingIDs returns the subset of ids that still have a product document.
func (r *ProductRepository) ExistingIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]struct{}, error) {
	out := make(map[primitive.ObjectID]struct{}, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	cursor, err := r.docs.coll.Find(ctx,
		bson.M{"_id": bson.M{"$in": uniqueIDs(ids)}},
		options.Find().SetProjection(bson.M{"_id": 1}),
	)
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var row struct {
			ID primitive.ObjectID `bson:"_id"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("decode product id: %w", err)
		}
		out[row.ID] = struct{}{}
	}
	return out, cursor.Err()
}

// List returns one page of products matching q and the total match count.
func (r *ProductRepository) List(ctx context.Context, q ProductQuery) ([]models.Product, int64, error) {
	filter := q.filter()
	products, err := r.docs.FindMany(ctx, filter, q.findOptions())
	if err != nil {
		return nil, 0, err
	}
	total, err := r.docs.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// All returns every product, newest first.
func (r *ProductRepository) All(ctx context.Context) ([]models.Product, error) {
	return r.docs.FindMany(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
}

func (r *ProductRepository) Create(ctx context.Context, p *models.Product) error {
	now := time.Now().UTC()
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	p.CreatedAt, p.UpdatedAt = now, now
	return r.docs.Insert(ctx, p)
}

func (r *ProductRepository) Update(ctx context.Context, p *models.Product) error {
	p.UpdatedAt = time.Now().UTC()
	return r.docs.Replace(ctx, p.ID, p)
}

func (r *ProductRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.docs.Delete(ctx, id)
}

func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	return r.docs.Count(ctx, nil)
}
