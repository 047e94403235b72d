package store

import (
	"context"
	"time"

	"github.com/mariam168/smart-shop-sub001/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CategoryRepository struct {
	docs documents[models.Category]
}

func NewCategoryRepository(coll *mongo.Collection) *CategoryRepository {
	return &CategoryRepository{docs: documents[models.Category]{coll: coll}}
}

func (r *CategoryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	return r.docs.FindByID(ctx, id)
}

func (r *CategoryRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Category, error) {
	if len(ids) == 0 {
		return []models.Category{}, nil
	}
	return r.docs.FindMany(ctx, bson.M{"_id": bson.M{"$in": uniqueIDs(ids)}})
}

// List returns all categories ordered by English name.
func (r *CategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	return r.docs.FindMany(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name.en", Value: 1}}))
}

func (r *CategoryRepository) Create(ctx context.Context, c *models.Category) error {
	now := time.Now().UTC()
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	c.CreatedAt, c.UpdatedAt = now, now
	return r.docs.Insert(ctx, c)
}

func (r *CategoryRepository) Update(ctx context.Context, c *models.Category) error {
	c.UpdatedAt = time.Now().UTC()
	return r.docs.Replace(ctx, c.ID, c)
}

func (r *CategoryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.docs.Delete(ctx, id)
}

func (r *CategoryRepository) Count(ctx context.Context) (int64, error) {
	return r.docs.Count(ctx, nil)
}
