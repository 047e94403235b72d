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

// effectiveFilter matches active advertisements whose window contains now.
// A null or missing bound is open.
func effectiveFilter(now time.Time) bson.M {
	return bson.M{
		"isActive": true,
		"$and": bson.A{
			bson.M{"$or": bson.A{bson.M{"startDate": nil}, bson.M{"startDate": bson.M{"$lte": now}}}},
			bson.M{"$or": bson.A{bson.M{"endDate": nil}, bson.M{"endDate": bson.M{"$gte": now}}}},
		},
	}
}

var displayOrder = bson.D{{Key: "order", Value: 1}, {Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}

type AdvertisementRepository struct {
	docs documents[models.Advertisement]
}

func NewAdvertisementRepository(coll *mongo.Collection) *AdvertisementRepository {
	return &AdvertisementRepository{docs: documents[models.Advertisement]{coll: coll}}
}

func (r *AdvertisementRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Advertisement, error) {
	return r.docs.FindByID(ctx, id)
}

// List returns every advertisement, optionally of one type, effective or not.
func (r *AdvertisementRepository) List(ctx context.Context, adType models.AdvertisementType) ([]models.Advertisement, error) {
	filter := bson.M{}
	if adType != "" {
		filter["type"] = adType
	}
	return r.docs.FindMany(ctx, filter, options.Find().SetSort(displayOrder))
}

// ListEffective returns the advertisements effective at now in display order.
func (r *AdvertisementRepository) ListEffective(ctx context.Context, now time.Time, adType models.AdvertisementType) ([]models.Advertisement, error) {
	filter := effectiveFilter(now)
	if adType != "" {
		filter["type"] = adType
	}
	return r.docs.FindMany(ctx, filter, options.Find().SetSort(displayOrder))
}

// CandidatesFor returns advertisements effective at now that point at one of
// productIDs.
func (r *AdvertisementRepository) CandidatesFor(ctx context.Context, productIDs []primitive.ObjectID, now time.Time) ([]models.Advertisement, error) {
	if len(productIDs) == 0 {
		return []models.Advertisement{}, nil
	}
	filter := effectiveFilter(now)
	filter["productRef"] = bson.M{"$in": uniqueIDs(productIDs)}
	return r.docs.FindMany(ctx, filter, options.Find().SetSort(displayOrder))
}

func (r *AdvertisementRepository) Create(ctx context.Context, ad *models.Advertisement) error {
	now := time.Now().UTC()
	if ad.ID.IsZero() {
		ad.ID = primitive.NewObjectID()
	}
	ad.CreatedAt, ad.UpdatedAt = now, now
	return r.docs.Insert(ctx, ad)
}

func (r *AdvertisementRepository) Update(ctx context.Context, ad *models.Advertisement) error {
	ad.UpdatedAt = time.Now().UTC()
	return r.docs.Replace(ctx, ad.ID, ad)
}

func (r *AdvertisementRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.docs.Delete(ctx, id)
}

func (r *AdvertisementRepository) Count(ctx context.Context) (int64, error) {
	return r.docs.Count(ctx, nil)
}

func (r *AdvertisementRepository) CountEffective(ctx context.Context, now time.Time) (int64, error) {
	return r.docs.Count(ctx, effectiveFilter(now))
}
