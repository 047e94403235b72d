package advertisementcontroller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mariam168/smart-shop-sub001/models"
	"github.com/mariam168/smart-shop-sub001/promotion"
	"github.com/mariam168/smart-shop-sub001/response"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AdvertisementStore interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Advertisement, error)
	List(ctx context.Context, adType models.AdvertisementType) ([]models.Advertisement, error)
	ListEffective(ctx context.Context, now time.Time, adType models.AdvertisementType) ([]models.Advertisement, error)
	Create(ctx context.Context, ad *models.Advertisement) error
	Update(ctx context.Context, ad *models.Advertisement) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ProductExists is used to reject promotions for unknown products.
type ProductExists interface {
	ExistingIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]struct{}, error)
}

// GetEffectiveAdvertisements lists what the storefront shows right now,
// optionally for one placement: GET /advertisements?type=slider
func GetEffectiveAdvertisements(ads AdvertisementStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		adType, ok := typeQuery(c)
		if !ok {
			return
		}
		list, err := ads.ListEffective(c.Request.Context(), time.Now(), adType)
		if err != nil {
			response.Error(c, err, "Failed to fetch advertisements")
			return
		}
		response.Localized(c, http.StatusOK, list)
	}
}

// GetAllAdvertisements lists every advertisement including inactive and
// expired ones.
func GetAllAdvertisements(ads AdvertisementStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		adType, ok := typeQuery(c)
		if !ok {
			return
		}
		list, err := ads.List(c.Request.Context(), adType)
		if err != nil {
			response.Error(c, err, "Failed to fetch advertisements")
			return
		}
		response.Localized(c, http.StatusOK, list)
	}
}

func GetAdvertisementByID(ads AdvertisementStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		ad, err := ads.FindByID(c.Request.Context(), id)
		if err != nil {
			response.Error(c, err, "Failed to fetch advertisement")
			return
		}
		response.Localized(c, http.StatusOK, ad)
	}
}

func CreateAdvertisement(ads AdvertisementStore, products ProductExists) gin.HandlerFunc {
	return func(c *gin.Context) {
		var ad models.Advertisement
		if err := c.ShouldBindJSON(&ad); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		ad.ID = primitive.NilObjectID
		if !checkAdvertisement(c, &ad, products) {
			return
		}
		if err := ads.Create(c.Request.Context(), &ad); err != nil {
			response.Error(c, err, "Failed to create advertisement")
			return
		}
		c.JSON(http.StatusCreated, ad)
	}
}

func UpdateAdvertisement(ads AdvertisementStore, products ProductExists) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		existing, err := ads.FindByID(c.Request.Context(), id)
		if err != nil {
			response.Error(c, err, "Failed to fetch advertisement")
			return
		}

		var input models.Advertisement
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		input.ID = existing.ID
		input.CreatedAt = existing.CreatedAt
		if !checkAdvertisement(c, &input, products) {
			return
		}
		if err := ads.Update(c.Request.Context(), &input); err != nil {
			response.Error(c, err, "Failed to update advertisement")
			return
		}
		c.JSON(http.StatusOK, input)
	}
}

func DeleteAdvertisement(ads AdvertisementStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		if err := ads.Delete(c.Request.Context(), id); err != nil {
			response.Error(c, err, "Failed to delete advertisement")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Advertisement deleted successfully"})
	}
}

// checkAdvertisement writes the error response and returns false when ad
// cannot be stored.
func checkAdvertisement(c *gin.Context, ad *models.Advertisement, products ProductExists) bool {
	if ad.Type == "" {
		ad.Type = models.AdTypeOther
	}
	if err := promotion.Validate(ad); err != nil {
		response.Error(c, err, "Invalid advertisement")
		return false
	}
	if ad.ProductRef == nil {
		return true
	}
	found, err := products.ExistingIDs(c.Request.Context(), []primitive.ObjectID{*ad.ProductRef})
	if err != nil {
		response.Error(c, err, "Failed to validate product")
		return false
	}
	if _, ok := found[*ad.ProductRef]; !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
		return false
	}
	return true
}

func typeQuery(c *gin.Context) (models.AdvertisementType, bool) {
	adType := models.AdvertisementType(c.Query("type"))
	if adType != "" && !adType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid advertisement type"})
		return "", false
	}
	return adType, true
}

func idParam(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid advertisement ID"})
		return id, false
	}
	return id, true
}
