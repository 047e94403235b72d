package advertisementcontroller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mariam168/smart-shop-sub001/i18n"
	"github.com/mariam168/smart-shop-sub001/middleware"
	"github.com/mariam168/smart-shop-sub001/models"
	"github.com/mariam168/smart-shop-sub001/promotion"
	"github.com/mariam168/smart-shop-sub001/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type memAds map[primitive.ObjectID]models.Advertisement

func (m memAds) FindByID(_ context.Context, id primitive.ObjectID) (*models.Advertisement, error) {
	ad, ok := m[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &ad, nil
}

func (m memAds) List(_ context.Context, adType models.AdvertisementType) ([]models.Advertisement, error) {
	var out []models.Advertisement
	for _, ad := range m {
		if adType == "" || ad.Type == adType {
			out = append(out, ad)
		}
	}
	return out, nil
}

func (m memAds) ListEffective(ctx context.Context, now time.Time, adType models.AdvertisementType) ([]models.Advertisement, error) {
	all, _ := m.List(ctx, adType)
	out := []models.Advertisement{}
	for i := range all {
		if promotion.IsEffective(&all[i], now) {
			out = append(out, all[i])
		}
	}
	return out, nil
}

func (m memAds) Create(_ context.Context, ad *models.Advertisement) error {
	ad.ID = primitive.NewObjectID()
	m[ad.ID] = *ad
	return nil
}

func (m memAds) Update(_ context.Context, ad *models.Advertisement) error {
	m[ad.ID] = *ad
	return nil
}

func (m memAds) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := m[id]; !ok {
		return store.ErrNotFound
	}
	delete(m, id)
	return nil
}

type knownProducts map[primitive.ObjectID]struct{}

func (k knownProducts) ExistingIDs(_ context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]struct{}, error) {
	out := map[primitive.ObjectID]struct{}{}
	for _, id := range ids {
		if _, ok := k[id]; ok {
			out[id] = struct{}{}
		}
	}
	return out, nil
}

func router(ads memAds, products knownProducts) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Language())
	r.GET("/advertisements", GetEffectiveAdvertisements(ads))
	r.POST("/admin/advertisements", CreateAdvertisement(ads, products))
	r.PUT("/admin/advertisements/:id", UpdateAdvertisement(ads, products))
	r.DELETE("/admin/advertisements/:id", DeleteAdvertisement(ads))
	return r
}

func TestEffectiveListHidesExpiredAndInactive(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	live := models.Advertisement{ID: primitive.NewObjectID(), Title: i18n.NewText("Live", "مباشر"), Type: models.AdTypeSlider, IsActive: true}
	expired := models.Advertisement{ID: primitive.NewObjectID(), Title: i18n.NewText("Old", "قديم"), Type: models.AdTypeSlider, IsActive: true, EndDate: &past}
	off := models.Advertisement{ID: primitive.NewObjectID(), Title: i18n.NewText("Off", "متوقف"), Type: models.AdTypeSlider}
	ads := memAds{live.ID: live, expired.ID: expired, off.ID: off}

	w := httptest.NewRecorder()
	router(ads, nil).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/advertisements?type=slider&lang=en", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "Live", body[0]["title"])

	w = httptest.NewRecorder()
	router(ads, nil).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/advertisements?type=billboard", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateAdvertisementValidation(t *testing.T) {
	pid := primitive.NewObjectID()
	ads := memAds{}
	r := router(ads, knownProducts{pid: {}})

	tests := []struct {
		name string
		body string
		code int
	}{
		{"window reversed", `{"title":{"en":"Sale"},"startDate":"2026-02-01T00:00:00Z","endDate":"2026-01-01T00:00:00Z"}`, http.StatusBadRequest},
		{"percentage too high", `{"title":{"en":"Sale"},"discountPercentage":120}`, http.StatusBadRequest},
		{"missing title", `{"title":{"en":"","ar":""}}`, http.StatusBadRequest},
		{"unknown product", `{"title":{"en":"Sale"},"productRef":"` + primitive.NewObjectID().Hex() + `"}`, http.StatusBadRequest},
		{"valid", `{"title":{"en":"Sale"},"type":"banner","isActive":true,"discountPercentage":15,"productRef":"` + pid.Hex() + `"}`, http.StatusCreated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/admin/advertisements", strings.NewReader(tt.body)))
			assert.Equal(t, tt.code, w.Code, w.Body.String())
		})
	}
	require.Len(t, ads, 1)
}

func TestUpdateAdvertisementKeepsCreatedAt(t *testing.T) {
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	ad := models.Advertisement{ID: primitive.NewObjectID(), Title: i18n.NewText("A", ""), Type: models.AdTypePopup, CreatedAt: created}
	ads := memAds{ad.ID: ad}

	w := httptest.NewRecorder()
	router(ads, nil).ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/admin/advertisements/"+ad.ID.Hex(),
		strings.NewReader(`{"title":{"en":"B"},"type":"popup","order":3}`)))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, created, ads[ad.ID].CreatedAt)
	assert.Equal(t, 3, ads[ad.ID].Order)

	w = httptest.NewRecorder()
	router(ads, nil).ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/admin/advertisements/"+ad.ID.Hex(), nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, ads)
}
