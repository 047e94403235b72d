package productcontroller

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
	"github.com/mariam168/smart-shop-sub001/pricing"
	"github.com/mariam168/smart-shop-sub001/promotion"
	"github.com/mariam168/smart-shop-sub001/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type memProducts struct {
	byID  map[primitive.ObjectID]models.Product
	query store.ProductQuery
}

func newMemProducts(ps ...models.Product) *memProducts {
	m := &memProducts{byID: map[primitive.ObjectID]models.Product{}}
	for _, p := range ps {
		m.byID[p.ID] = p
	}
	return m
}

func (m *memProducts) FindByID(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	p, ok := m.byID[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &p, nil
}

func (m *memProducts) List(_ context.Context, q store.ProductQuery) ([]models.Product, int64, error) {
	m.query = q
	out := make([]models.Product, 0, len(m.byID))
	for _, p := range m.byID {
		out = append(out, p)
	}
	return out, int64(len(out)), nil
}

func (m *memProducts) All(ctx context.Context) ([]models.Product, error) {
	out, _, err := m.List(ctx, store.ProductQuery{})
	return out, err
}

func (m *memProducts) Create(_ context.Context, p *models.Product) error {
	p.ID = primitive.NewObjectID()
	m.byID[p.ID] = *p
	return nil
}

func (m *memProducts) Update(_ context.Context, p *models.Product) error {
	if _, ok := m.byID[p.ID]; !ok {
		return store.ErrNotFound
	}
	m.byID[p.ID] = *p
	return nil
}

func (m *memProducts) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := m.byID[id]; !ok {
		return store.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

type adSource []models.Advertisement

func (a adSource) CandidatesFor(context.Context, []primitive.ObjectID, time.Time) ([]models.Advertisement, error) {
	return a, nil
}

type categoryList []models.Category

func (l categoryList) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.Category, error) {
	var out []models.Category
	for _, c := range l {
		for _, id := range ids {
			if c.ID == id {
				out = append(out, c)
			}
		}
	}
	return out, nil
}

func newRouter(products ProductStore, ads ...models.Advertisement) *gin.Engine {
	return newCatalogRouter(products, nil, ads...)
}

func newCatalogRouter(products ProductStore, categories categoryList, ads ...models.Advertisement) *gin.Engine {
	catalog := pricing.NewCatalog(categories, promotion.NewResolver(adSource(ads)))
	r := gin.New()
	r.Use(middleware.Language(), middleware.DetectAdmin("admin-key"))
	r.GET("/products", GetProducts(products, catalog))
	r.GET("/products/:id", GetProductByID(products, catalog))
	r.POST("/admin/products", CreateProduct(products))
	r.PUT("/admin/products/:id", UpdateProduct(products))
	r.DELETE("/admin/products/:id", DeleteProduct(products))
	return r
}

// rawPairs collects the paths of every object that still looks bilingual.
func rawPairs(path string, v any) []string {
	var found []string
	switch t := v.(type) {
	case map[string]any:
		if i18n.IsBilingual(t) {
			found = append(found, path)
		}
		for k, el := range t {
			found = append(found, rawPairs(path+"."+k, el)...)
		}
	case []any:
		for _, el := range t {
			found = append(found, rawPairs(path+"[]", el)...)
		}
	}
	return found
}

func TestProductDetailInEnglishWithPromotion(t *testing.T) {
	now := time.Now()
	category := models.Category{
		ID:          primitive.NewObjectID(),
		Name:        i18n.NewText("Bags", "حقائب"),
		Description: i18n.NewText("All bags", "كل الحقائب"),
		SubCategories: []models.SubCategory{{
			ID:          primitive.NewObjectID(),
			Name:        i18n.NewText("Backpacks", "حقائب ظهر"),
			Description: i18n.NewText("For school", "للمدرسة"),
		}},
	}
	p := models.Product{
		ID:          primitive.NewObjectID(),
		Name:        i18n.NewText("Leather Bag", "حقيبة جلدية"),
		Description: i18n.NewText("Hand made", "صناعة يدوية"),
		BasePrice:   200,
		Images:      []string{},
		Category:    &category.ID,
		Variants: []models.Variant{{
			ID:    primitive.NewObjectID(),
			SKU:   "BAG-L",
			Price: 240,
			Options: []models.VariantOption{
				{Name: i18n.NewText("Size", "المقاس"), Value: i18n.NewText("Large", "كبير")},
			},
		}},
	}
	start, end := now.Add(-time.Hour), now.Add(time.Hour)
	ad := models.Advertisement{
		ID:                 primitive.NewObjectID(),
		Title:              i18n.NewText("Summer sale", "تخفيضات الصيف"),
		Description:        i18n.NewText("Limited", "لفترة محدودة"),
		Type:               models.AdTypeBanner,
		ProductRef:         &p.ID,
		DiscountPercentage: 15,
		IsActive:           true,
		StartDate:          &start,
		EndDate:            &end,
	}

	w := httptest.NewRecorder()
	r := newCatalogRouter(newMemProducts(p), categoryList{category}, ad)
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products/"+p.ID.Hex()+"?lang=en", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Empty(t, rawPairs("$", body))
	assert.Equal(t, "Leather Bag", body["name"])
	assert.Equal(t, 170.0, body["displayPrice"])
	advert, ok := body["advertisement"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 15.0, advert["discountPercentage"])
	assert.Equal(t, "Summer sale", advert["title"])

	cat, ok := body["category"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Bags", cat["name"])
	assert.Equal(t, "All bags", cat["description"])
	subs, ok := cat["subCategories"].([]any)
	require.True(t, ok)
	require.Len(t, subs, 1)
	sub := subs[0].(map[string]any)
	assert.Equal(t, "Backpacks", sub["name"])
	assert.Equal(t, "For school", sub["description"])

	variants, ok := body["variants"].([]any)
	require.True(t, ok)
	require.Len(t, variants, 1)
	variant := variants[0].(map[string]any)
	assert.Equal(t, 240.0, variant["price"])
	assert.Equal(t, 204.0, variant["displayPrice"])
	option := variant["options"].([]any)[0].(map[string]any)
	assert.Equal(t, "Size", option["name"])
	assert.Equal(t, "Large", option["value"])
}

func TestProductDetailAdminGetsBothLanguages(t *testing.T) {
	p := models.Product{ID: primitive.NewObjectID(), Name: i18n.NewText("Cup", "كوب"), BasePrice: 5}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products/"+p.ID.Hex(), nil)
	req.Header.Set("X-API-KEY", "admin-key")
	newRouter(newMemProducts(p)).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":{"en":"Cup","ar":"كوب"}`)
	assert.Contains(t, w.Body.String(), `"advertisement":null`)
}

func TestProductDetailErrors(t *testing.T) {
	r := newRouter(newMemProducts())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products/not-an-id", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products/"+primitive.NewObjectID().Hex(), nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProductListLocalizesDeepAndParsesQuery(t *testing.T) {
	variant := models.Variant{ID: primitive.NewObjectID(), Price: 9, Options: []models.VariantOption{
		{Name: i18n.NewText("Color", "اللون"), Value: i18n.NewText("Red", "أحمر")},
	}}
	p := models.Product{ID: primitive.NewObjectID(), Name: i18n.NewText("Shirt", "قميص"), BasePrice: 10, Variants: []models.Variant{variant}}
	products := newMemProducts(p)
	cat := primitive.NewObjectID()

	w := httptest.NewRecorder()
	newRouter(products).ServeHTTP(w, httptest.NewRequest(http.MethodGet,
		"/products?category_id="+cat.Hex()+"&min_price=5&sort=price_asc&page=2&limit=5", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", w.Header().Get("X-Total-Count"))

	var body []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "قميص", body[0]["name"])
	assert.Empty(t, rawPairs("$", body[0]))

	q := products.query
	require.NotNil(t, q.Category)
	assert.Equal(t, cat, *q.Category)
	require.NotNil(t, q.MinPrice)
	assert.Equal(t, 5.0, *q.MinPrice)
	assert.Nil(t, q.MaxPrice)
	assert.Equal(t, 2, q.Page)
	assert.Equal(t, 5, q.Limit)
	assert.Equal(t, "price_asc", q.Sort)
}

func TestProductListRejectsBadQuery(t *testing.T) {
	r := newRouter(newMemProducts())
	for _, url := range []string{"/products?min_price=abc", "/products?category_id=1", "/products?page=0"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code, url)
	}
}

func TestCreateUpdateDeleteProduct(t *testing.T) {
	products := newMemProducts()
	r := newRouter(products)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/admin/products",
		strings.NewReader(`{"name":{"en":"","ar":""},"basePrice":3}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/admin/products",
		strings.NewReader(`{"name":{"en":"Tea","ar":"شاي"},"basePrice":3,"variants":[{"sku":"T-1","price":3}]}`)))
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.False(t, created.ID.IsZero())
	require.Len(t, created.Variants, 1)
	assert.False(t, created.Variants[0].ID.IsZero())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/admin/products/"+created.ID.Hex(),
		strings.NewReader(`{"name":{"en":"Green Tea","ar":"شاي أخضر"},"basePrice":4}`)))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Green Tea", products.byID[created.ID].Name.EN)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/admin/products/"+created.ID.Hex(), nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, products.byID)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/admin/products/"+created.ID.Hex(), nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
