package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mariam168/smart-shop-sub001/i18n"
	"github.com/mariam168/smart-shop-sub001/middleware"
	"github.com/mariam168/smart-shop-sub001/models"
	"github.com/mariam168/smart-shop-sub001/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type doc struct {
	Name        i18n.Text `json:"name"`
	Description i18n.Text `json:"description"`
	Price       float64   `json:"price"`
}

func serve(t *testing.T, url string, h gin.HandlerFunc, headers map[string]string) map[string]any {
	t.Helper()
	r := gin.New()
	r.Use(middleware.Language(), middleware.DetectAdmin("key"))
	r.GET("/", h)

	req := httptest.NewRequest(http.MethodGet, url, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

var sample = doc{Name: i18n.NewText("Lamp", "مصباح"), Description: i18n.NewText("Warm", "دافئ"), Price: 12.5}

func TestLocalized(t *testing.T) {
	out := serve(t, "/?lang=en", func(c *gin.Context) { Localized(c, http.StatusOK, sample) }, nil)
	assert.Equal(t, map[string]any{"name": "Lamp", "description": "Warm", "price": 12.5}, out)
}

func TestTranslatedLocalizesUnlistedFields(t *testing.T) {
	type nested struct {
		doc
		Options []doc `json:"options"`
	}
	body := nested{doc: sample, Options: []doc{sample}}

	out := serve(t, "/", func(c *gin.Context) { Translated(c, http.StatusOK, body, []string{"name"}) }, nil)
	assert.Equal(t, "مصباح", out["name"])
	assert.Equal(t, "دافئ", out["description"])
	opts, ok := out["options"].([]any)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"name": "مصباح", "description": "دافئ", "price": 12.5}, opts[0])

	out = serve(t, "/", func(c *gin.Context) { Translated(c, http.StatusOK, body, []string{"name"}) }, map[string]string{"X-API-KEY": "key"})
	assert.Equal(t, map[string]any{"en": "Warm", "ar": "دافئ"}, out["description"])
}

func TestTranslatedListBody(t *testing.T) {
	r := gin.New()
	r.Use(middleware.Language())
	r.GET("/", func(c *gin.Context) { Translated(c, http.StatusOK, []doc{sample, sample}, []string{"name"}) })
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/?lang=en", nil))

	var out []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out, 2)
	assert.Equal(t, "Lamp", out[1]["name"])
}

func TestAdminGetsRawPairs(t *testing.T) {
	out := serve(t, "/?lang=en", func(c *gin.Context) { Localized(c, http.StatusOK, sample) }, map[string]string{"X-API-KEY": "key"})
	assert.Equal(t, map[string]any{"en": "Lamp", "ar": "مصباح"}, out["name"])
}

func TestToTreeRejectsUnencodable(t *testing.T) {
	_, err := toTree(map[string]any{"bad": math.Inf(1)})
	assert.Error(t, err)
}

func TestToTreeKeepsNumbers(t *testing.T) {
	tree, err := toTree(map[string]any{"big": int64(9007199254740993)})
	require.NoError(t, err)
	assert.Equal(t, "9007199254740993", fmt.Sprint(tree.(map[string]any)["big"]))
}

func TestError(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{models.NewValidationError("name", "required"), http.StatusBadRequest},
		{fmt.Errorf("load: %w", store.ErrNotFound), http.StatusNotFound},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		r := gin.New()
		r.GET("/", func(c *gin.Context) { Error(c, tt.err, "Failed") })
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, tt.code, w.Code)
		assert.Contains(t, w.Body.String(), `"error"`)
	}
}
