package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestLanguageNegotiation(t *testing.T) {
	r := gin.New()
	r.Use(Language())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, Lang(c)) })

	tests := []struct {
		name    string
		url     string
		headers map[string]string
		want    string
	}{
		{"default", "/", nil, "ar"},
		{"query wins", "/?lang=en", map[string]string{"Accept-Language": "ar"}, "en"},
		{"accept language", "/", map[string]string{"Accept-Language": "en-US,en;q=0.9"}, "en"},
		{"x-lang", "/", map[string]string{"X-Lang": "en"}, "en"},
		{"x-lang over accept language", "/", map[string]string{"X-Lang": "en", "Accept-Language": "ar-EG,ar;q=0.9"}, "en"},
		{"query over x-lang", "/?lang=ar", map[string]string{"X-Lang": "en"}, "ar"},
		{"unsupported", "/?lang=fr", map[string]string{"Accept-Language": "de"}, "ar"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Body.String())
		})
	}
}

func TestAdminKey(t *testing.T) {
	r := gin.New()
	r.GET("/detect", DetectAdmin("k3y"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"admin": IsAdmin(c)})
	})
	r.GET("/admin", RequireAdmin("k3y"), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/detect", nil)
	req.Header.Set("X-API-KEY", "k3y")
	r.ServeHTTP(w, req)
	assert.JSONEq(t, `{"admin":true}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/detect", nil))
	assert.JSONEq(t, `{"admin":false}`, w.Body.String())

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("X-API-KEY", "wrong")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("X-API-KEY", "k3y")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func signed(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestValidateToken(t *testing.T) {
	r := gin.New()
	r.GET("/me", ValidateToken("s3cret"), func(c *gin.Context) { c.String(http.StatusOK, UserID(c)) })

	call := func(auth string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if auth != "" {
			req.Header.Set("Authorization", auth)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	good := signed(t, "s3cret", jwt.MapClaims{"user_id": "u1", "exp": time.Now().Add(time.Hour).Unix()})
	w := call("Bearer " + good)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u1", w.Body.String())

	// the storefront app sends the raw token without a scheme
	assert.Equal(t, http.StatusOK, call(good).Code)

	assert.Equal(t, http.StatusUnauthorized, call("").Code)
	assert.Equal(t, http.StatusUnauthorized, call("Bearer "+signed(t, "other", jwt.MapClaims{"user_id": "u1"})).Code)
	assert.Equal(t, http.StatusUnauthorized, call("Bearer "+signed(t, "s3cret", jwt.MapClaims{"user_id": "u1", "exp": time.Now().Add(-time.Hour).Unix()})).Code)
	assert.Equal(t, http.StatusUnauthorized, call("Bearer "+signed(t, "s3cret", jwt.MapClaims{"role": "guest"})).Code)
}
