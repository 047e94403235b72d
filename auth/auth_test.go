package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mariam168/smart-shop-sub001/middleware"
	"github.com/mariam168/smart-shop-sub001/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type memGuests struct {
	created []models.GuestUser
	err     error
}

func (m *memGuests) Create(_ context.Context, g *models.GuestUser) error {
	if m.err != nil {
		return m.err
	}
	m.created = append(m.created, *g)
	return nil
}

func TestGuestTokenPassesValidation(t *testing.T) {
	const secret = "s3cret"
	guests := &memGuests{}

	r := gin.New()
	r.POST("/auth/guest", CreateGuestUser(guests, secret))
	r.GET("/user/me", middleware.ValidateToken(secret), func(c *gin.Context) {
		c.String(http.StatusOK, middleware.UserID(c))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/guest", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		GuestID string `json:"guest_id"`
		Token   string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, guests.created, 1)
	assert.Equal(t, guests.created[0].ID, resp.GuestID)
	assert.True(t, strings.HasPrefix(resp.GuestID, "guest_"))

	req := httptest.NewRequest(http.MethodGet, "/user/me", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, resp.GuestID, w.Body.String())
}

func TestCreateGuestStoreFailure(t *testing.T) {
	r := gin.New()
	r.POST("/auth/guest", CreateGuestUser(&memGuests{err: errors.New("db down")}, "s"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/guest", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestIssueToken(t *testing.T) {
	_, err := IssueToken("u1", RoleUser, "", time.Hour, time.Now())
	assert.Error(t, err)

	expired, err := IssueToken("u1", RoleUser, "k", time.Minute, time.Now().Add(-time.Hour))
	require.NoError(t, err)

	r := gin.New()
	r.GET("/", middleware.ValidateToken("k"), func(c *gin.Context) { c.Status(http.StatusOK) })
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", expired)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
