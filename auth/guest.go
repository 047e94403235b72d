package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mariam168/smart-shop-sub001/models"
	"github.com/mariam168/smart-shop-sub001/response"
)

const GuestTTL = 24 * time.Hour

type GuestStore interface {
	Create(ctx context.Context, guest *models.GuestUser) error
}

// POST /auth/guest
func CreateGuestUser(guests GuestStore, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		now := time.Now()
		guest := models.GuestUser{
			ID:        "guest_" + generateRandomString(16),
			ExpiresAt: now.Add(GuestTTL),
			CreatedAt: now,
		}

		if err := guests.Create(c.Request.Context(), &guest); err != nil {
			response.Error(c, err, "Failed to create guest")
			return
		}

		token, err := IssueGuestToken(guest.ID, secret, now)
		if err != nil {
			response.Error(c, err, "Token generation failed")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"guest_id":   guest.ID,
			"token":      token,
			"expires_at": guest.ExpiresAt,
		})
	}
}

func generateRandomString(n int) string {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "rand_guest"
	}
	return hex.EncodeToString(bytes)
}
