package userControllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mariam168/smart-shop-sub001/i18n"
	"github.com/mariam168/smart-shop-sub001/middleware"
	"github.com/mariam168/smart-shop-sub001/models"
	"github.com/mariam168/smart-shop-sub001/response"
)

type UserStore interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) (*models.User, error)
}

type UpdateUserInput struct {
	Name          *string         `json:"name"`
	Phone         *string         `json:"phone"`
	Picture       *string         `json:"picture"`
	PreferredLang *string         `json:"preferred_lang"`
	Address       *models.Address `json:"address"`
}

// GET /user
func GetUser(users UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := users.FindByID(c.Request.Context(), middleware.UserID(c))
		if err != nil {
			response.Error(c, err, "Failed to fetch user")
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// GET /admin/users
func GetAllUsers(users UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := users.List(c.Request.Context())
		if err != nil {
			response.Error(c, err, "Failed to fetch users")
			return
		}
		if list == nil {
			list = []models.User{}
		}
		c.JSON(http.StatusOK, list)
	}
}

// PUT /user
func UpdateUser(users UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateUserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if input.Name != nil {
			updates["name"] = *input.Name
		}
		if input.Phone != nil {
			updates["phone"] = *input.Phone
		}
		if input.Picture != nil {
			updates["picture"] = *input.Picture
		}
		if input.PreferredLang != nil {
			lang, ok := i18n.ParseLang(*input.PreferredLang)
			if !ok {
				response.Error(c, models.NewValidationError("preferred_lang", "must be en or ar"), "Invalid input")
				return
			}
			updates["preferred_lang"] = lang
		}
		if input.Address != nil {
			updates["street"] = input.Address.Street
			updates["city"] = input.Address.City
			updates["state"] = input.Address.State
			updates["postal_code"] = input.Address.PostalCode
			updates["country"] = input.Address.Country
		}

		user, err := users.Update(c.Request.Context(), middleware.UserID(c), updates)
		if err != nil {
			response.Error(c, err, "Failed to update user")
			return
		}
		c.JSON(http.StatusOK, user)
	}
}
