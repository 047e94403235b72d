package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mariam168/smart-shop-sub001/models"
	"github.com/mariam168/smart-shop-sub001/response"
)

type approvalRequest struct {
	Email string `json:"email"`
}

// ListPendingAdmins returns all admins awaiting approval.
func ListPendingAdmins(admins AdminStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		pending, err := admins.ListPending(c.Request.Context())
		if err != nil {
			response.Error(c, err, "Failed to fetch pending admins")
			return
		}
		if pending == nil {
			pending = []models.Admin{}
		}
		c.JSON(http.StatusOK, pending)
	}
}

func ApproveAdmin(admins AdminStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := bindEmail(c)
		if !ok {
			return
		}
		if err := admins.Approve(c.Request.Context(), email); err != nil {
			response.Error(c, err, "Failed to approve admin")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Admin approved"})
	}
}

func RejectAdmin(admins AdminStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := bindEmail(c)
		if !ok {
			return
		}
		if err := admins.Reject(c.Request.Context(), email); err != nil {
			response.Error(c, err, "Failed to reject admin")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Admin rejected"})
	}
}

func bindEmail(c *gin.Context) (string, bool) {
	var req approvalRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return "", false
	}
	return req.Email, true
}
