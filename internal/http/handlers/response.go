package handlers

import (
	"time"

	"github.com/JitendraSingh9587/TalkNTrade-Api/domain"
	"github.com/gin-gonic/gin"
)

// Response envelope shared by every endpoint.

func sendSuccess(c *gin.Context, status int, message string, data interface{}) {
	body := gin.H{"success": true, "message": message}
	if data != nil {
		body["data"] = data
	}
	c.JSON(status, body)
}

func sendError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// userPayload is the API shape of a user; the password digest is never
// part of it.
func userPayload(user *domain.User) gin.H {
	return gin.H{
		"id":            user.ID,
		"name":          user.Name,
		"email":         user.Email,
		"mobile":        user.Mobile,
		"role":          user.Role,
		"is_disabled":   user.IsDisabled,
		"disabled_at":   timeOrNil(user.DisabledAt),
		"last_login_at": timeOrNil(user.LastLoginAt),
		"created_at":    user.CreatedAt,
		"updated_at":    user.UpdatedAt,
	}
}

func timeOrNil(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return *t
}
