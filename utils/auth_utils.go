package utils

import (
	"github.com/gin-gonic/gin"

	"github.com/mfghub/api-go/models"
)

// UserClaims is the request-scoped identity resolved once by the auth
// middleware and threaded into every guard check.
type UserClaims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
}

func (u *UserClaims) IsAdmin() bool {
	return u != nil && u.Role == models.RoleAdmin
}

type contextKey string

const UserContextKey contextKey = "user"

func GetUser(c *gin.Context) *UserClaims {
	user, exists := c.Get(string(UserContextKey))
	if !exists {
		return nil
	}
	if userClaims, ok := user.(*UserClaims); ok {
		return userClaims
	}
	return nil
}
