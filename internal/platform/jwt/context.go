package jwtmw

import (
	"github.com/gin-gonic/gin"

	"wordford/internal/feature/auth/domain/entity"
)

// CurrentUser returns the user bound by RequireUser.
// ok is false when the route is not behind RequireUser.
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	v, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*entity.User)
	return user, ok && user != nil
}

// MaybeUser returns the user bound by OptionalUser, or nil for an anonymous caller.
func MaybeUser(c *gin.Context) *entity.User {
	user, _ := CurrentUser(c)
	return user
}
