package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"delivery_admin/internal/ability"
)

// RequireAbility ensures the authenticated role may perform action on
// subject. Must run after RequireAuth.
func RequireAbility(action ability.Action, subject ability.Subject) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := CurrentRole(c)
		if !ability.Can(role, action, subject) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"code":    http.StatusForbidden,
				"message": "insufficient permissions",
			})
			return
		}
		c.Next()
	}
}
