package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/cadet-records-api/internal/models"
	appErrors "github.com/noah-isme/cadet-records-api/pkg/errors"
	"github.com/noah-isme/cadet-records-api/pkg/response"
)

// RequireCapability lets the request through only when the caller's role grants capability.
func RequireCapability(capability models.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := CurrentUser(c)
		if claims == nil {
			response.Error(c, appErrors.Clone(appErrors.ErrMissingCredential, "missing credential"))
			c.Abort()
			return
		}
		if !claims.Role.Can(capability) {
			response.Error(c, appErrors.Clone(appErrors.ErrForbidden, "role "+string(claims.Role)+" cannot "+string(capability)))
			c.Abort()
			return
		}
		c.Next()
	}
}

// EditOnWrite requires the edit capability for every method other than GET, HEAD and OPTIONS.
func EditOnWrite() gin.HandlerFunc {
	gate := RequireCapability(models.CapabilityEdit)
	return func(c *gin.Context) {
		switch c.Request.Method {
		case "GET", "HEAD", "OPTIONS":
			c.Next()
		default:
			gate(c)
		}
	}
}
