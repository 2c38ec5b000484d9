package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/synergyspace/idea-api/internal/auth"
	"github.com/synergyspace/idea-api/internal/constants"
	apierrors "github.com/synergyspace/idea-api/internal/errors"
)

// RequireAuth validates the bearer token and stores the principal in the
// request context.
func RequireAuth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(constants.AuthorizationHeader)
		if !strings.HasPrefix(header, constants.BearerPrefix) {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		principal, err := tokens.Validate(strings.TrimPrefix(header, constants.BearerPrefix))
		if err != nil {
			apierrors.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyPrincipal, *principal)
		c.Next()
	}
}

// GetPrincipal retrieves the authenticated principal from context
func GetPrincipal(c *gin.Context) (auth.Principal, bool) {
	value, exists := c.Get(constants.ContextKeyPrincipal)
	if !exists {
		return auth.Principal{}, false
	}

	principal, ok := value.(auth.Principal)
	return principal, ok
}
