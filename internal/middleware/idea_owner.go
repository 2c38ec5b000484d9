package middleware

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/synergyspace/idea-api/internal/constants"
	apierrors "github.com/synergyspace/idea-api/internal/errors"
	"github.com/synergyspace/idea-api/internal/services"
)

// RequireIdeaOwner loads the idea named by the :id parameter and rejects the
// request unless the authenticated principal owns it. The loaded record is
// stored in the context so handlers do not fetch it again.
func RequireIdeaOwner(ideaService *services.IdeaService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			apierrors.BadRequest(c, "Invalid idea ID")
			c.Abort()
			return
		}

		principal, exists := GetPrincipal(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		idea, err := ideaService.Get(uint(id))
		if err != nil {
			if errors.Is(err, services.ErrIdeaNotFound) {
				apierrors.NotFound(c, "Idea not found")
			} else {
				apierrors.InternalError(c, "")
			}
			c.Abort()
			return
		}

		if idea.OwnerID != principal.UserID {
			apierrors.Forbidden(c, "You are not the owner of this idea")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyIdea, *idea)
		c.Next()
	}
}
