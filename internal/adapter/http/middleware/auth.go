package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/KhaledAshrafH/Task-Management-System/internal/core/domain"
	"github.com/KhaledAshrafH/Task-Management-System/internal/core/ports"
	"github.com/KhaledAshrafH/Task-Management-System/pkg/apierrors"
)

const (
	actorContextKey = "actor"
	bearerPrefix    = "Bearer "
)

// AuthMiddleware resolves the acting user from the Authorization header and
// aborts with 401 when the credential is absent, invalid or revoked.
func AuthMiddleware(auth ports.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := GetLang(c)

		raw := BearerToken(c)
		if raw == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
			)
			return
		}

		actor, err := auth.Identify(c.Request.Context(), raw)
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgInvalidCredentials, lang),
			)
			return
		}

		c.Set(actorContextKey, actor)
		c.Next()
	}
}

// BearerToken returns the raw credential from the Authorization header, or
// an empty string.
func BearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, bearerPrefix) {
		return ""
	}
	return strings.TrimPrefix(header, bearerPrefix)
}

// GetActor returns the authenticated user placed on the context by
// AuthMiddleware.
func GetActor(c *gin.Context) (domain.User, bool) {
	value, exists := c.Get(actorContextKey)
	if !exists {
		return domain.User{}, false
	}
	actor, ok := value.(domain.User)
	return actor, ok
}
