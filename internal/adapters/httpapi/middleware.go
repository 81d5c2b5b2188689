package httpapi

import (
	"strings"

	"yoripe/internal/core/user"

	"github.com/gin-gonic/gin"
)

const (
	actorCtxKey   = "actor"
	tokenIDCtxKey = "tokenID"
)

// AuthMiddleware resolves the bearer token to an actor and stores both the
// actor and the token id in the request context. Any failure is a 401 with
// the standard envelope.
func AuthMiddleware(auth AuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		if parts := strings.Split(c.GetHeader("Authorization"), "Bearer "); len(parts) == 2 {
			token = parts[1]
		}
		if token == "" {
			respondUnauthorized(c)
			c.Abort()
			return
		}

		actor, tokenID, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			respondUnauthorized(c)
			c.Abort()
			return
		}

		c.Set(actorCtxKey, actor)
		c.Set(tokenIDCtxKey, tokenID)
		c.Next()
	}
}

func actorFrom(c *gin.Context) *user.User {
	raw, ok := c.Get(actorCtxKey)
	if !ok {
		return nil
	}
	actor, ok := raw.(*user.User)
	if !ok {
		return nil
	}
	return actor
}

func tokenIDFrom(c *gin.Context) string {
	return c.GetString(tokenIDCtxKey)
}
